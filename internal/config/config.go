// Package config resolves server settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"nayak-niti/pkg/log"
)

// PathEnv names the variable holding the YAML config path.
const PathEnv = "NAYAK_CONFIG"

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type FactCheckConfig struct {
	APIKey       string        `yaml:"api_key"`
	Endpoint     string        `yaml:"endpoint"`
	LanguageCode string        `yaml:"language_code"`
	Timeout      time.Duration `yaml:"timeout"`
}

type ChatConfig struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	TopP        float32       `yaml:"top_p"`
	Timeout     time.Duration `yaml:"timeout"`
}

// FeedConfig describes one government RSS feed.
type FeedConfig struct {
	Label              string   `yaml:"label"`
	URL                string   `yaml:"url"`
	Publisher          string   `yaml:"publisher"`
	HomeURL            string   `yaml:"home_url"`
	Status             string   `yaml:"status"`
	Limit              int      `yaml:"limit"`
	PolicyOnly         bool     `yaml:"policy_only"`
	UserAgent          string   `yaml:"user_agent"`
	Category           string   `yaml:"category"`
	Impact             string   `yaml:"impact"`
	Sectors            []string `yaml:"sectors"`
	DefaultDescription string   `yaml:"default_description"`
}

// PoliciesConfig controls the policy cache. An empty Feeds list means the
// built-in government feeds.
type PoliciesConfig struct {
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	PrefetchCron string        `yaml:"prefetch_cron"`
	Feeds        []FeedConfig  `yaml:"feeds"`
}

type NewsConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	Limit    int           `yaml:"limit"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// Config is the full server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	FactCheck FactCheckConfig `yaml:"factcheck"`
	Chat      ChatConfig      `yaml:"chat"`
	Policies  PoliciesConfig  `yaml:"policies"`
	News      NewsConfig      `yaml:"news"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Warnings lists values that were rejected and replaced by defaults.
	// They are reported once logging is configured.
	Warnings []string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Log: LogConfig{Level: "info"},
		FactCheck: FactCheckConfig{
			Endpoint:     "https://factchecktools.googleapis.com/v1alpha1/claims:search",
			LanguageCode: "en",
			Timeout:      10 * time.Second,
		},
		Chat: ChatConfig{
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama-3.3-70b-versatile",
			Temperature: 1,
			MaxTokens:   1024,
			TopP:        1,
			Timeout:     30 * time.Second,
		},
		Policies: PoliciesConfig{
			CacheTTL:     2 * time.Hour,
			FetchTimeout: 10 * time.Second,
		},
		News: NewsConfig{
			Timeout: 10 * time.Second,
			Limit:   6,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 20,
			Burst:             5,
		},
	}
}

// Load reads .env when present, then resolves the configuration from the
// file named by NAYAK_CONFIG and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Resolve(os.Getenv(PathEnv), os.Getenv)
}

// Resolve overlays the YAML file at path (if any) and then the variables
// returned by getenv onto the defaults.
func Resolve(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv(getenv)
	cfg.validate()
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	setString("PORT", &c.Server.Port)
	setString("LOG_LEVEL", &c.Log.Level)
	setString("GOOGLE_FACT_CHECK_API_KEY", &c.FactCheck.APIKey)
	setString("GROQ_API_KEY", &c.Chat.APIKey)
	setString("GROQ_MODEL", &c.Chat.Model)
	setString("POLICY_PREFETCH_CRON", &c.Policies.PrefetchCron)

	if v := getenv("POLICY_CACHE_TTL_MINUTES"); v != "" {
		if n, ok := c.positiveInt("POLICY_CACHE_TTL_MINUTES", v); ok {
			c.Policies.CacheTTL = time.Duration(n) * time.Minute
		}
	}
	if v := getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, ok := c.positiveInt("RATE_LIMIT_PER_MINUTE", v); ok {
			c.RateLimit.RequestsPerMinute = n
		}
	}
}

func (c *Config) positiveInt(key, raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		c.warn("invalid %s %q, using default", key, raw)
		return 0, false
	}
	return n, true
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	def := Default()

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		c.warn("invalid log level %q, using %s", c.Log.Level, def.Log.Level)
		c.Log.Level = def.Log.Level
	}
	if c.Policies.CacheTTL <= 0 {
		c.warn("invalid policy cache TTL %s, using %s", c.Policies.CacheTTL, def.Policies.CacheTTL)
		c.Policies.CacheTTL = def.Policies.CacheTTL
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		c.warn("invalid rate limit %d/min, using %d", c.RateLimit.RequestsPerMinute, def.RateLimit.RequestsPerMinute)
		c.RateLimit.RequestsPerMinute = def.RateLimit.RequestsPerMinute
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = def.RateLimit.Burst
	}
	if c.News.Limit <= 0 {
		c.News.Limit = def.News.Limit
	}
}

func (c *Config) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
