package feeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"nayak-niti/internal/domain"
)

//go:embed fallback_policies.yaml
var fallbackYAML []byte

// Fallback serves the curated policy set compiled into the binary.
type Fallback struct {
	policies []domain.Policy
}

// LoadFallback decodes the embedded policy set.
func LoadFallback() (*Fallback, error) {
	return ParseFallback(fallbackYAML)
}

// ParseFallback decodes a YAML list of policies.
func ParseFallback(data []byte) (*Fallback, error) {
	var policies []domain.Policy
	if err := yaml.Unmarshal(data, &policies); err != nil {
		return nil, fmt.Errorf("decode fallback policies: %w", err)
	}
	return &Fallback{policies: policies}, nil
}

// Policies returns a fresh copy of the curated set.
func (f *Fallback) Policies() []domain.Policy {
	out := make([]domain.Policy, len(f.policies))
	for i, p := range f.policies {
		p.AffectedSectors = append([]string(nil), p.AffectedSectors...)
		p.KeyPoints = append([]string(nil), p.KeyPoints...)
		out[i] = p
	}
	return out
}
