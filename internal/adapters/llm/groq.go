// Package llm talks to OpenAI-compatible chat completion APIs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"nayak-niti/internal/domain"
)

const (
	// GroqBaseURL is Groq's OpenAI-compatible endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"

	DefaultModel     = "llama-3.3-70b-versatile"
	DefaultMaxTokens = 1024
)

// Config holds the completion parameters.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	TopP        float32
	HTTPClient  *http.Client
}

// Groq is a chat completer backed by go-openai pointed at Groq.
type Groq struct {
	client *openai.Client
	cfg    Config
}

// NewGroq creates a completer. Zero values fall back to the Groq defaults;
// an empty APIKey yields a completer whose calls fail with ErrLLMNotConfigured.
func NewGroq(cfg Config) *Groq {
	if cfg.BaseURL == "" {
		cfg.BaseURL = GroqBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 1
	}
	if cfg.TopP == 0 {
		cfg.TopP = 1
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	if cfg.HTTPClient != nil {
		oc.HTTPClient = cfg.HTTPClient
	}

	return &Groq{client: openai.NewClientWithConfig(oc), cfg: cfg}
}

// Complete returns the first choice of a non-streaming completion.
func (g *Groq) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if g.cfg.APIKey == "" {
		return "", domain.ErrLLMNotConfigured
	}

	resp, err := g.client.CreateChatCompletion(ctx, g.request(messages))
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.ErrLLMInvalidResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// Stream forwards each content delta to onDelta until the stream ends.
// An error from onDelta aborts the stream and is returned as is.
func (g *Groq) Stream(ctx context.Context, messages []domain.ChatMessage, onDelta func(string) error) error {
	if g.cfg.APIKey == "" {
		return domain.ErrLLMNotConfigured
	}

	req := g.request(messages)
	req.Stream = true

	stream, err := g.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return classify(err)
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
			continue
		}
		if err := onDelta(chunk.Choices[0].Delta.Content); err != nil {
			return err
		}
	}
}

func (g *Groq) request(messages []domain.ChatMessage) openai.ChatCompletionRequest {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}
	return openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Messages:    msgs,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
		TopP:        g.cfg.TopP,
	}
}

// classify maps upstream status codes onto domain errors, keeping the
// original error in the chain.
func classify(err error) error {
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", domain.ErrLLMUnauthorized, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", domain.ErrLLMRateLimited, err)
	default:
		return fmt.Errorf("chat completion: %w", err)
	}
}
