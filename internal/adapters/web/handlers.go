package web

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"nayak-niti/internal/credibility"
	"nayak-niti/internal/domain"
	"nayak-niti/internal/usecases"
	"nayak-niti/pkg/log"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	checkArticle   *usecases.CheckArticleUseCase
	listPolicies   *usecases.ListPoliciesUseCase
	chat           *usecases.ChatUseCase
	politicianNews *usecases.PoliticianNewsUseCase
	timeout        time.Duration
}

// NewHandlers creates a new Handlers instance. timeout bounds each request's
// downstream work; zero means 30s.
func NewHandlers(
	checkArticle *usecases.CheckArticleUseCase,
	listPolicies *usecases.ListPoliciesUseCase,
	chat *usecases.ChatUseCase,
	politicianNews *usecases.PoliticianNewsUseCase,
	timeout time.Duration,
) *Handlers {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Handlers{
		checkArticle:   checkArticle,
		listPolicies:   listPolicies,
		chat:           chat,
		politicianNews: politicianNews,
		timeout:        timeout,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type chatRequest struct {
	Messages json.RawMessage `json:"messages"`
}

type streamDelta struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// FactCheck scores an article's source, language and related claims.
func (h *Handlers) FactCheck(c *fiber.Ctx) error {
	var in domain.ArticleInput
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return h.sendError(c, domain.ErrInvalidRequest, "")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	report, err := h.checkArticle.Execute(ctx, in)
	if err != nil {
		if !errors.Is(err, domain.ErrMissingURLOrTitle) {
			log.GlobalErrorCtx(ctx, "fact check failed", "url", in.URL, "error", err)
		}
		return h.sendError(c, err, "Failed to perform fact check")
	}

	return c.JSON(report)
}

// Source returns the registry profile for a single URL.
func (h *Handlers) Source(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("url"))
	if raw == "" {
		return h.sendError(c, domain.ErrMissingURL, "")
	}
	return c.JSON(credibility.Lookup(raw))
}

// Policies lists government policies, optionally ranked by topics.
func (h *Handlers) Policies(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	topics := usecases.ParseTopics(c.Query("topics"))
	listing, err := h.listPolicies.Execute(ctx, topics, c.QueryBool("refresh", false))
	if err != nil {
		log.GlobalErrorCtx(ctx, "list policies failed", "topics", topics, "error", err)
		return h.sendError(c, err, "Failed to fetch policies")
	}

	return c.JSON(listing)
}

// Chat answers a civic question in a single response.
func (h *Handlers) Chat(c *fiber.Ctx) error {
	messages, err := decodeMessages(c.Body())
	if err != nil {
		return h.sendError(c, err, "")
	}

	reply, err := h.chat.Execute(c.UserContext(), messages)
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "chat failed", "error", err)
		return h.sendError(c, err, "Failed to process chat request")
	}

	return c.JSON(reply)
}

// ChatStream answers a civic question as Server-Sent Events. Validation
// errors are plain JSON; failures after the stream opened are sent as an
// error event before [DONE].
func (h *Handlers) ChatStream(c *fiber.Ctx) error {
	messages, err := decodeMessages(c.Body())
	if err != nil {
		return h.sendError(c, err, "")
	}
	if _, err := usecases.NormalizeMessages(messages); err != nil {
		return h.sendError(c, err, "")
	}

	ctx := c.UserContext()
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		err := h.chat.Stream(ctx, messages, func(delta string) error {
			if err := writeEvent(w, streamDelta{Content: delta}); err != nil {
				return err
			}
			return w.Flush()
		})
		if err != nil {
			log.GlobalErrorCtx(ctx, "chat stream failed", "error", err)
			_, msg := friendlyError(err, "Failed to process chat request")
			writeEvent(w, streamDelta{Error: msg})
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		w.Flush()
	})
	return nil
}

// PoliticianNews returns recent headlines about a politician.
func (h *Handlers) PoliticianNews(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	q := domain.NewsQuery{
		Name:         c.Query("name"),
		Constituency: c.Query("constituency"),
		State:        c.Query("state"),
		Party:        c.Query("party"),
	}

	listing, err := h.politicianNews.Execute(ctx, q)
	if err != nil {
		if !errors.Is(err, domain.ErrMissingPoliticianName) {
			log.GlobalErrorCtx(ctx, "politician news failed", "name", q.Name, "error", err)
		}
		return h.sendError(c, err, "Failed to fetch news articles")
	}

	return c.JSON(listing)
}

// Healthz reports liveness.
func (h *Handlers) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// decodeMessages reads the messages array of a chat body. A missing or
// non-array field yields ErrMissingMessages; elements that do not decode as
// messages are dropped.
func decodeMessages(body []byte) ([]domain.ChatMessage, error) {
	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, domain.ErrInvalidRequest
	}

	var raw []json.RawMessage
	if len(req.Messages) == 0 || req.Messages[0] != '[' || json.Unmarshal(req.Messages, &raw) != nil {
		return nil, domain.ErrMissingMessages
	}

	messages := make([]domain.ChatMessage, 0, len(raw))
	for _, r := range raw {
		var m domain.ChatMessage
		if err := json.Unmarshal(r, &m); err != nil {
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func writeEvent(w *bufio.Writer, ev streamDelta) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

func (h *Handlers) sendError(c *fiber.Ctx, err error, fallback string) error {
	status, msg := friendlyError(err, fallback)
	return c.Status(status).JSON(errorResponse{Error: msg})
}

// friendlyError maps an error to a status code and a message safe to show
// users. fallback is used for unexpected errors.
func friendlyError(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return fiber.StatusBadRequest, "Invalid request body"
	case errors.Is(err, domain.ErrMissingURLOrTitle):
		return fiber.StatusBadRequest, "URL or title is required"
	case errors.Is(err, domain.ErrMissingURL):
		return fiber.StatusBadRequest, "URL is required"
	case errors.Is(err, domain.ErrMissingMessages):
		return fiber.StatusBadRequest, "Messages array is required"
	case errors.Is(err, domain.ErrNoValidMessages):
		return fiber.StatusBadRequest, "No valid messages provided"
	case errors.Is(err, domain.ErrMissingPoliticianName):
		return fiber.StatusBadRequest, "Politician name is required"
	case errors.Is(err, domain.ErrLLMNotConfigured):
		return fiber.StatusUnauthorized, "Chat API key is not configured"
	case errors.Is(err, domain.ErrLLMUnauthorized):
		return fiber.StatusUnauthorized, "Invalid API key. Please check your GROQ_API_KEY"
	case errors.Is(err, domain.ErrLLMRateLimited):
		return fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment"
	case errors.Is(err, domain.ErrNewsUnavailable):
		return fiber.StatusInternalServerError, "Failed to fetch news articles"
	}
	if fallback == "" {
		fallback = "Something went wrong. Please try again in a moment."
	}
	return fiber.StatusInternalServerError, fallback
}
