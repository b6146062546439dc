package usecases

import (
	"context"
	"strings"
	"time"

	"nayak-niti/internal/domain"
	"nayak-niti/pkg/log"
)

// SystemPrompt frames every conversation with the civic assistant.
const SystemPrompt = `You are "Nayak Niti AI", an expert assistant on Indian politics, governance, and democracy. You help citizens understand:

- Indian political system, constitution, and governance
- Current political events, policies, and bills
- Electoral processes and voting rights
- Political parties, leaders, and their ideologies
- Government schemes and public welfare programs
- Rights and responsibilities of Indian citizens
- How to engage with democracy (RTI, petitions, etc.)
- Parliamentary procedures and lawmaking
- State and central government structure
- Election Commission and electoral reforms

Guidelines:
1. Provide accurate, unbiased, factual information
2. Explain complex political topics in simple language
3. Cite sources when possible (Constitution articles, government websites)
4. Remain neutral on political opinions - present multiple viewpoints
5. Encourage civic engagement and informed voting
6. If unsure, admit limitations and suggest reliable sources
7. Use examples to make concepts relatable
8. Be respectful and educational

Answer in a friendly, conversational tone while maintaining professionalism.`

// EmptyReply is returned when the model answers with no text.
const EmptyReply = "I apologize, I couldn't generate a response. Please try again."

// ChatCompleter defines the interface for a chat completion backend.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
	Stream(ctx context.Context, messages []domain.ChatMessage, onDelta func(string) error) error
}

// ChatUseCase answers civic questions through a completion backend.
type ChatUseCase struct {
	completer ChatCompleter
	timeout   time.Duration
	now       func() time.Time
}

// NewChatUseCase creates a new ChatUseCase.
func NewChatUseCase(completer ChatCompleter, timeout time.Duration) *ChatUseCase {
	return &ChatUseCase{
		completer: completer,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Execute validates the conversation and returns the assistant's reply.
func (uc *ChatUseCase) Execute(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatReply, error) {
	prompt, err := uc.prompt(messages)
	if err != nil {
		return nil, err
	}

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	log.GlobalDebugCtx(ctx, "chat completion", "messages", len(prompt)-1)

	text, err := uc.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		text = EmptyReply
	}

	return &domain.ChatReply{Message: text, Timestamp: uc.now().UTC()}, nil
}

// Stream validates the conversation and forwards reply fragments to onDelta
// as they arrive.
func (uc *ChatUseCase) Stream(ctx context.Context, messages []domain.ChatMessage, onDelta func(string) error) error {
	prompt, err := uc.prompt(messages)
	if err != nil {
		return err
	}

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	return uc.completer.Stream(ctx, prompt, onDelta)
}

func (uc *ChatUseCase) prompt(messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
	valid, err := NormalizeMessages(messages)
	if err != nil {
		return nil, err
	}
	return append([]domain.ChatMessage{{Role: domain.RoleSystem, Content: SystemPrompt}}, valid...), nil
}

func (uc *ChatUseCase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.timeout)
}

// NormalizeMessages drops messages without a role or content, coerces roles
// other than user and assistant to user, and trims content. A nil slice means
// the caller sent no messages at all.
func NormalizeMessages(messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
	if messages == nil {
		return nil, domain.ErrMissingMessages
	}

	valid := make([]domain.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == "" || m.Content == "" {
			continue
		}
		role := m.Role
		if role != domain.RoleUser && role != domain.RoleAssistant {
			role = domain.RoleUser
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		valid = append(valid, domain.ChatMessage{Role: role, Content: content})
	}

	if len(valid) == 0 {
		return nil, domain.ErrNoValidMessages
	}
	return valid, nil
}
