package usecases_test

import (
	"context"
	"sync"

	"nayak-niti/internal/domain"
)

// MockClaimSearcher is a mock implementation of ClaimSearcher.
type MockClaimSearcher struct {
	results []domain.FactCheckResult
	err     error
	queries []string
}

func (m *MockClaimSearcher) Search(ctx context.Context, query string) ([]domain.FactCheckResult, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// MockPolicyCache is a mock implementation of PolicyCache.
type MockPolicyCache struct {
	mu       sync.Mutex
	policies []domain.Policy
	stale    bool
	sets     int
}

func (m *MockPolicyCache) Get() ([]domain.Policy, bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.policies == nil {
		return nil, false, false
	}
	return m.policies, m.stale, true
}

func (m *MockPolicyCache) Set(policies []domain.Policy) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.policies = policies
	m.stale = false
	m.sets++
}

func (m *MockPolicyCache) AgeMillis() int64 { return 0 }

// MockFeed is a mock implementation of PolicyFeed.
type MockFeed struct {
	label    string
	policies []domain.Policy
	err      error

	started chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
}

func (m *MockFeed) Label() string { return m.label }

func (m *MockFeed) Fetch(ctx context.Context) ([]domain.Policy, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.policies, nil
}

func (m *MockFeed) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockFallback is a mock implementation of PolicyFallback.
type MockFallback struct {
	policies []domain.Policy
}

func (m *MockFallback) Policies() []domain.Policy { return m.policies }

// MockCompleter is a mock implementation of ChatCompleter.
type MockCompleter struct {
	reply  string
	deltas []string
	err    error
	got    []domain.ChatMessage
}

func (m *MockCompleter) Complete(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	m.got = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *MockCompleter) Stream(ctx context.Context, messages []domain.ChatMessage, onDelta func(string) error) error {
	m.got = messages
	if m.err != nil {
		return m.err
	}
	for _, d := range m.deltas {
		if err := onDelta(d); err != nil {
			return err
		}
	}
	return nil
}

// MockNewsSearcher is a mock implementation of NewsSearcher.
type MockNewsSearcher struct {
	results map[string][]domain.NewsArticle
	errs    map[string]error
	queries []string
}

func (m *MockNewsSearcher) Search(ctx context.Context, query string) ([]domain.NewsArticle, error) {
	m.queries = append(m.queries, query)
	if err := m.errs[query]; err != nil {
		return nil, err
	}
	return m.results[query], nil
}
