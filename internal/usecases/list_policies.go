package usecases

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"nayak-niti/internal/domain"
	"nayak-niti/pkg/log"
)

const (
	maxListedPolicies = 10
	minRelevance      = 10.0

	sourceLive     = "Live Data"
	sourceCached   = "Cached Data"
	sourceFallback = "Fallback Data"
)

// PolicyCache defines the interface for the process-wide policy cache.
type PolicyCache interface {
	Get() (policies []domain.Policy, stale bool, ok bool)
	Set(policies []domain.Policy)
	AgeMillis() int64
}

// PolicyFeed is one upstream source of live policies.
type PolicyFeed interface {
	Label() string
	Fetch(ctx context.Context) ([]domain.Policy, error)
}

// PolicyFallback supplies curated policies when no live data is available.
type PolicyFallback interface {
	Policies() []domain.Policy
}

// ListPoliciesUseCase serves policies cache-first, refreshing from the feeds.
type ListPoliciesUseCase struct {
	cache    PolicyCache
	feeds    []PolicyFeed
	fallback PolicyFallback

	group      singleflight.Group
	refreshing atomic.Bool

	now   func() time.Time
	newID func() string
}

// NewListPoliciesUseCase creates a new ListPoliciesUseCase.
func NewListPoliciesUseCase(cache PolicyCache, fallback PolicyFallback, feeds ...PolicyFeed) *ListPoliciesUseCase {
	return &ListPoliciesUseCase{
		cache:    cache,
		feeds:    feeds,
		fallback: fallback,
		now:      time.Now,
		newID:    func() string { return "live-" + uuid.NewString() },
	}
}

type refreshResult struct {
	policies []domain.Policy
	sources  []string
}

// Execute lists policies ranked against topics. A forced refresh bypasses a fresh cache.
func (uc *ListPoliciesUseCase) Execute(ctx context.Context, topics []string, forceRefresh bool) (*domain.PolicyListing, error) {
	cached, stale, ok := uc.cache.Get()
	if ok && !stale && !forceRefresh {
		log.GlobalDebugCtx(ctx, "policy cache hit", "age_ms", uc.cache.AgeMillis())
		return uc.listing(cached, topics, nil), nil
	}

	// Another request is already refreshing; whatever we have is good enough.
	if ok && uc.refreshing.Load() {
		log.GlobalDebugCtx(ctx, "refresh in flight, serving cache")
		return uc.listing(cached, topics, nil), nil
	}

	res := uc.refresh(ctx)
	return uc.listing(res.policies, topics, res.sources), nil
}

// Prefetch forces a refresh and reports how many policies are now available.
func (uc *ListPoliciesUseCase) Prefetch(ctx context.Context) int {
	res := uc.refresh(ctx)
	log.GlobalInfoCtx(ctx, "policy prefetch done", "policies", len(res.policies), "sources", strings.Join(res.sources, ","))
	return len(res.policies)
}

func (uc *ListPoliciesUseCase) refresh(ctx context.Context) refreshResult {
	// The fetch is shared by every waiting caller, so it outlives any one of them.
	shared := context.WithoutCancel(ctx)

	v, _, _ := uc.group.Do("refresh", func() (any, error) {
		uc.refreshing.Store(true)
		defer uc.refreshing.Store(false)
		return uc.fetchAll(shared), nil
	})
	return v.(refreshResult)
}

func (uc *ListPoliciesUseCase) fetchAll(ctx context.Context) refreshResult {
	batches := make([]domain.PolicyBatch, len(uc.feeds))

	var wg sync.WaitGroup
	for i, feed := range uc.feeds {
		wg.Add(1)
		go func(i int, feed PolicyFeed) {
			defer wg.Done()
			policies, err := feed.Fetch(ctx)
			if err != nil {
				log.GlobalWarnCtx(ctx, "policy feed failed", "feed", feed.Label(), "error", err)
				return
			}
			batches[i] = domain.PolicyBatch{Source: feed.Label(), Policies: policies}
		}(i, feed)
	}
	wg.Wait()

	today := uc.now().Format("2006-01-02")
	var live []domain.Policy
	var sources []string
	for _, b := range batches {
		if len(b.Policies) == 0 {
			continue
		}
		log.GlobalInfoCtx(ctx, "policy feed fetched", "feed", b.Source, "policies", len(b.Policies))
		sources = append(sources, b.Source)
		for _, p := range b.Policies {
			p.ID = uc.newID()
			if p.LastUpdated == "" {
				p.LastUpdated = today
			}
			live = append(live, p)
		}
	}

	if len(live) > 0 {
		live = dedupeByTitle(live)
		uc.cache.Set(live)
		log.GlobalInfoCtx(ctx, "policy cache refreshed", "policies", len(live))
		return refreshResult{policies: live, sources: sources}
	}

	if cached, _, ok := uc.cache.Get(); ok && len(cached) > 0 {
		log.GlobalWarnCtx(ctx, "no live policy data, serving stale cache")
		return refreshResult{policies: cached, sources: []string{sourceCached}}
	}

	log.GlobalWarnCtx(ctx, "no live policy data, serving fallback")
	return refreshResult{policies: uc.fallback.Policies(), sources: []string{sourceFallback}}
}

func dedupeByTitle(policies []domain.Policy) []domain.Policy {
	seen := make(map[string]bool, len(policies))
	out := policies[:0]
	for _, p := range policies {
		key := strings.ToLower(strings.TrimSpace(p.Title))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func (uc *ListPoliciesUseCase) listing(all []domain.Policy, topics []string, sources []string) *domain.PolicyListing {
	if len(sources) == 0 {
		sources = []string{sourceLive}
	}

	ranked := RankPolicies(all, topics)
	if len(ranked) > maxListedPolicies {
		ranked = ranked[:maxListedPolicies]
	}

	return &domain.PolicyListing{
		Policies:    ranked,
		Categories:  CountCategories(all),
		Total:       len(all),
		Sources:     sources,
		LastUpdated: uc.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		IsLiveData:  sources[0] != sourceFallback && sources[0] != sourceCached,
	}
}

// RankPolicies returns copies of policies scored against topics, most relevant
// first. Without topics the input order is kept and no score is set.
func RankPolicies(policies []domain.Policy, topics []string) []domain.Policy {
	out := make([]domain.Policy, len(policies))
	copy(out, policies)
	if len(topics) == 0 {
		return out
	}

	for i := range out {
		matched := 0
		for _, topic := range topics {
			if matchesTopic(out[i], strings.ToLower(topic)) {
				matched++
			}
		}
		score := float64(matched) / float64(len(topics)) * 100
		if score <= 0 {
			score = minRelevance
		}
		out[i].RelevanceScore = &score
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].RelevanceScore > *out[j].RelevanceScore
	})
	return out
}

func matchesTopic(p domain.Policy, topic string) bool {
	if strings.Contains(strings.ToLower(p.Category), topic) ||
		strings.Contains(strings.ToLower(p.Title), topic) ||
		strings.Contains(strings.ToLower(p.Description), topic) {
		return true
	}
	for _, sector := range p.AffectedSectors {
		if strings.Contains(strings.ToLower(sector), topic) {
			return true
		}
	}
	return false
}

// CountCategories tallies policies per category, largest first. Ties keep
// first-seen order.
func CountCategories(policies []domain.Policy) []domain.PolicyCategory {
	idx := make(map[string]int)
	categories := []domain.PolicyCategory{}
	for _, p := range policies {
		if i, ok := idx[p.Category]; ok {
			categories[i].Count++
			continue
		}
		idx[p.Category] = len(categories)
		categories = append(categories, domain.PolicyCategory{Name: p.Category, Count: 1})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Count > categories[j].Count
	})
	return categories
}

// ParseTopics splits a comma-separated topic list, dropping blanks.
func ParseTopics(raw string) []string {
	var topics []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
