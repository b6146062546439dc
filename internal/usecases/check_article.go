package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"nayak-niti/internal/credibility"
	"nayak-niti/internal/domain"
	"nayak-niti/pkg/log"
)

// ClaimSearcher defines the interface for third-party claim review lookups.
type ClaimSearcher interface {
	Search(ctx context.Context, query string) ([]domain.FactCheckResult, error)
}

// CheckArticleUseCase scores an article's source, wording and related claim reviews.
type CheckArticleUseCase struct {
	claims  ClaimSearcher
	timeout time.Duration
	now     func() time.Time
}

// NewCheckArticleUseCase creates a new CheckArticleUseCase. claims may be nil,
// in which case no claim reviews are consulted.
func NewCheckArticleUseCase(claims ClaimSearcher, timeout time.Duration) *CheckArticleUseCase {
	return &CheckArticleUseCase{
		claims:  claims,
		timeout: timeout,
		now:     time.Now,
	}
}

// Execute builds the full fact-check report for an article.
func (uc *CheckArticleUseCase) Execute(ctx context.Context, in domain.ArticleInput) (*domain.FactCheckReport, error) {
	if strings.TrimSpace(in.URL) == "" && strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrMissingURLOrTitle
	}

	var profile *domain.SourceProfile
	if in.URL != "" {
		p := credibility.Lookup(in.URL)
		profile = &p
	}

	bias := credibility.Analyze(in.Title + " " + in.Description + " " + in.Content)

	claims := credibility.CapClaims(uc.searchClaims(ctx, in.Title))

	log.GlobalInfoCtx(ctx, "article checked",
		"domain", domainOf(profile),
		"claims", len(claims),
		"red_flags", len(bias.RedFlags),
	)

	return &domain.FactCheckReport{
		SourceCredibility: profile,
		BiasAnalysis:      bias,
		FactChecks:        claims,
		Assessment:        credibility.Assess(profile, bias, claims),
		Timestamp:         uc.now().UTC(),
	}, nil
}

// searchClaims never fails: any collaborator problem yields no claims.
func (uc *CheckArticleUseCase) searchClaims(ctx context.Context, title string) []domain.FactCheckResult {
	if uc.claims == nil || strings.TrimSpace(title) == "" {
		return []domain.FactCheckResult{}
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	results, err := uc.claims.Search(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrClaimSearchDisabled) {
			log.GlobalDebugCtx(ctx, "claim search skipped", "reason", err)
		} else {
			log.GlobalWarnCtx(ctx, "claim search failed", "error", err)
		}
		return []domain.FactCheckResult{}
	}
	if results == nil {
		return []domain.FactCheckResult{}
	}

	log.GlobalDebugCtx(ctx, "claim reviews found", "count", len(results))
	return results
}

func domainOf(p *domain.SourceProfile) string {
	if p == nil {
		return ""
	}
	return p.Domain
}
