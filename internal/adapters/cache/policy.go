package cache

import (
	"sync/atomic"
	"time"

	"nayak-niti/internal/domain"
)

// DefaultPolicyTTL is how long fetched policies count as fresh.
const DefaultPolicyTTL = 2 * time.Hour

// PolicyCache holds the last successful policy fetch for the life of the
// process. Expired data is reported stale but never evicted, so callers can
// still fall back to it.
type PolicyCache struct {
	entry atomic.Pointer[policyEntry]
	ttl   time.Duration
	now   func() time.Time
}

// policyEntry holds a cached policy set with fetch metadata.
type policyEntry struct {
	policies  []domain.Policy
	fetchedAt time.Time
}

// NewPolicyCache creates an empty policy cache. A non-positive ttl means DefaultPolicyTTL.
func NewPolicyCache(ttl time.Duration) *PolicyCache {
	if ttl <= 0 {
		ttl = DefaultPolicyTTL
	}
	return &PolicyCache{ttl: ttl, now: time.Now}
}

// Get returns a copy of the cached policies, whether they are past the TTL,
// and whether anything has been cached at all.
func (c *PolicyCache) Get() ([]domain.Policy, bool, bool) {
	e := c.entry.Load()
	if e == nil {
		return nil, false, false
	}
	stale := c.now().Sub(e.fetchedAt) >= c.ttl
	return clonePolicies(e.policies), stale, true
}

// Set replaces the cached policies and restarts the TTL.
func (c *PolicyCache) Set(policies []domain.Policy) {
	c.entry.Store(&policyEntry{
		policies:  clonePolicies(policies),
		fetchedAt: c.now(),
	})
}

// AgeMillis reports how long ago the cache was filled, or -1 when empty.
func (c *PolicyCache) AgeMillis() int64 {
	e := c.entry.Load()
	if e == nil {
		return -1
	}
	return c.now().Sub(e.fetchedAt).Milliseconds()
}

// TTL returns the freshness window.
func (c *PolicyCache) TTL() time.Duration {
	return c.ttl
}

func clonePolicies(in []domain.Policy) []domain.Policy {
	out := make([]domain.Policy, len(in))
	for i, p := range in {
		p.AffectedSectors = append([]string(nil), p.AffectedSectors...)
		p.KeyPoints = append([]string(nil), p.KeyPoints...)
		out[i] = p
	}
	return out
}
