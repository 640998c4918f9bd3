package github

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/singleflight"

	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/domain/repo"
)

// DefaultFetchTimeout bounds a shared fetch that no single caller owns
const DefaultFetchTimeout = 30 * time.Second

// CachedSource serves a repository listing for ttl after each successful
// fetch. Failures are never cached. Concurrent misses share one fetch,
// which outlives any one caller's context; each caller still stops
// waiting when its own context ends.
type CachedSource struct {
	source       repo.Source
	owner        string
	ttl          time.Duration
	fetchTimeout time.Duration
	publisher    events.Publisher
	logger    hclog.Logger
	now       func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	repos     []*repo.Repository
	fetchedAt time.Time
}

// CacheOption configures a CachedSource
type CacheOption func(*CachedSource)

// WithPublisher dispatches a RepositoriesLoadedEvent after each fresh fetch
func WithPublisher(p events.Publisher) CacheOption {
	return func(c *CachedSource) { c.publisher = p }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) CacheOption {
	return func(c *CachedSource) { c.now = now }
}

// WithFetchTimeout bounds each shared fetch
func WithFetchTimeout(d time.Duration) CacheOption {
	return func(c *CachedSource) { c.fetchTimeout = d }
}

// WithLogger sets the cache logger
func WithLogger(l hclog.Logger) CacheOption {
	return func(c *CachedSource) { c.logger = l }
}

// NewCachedSource wraps source with a TTL cache. A zero ttl disables caching.
func NewCachedSource(source repo.Source, owner string, ttl time.Duration, opts ...CacheOption) *CachedSource {
	c := &CachedSource{
		source:       source,
		owner:        owner,
		ttl:          ttl,
		fetchTimeout: DefaultFetchTimeout,
		logger:       hclog.NewNullLogger(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRepositories returns the cached listing or fetches a fresh one
func (c *CachedSource) ListRepositories(ctx context.Context) ([]*repo.Repository, error) {
	if repos, ok := c.cached(); ok {
		return repos, nil
	}

	ch := c.group.DoChan("list", func() (interface{}, error) {
		return c.fetch(ctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return copyRepos(res.Val.([]*repo.Repository)), nil
	}
}

// fetch runs detached from the cancellation of the caller that started it
func (c *CachedSource) fetch(callerCtx context.Context) ([]*repo.Repository, error) {
	if repos, ok := c.cached(); ok {
		return repos, nil
	}

	ctx := context.WithoutCancel(callerCtx)
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.fetchTimeout)
		defer cancel()
	}

	repos, err := c.source.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.repos = repos
	c.fetchedAt = c.now()
	c.mu.Unlock()

	c.logger.Info("repository listing refreshed", "owner", c.owner, "count", len(repos))
	if c.publisher != nil {
		if err := c.publisher.Dispatch(ctx, repo.NewRepositoriesLoadedEvent(c.owner, repos)); err != nil {
			c.logger.Warn("publishing repositories loaded event", "error", err)
		}
	}
	return repos, nil
}

func (c *CachedSource) cached() ([]*repo.Repository, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.fetchedAt.IsZero() || c.ttl <= 0 {
		return nil, false
	}
	if c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return copyRepos(c.repos), true
}

func copyRepos(in []*repo.Repository) []*repo.Repository {
	out := make([]*repo.Repository, len(in))
	copy(out, in)
	return out
}
