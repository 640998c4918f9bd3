package github

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/domain/repo"
	"portfolio-core/internal/github"
)

type mockLister struct {
	repos []github.Repository
	err   error
	user  string
}

func (m *mockLister) ListUserRepositories(ctx context.Context, username string) ([]github.Repository, error) {
	m.user = username
	return m.repos, m.err
}

func TestRepositorySource_ListRepositories(t *testing.T) {
	lang := "Go"
	lister := &mockLister{repos: []github.Repository{
		{ID: 1, Name: "good", FullName: "octocat/good", HTMLURL: "https://github.com/octocat/good", Language: &lang, Topics: []string{"cli"}, StargazersCount: 2},
		{ID: 0, Name: "bad-id", FullName: "octocat/bad-id", HTMLURL: "https://github.com/octocat/bad-id"},
		{ID: 3, Name: "fork", FullName: "octocat/fork", HTMLURL: "https://github.com/octocat/fork", Fork: true},
	}}

	src := NewRepositorySource(lister, "octocat", nil)
	repos, err := src.ListRepositories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "octocat", lister.user)
	assert.Equal(t, "octocat", src.Owner())
	require.Len(t, repos, 2, "invalid entries are skipped, forks are kept for the browser to drop")
	assert.Equal(t, "good", repos[0].Name().String())
	assert.Equal(t, "Go", repos[0].LanguageName())
	assert.Equal(t, 2, repos[0].StargazersCount())
	assert.True(t, repos[1].IsFork())
}

func TestRepositorySource_Error(t *testing.T) {
	src := NewRepositorySource(&mockLister{err: errors.New("timeout")}, "octocat", nil)

	_, err := src.ListRepositories(context.Background())
	require.Error(t, err)

	var domainErr *repo.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, repo.CodeSourceUnavailable, domainErr.Code)
}

type countingSource struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (s *countingSource) ListRepositories(ctx context.Context) ([]*repo.Repository, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return nil, s.err
	}
	r, _ := repo.NewRepository(1, "r", "https://github.com/u/r", time.Now(), repo.Metadata{})
	return []*repo.Repository{r}, nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCachedSource_ServesWithinTTL(t *testing.T) {
	inner := &countingSource{}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := NewCachedSource(inner, "octocat", time.Hour, WithClock(clock.Now))

	_, err := cache.ListRepositories(context.Background())
	require.NoError(t, err)
	_, err = cache.ListRepositories(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, inner.calls.Load())

	clock.Advance(time.Hour)
	_, err = cache.ListRepositories(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, inner.calls.Load())
}

func TestCachedSource_FailuresAreNotCached(t *testing.T) {
	inner := &countingSource{err: errors.New("boom")}
	cache := NewCachedSource(inner, "octocat", time.Hour)

	_, err := cache.ListRepositories(context.Background())
	require.Error(t, err)
	_, err = cache.ListRepositories(context.Background())
	require.Error(t, err)
	assert.EqualValues(t, 2, inner.calls.Load())
}

func TestCachedSource_ZeroTTLDisablesCaching(t *testing.T) {
	inner := &countingSource{}
	cache := NewCachedSource(inner, "octocat", 0)

	_, _ = cache.ListRepositories(context.Background())
	_, _ = cache.ListRepositories(context.Background())
	assert.EqualValues(t, 2, inner.calls.Load())
}

func TestCachedSource_SharesConcurrentFetch(t *testing.T) {
	inner := &countingSource{delay: 50 * time.Millisecond}
	cache := NewCachedSource(inner, "octocat", time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repos, err := cache.ListRepositories(context.Background())
			assert.NoError(t, err)
			assert.Len(t, repos, 1)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, inner.calls.Load())
}

type blockingSource struct {
	started  chan struct{}
	release  chan struct{}
	calls    atomic.Int32
	fetchErr atomic.Value
}

func newBlockingSource() *blockingSource {
	return &blockingSource{started: make(chan struct{}), release: make(chan struct{})}
}

func (s *blockingSource) ListRepositories(ctx context.Context) ([]*repo.Repository, error) {
	if s.calls.Add(1) == 1 {
		close(s.started)
	}
	select {
	case <-s.release:
	case <-ctx.Done():
		s.fetchErr.Store(ctx.Err())
		return nil, ctx.Err()
	}
	r, _ := repo.NewRepository(1, "r", "https://github.com/u/r", time.Now(), repo.Metadata{})
	return []*repo.Repository{r}, nil
}

func TestCachedSource_CancelledCallerDoesNotFailOthers(t *testing.T) {
	inner := newBlockingSource()
	cache := NewCachedSource(inner, "octocat", time.Hour)

	first, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.ListRepositories(first)
		firstErr <- err
	}()
	<-inner.started

	type result struct {
		repos []*repo.Repository
		err   error
	}
	second := make(chan result, 1)
	go func() {
		repos, err := cache.ListRepositories(context.Background())
		second <- result{repos, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(inner.release)
	got := <-second
	require.NoError(t, got.err)
	assert.Len(t, got.repos, 1)
	assert.Nil(t, inner.fetchErr.Load(), "shared fetch must not see the first caller's cancellation")
	assert.EqualValues(t, 1, inner.calls.Load())
}

func TestCachedSource_FetchTimeout(t *testing.T) {
	inner := newBlockingSource()
	cache := NewCachedSource(inner, "octocat", time.Hour, WithFetchTimeout(20*time.Millisecond))

	_, err := cache.ListRepositories(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCachedSource_PublishesLoadedEvent(t *testing.T) {
	d := events.NewDispatcher(nil)
	var got atomic.Value
	d.Register(repo.EventTypeRepositoriesLoaded, func(ctx context.Context, e events.DomainEvent) error {
		got.Store(e)
		return nil
	})

	cache := NewCachedSource(&countingSource{}, "octocat", time.Hour, WithPublisher(d))
	_, err := cache.ListRepositories(context.Background())
	require.NoError(t, err)

	ev, ok := got.Load().(*repo.RepositoriesLoadedEvent)
	require.True(t, ok)
	assert.Equal(t, "octocat", ev.Owner)
	assert.Equal(t, 1, ev.RepositoryCount)
}
