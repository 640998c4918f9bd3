package service

import (
	"crypto/subtle"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"portfolio-core/internal/domain/assistant"
)

const (
	// DefaultUnlockBurst is how many passcode attempts a client may make back to back
	DefaultUnlockBurst = 5
	// DefaultUnlockRefill is how often a spent attempt is returned
	DefaultUnlockRefill = 12 * time.Second

	maxTrackedClients = 4096
)

// WallService guards the document upload page with a shared passcode.
// Attempts are throttled per client.
type WallService struct {
	passcode []byte

	every rate.Limit
	burst int

	mu       sync.Mutex
	attempts map[string]*rate.Limiter
}

// WallOption configures a WallService
type WallOption func(*WallService)

// WithAttemptLimit allows burst attempts per client, refilled at every
func WithAttemptLimit(every rate.Limit, burst int) WallOption {
	return func(s *WallService) {
		s.every = every
		s.burst = burst
	}
}

// NewWallService creates a new wall service. An empty passcode disables the wall.
func NewWallService(passcode string, opts ...WallOption) *WallService {
	s := &WallService{
		passcode: []byte(passcode),
		every:    rate.Every(DefaultUnlockRefill),
		burst:    DefaultUnlockBurst,
		attempts: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether a passcode is configured
func (s *WallService) Enabled() bool {
	return len(s.passcode) > 0
}

// Unlock checks attempt from client against the configured passcode
func (s *WallService) Unlock(client, attempt string) error {
	if !s.Enabled() {
		return assistant.ErrWallDisabled()
	}
	if !s.allow(client) {
		return assistant.ErrTooManyAttempts()
	}
	if subtle.ConstantTimeCompare([]byte(attempt), s.passcode) != 1 {
		return assistant.ErrAccessDenied()
	}
	return nil
}

func (s *WallService) allow(client string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	lim, ok := s.attempts[client]
	if !ok {
		if len(s.attempts) >= maxTrackedClients {
			s.pruneIdle()
		}
		lim = rate.NewLimiter(s.every, s.burst)
		s.attempts[client] = lim
	}
	return lim.Allow()
}

// pruneIdle forgets clients whose allowance has fully refilled
func (s *WallService) pruneIdle() {
	for client, lim := range s.attempts {
		if lim.Tokens() >= float64(s.burst) {
			delete(s.attempts, client)
		}
	}
}
