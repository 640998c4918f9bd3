package browser

import "fmt"

// Status enumerates the load states of a browser
type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// LoadState is a tagged variant: Loading, Loaded(count) or Failed(reason).
// Only the payload that belongs to the current tag is ever set.
type LoadState struct {
	status Status
	count  int
	reason string
}

// Loading is the state before the single fetch completes
func Loading() LoadState {
	return LoadState{status: StatusLoading}
}

// Loaded records a successful fetch of count repositories (forks excluded)
func Loaded(count int) LoadState {
	return LoadState{status: StatusLoaded, count: count}
}

// Failed records a fetch failure
func Failed(reason string) LoadState {
	return LoadState{status: StatusFailed, reason: reason}
}

func (s LoadState) Status() Status {
	return s.status
}

func (s LoadState) IsLoading() bool {
	return s.status == StatusLoading
}

// Count returns the working set size of a Loaded state
func (s LoadState) Count() (int, bool) {
	return s.count, s.status == StatusLoaded
}

// Reason returns the failure reason of a Failed state
func (s LoadState) Reason() (string, bool) {
	return s.reason, s.status == StatusFailed
}

func (s LoadState) String() string {
	switch s.status {
	case StatusLoaded:
		return fmt.Sprintf("loaded(%d)", s.count)
	case StatusFailed:
		return fmt.Sprintf("failed(%s)", s.reason)
	default:
		return s.status.String()
	}
}
