package repo

import (
	"portfolio-core/internal/domain/events"
)

// Event types
const (
	EventTypeRepositoriesLoaded = "repositories.loaded"
)

// RepositoriesLoadedEvent is raised when a fresh listing is fetched from the source
type RepositoriesLoadedEvent struct {
	events.BaseEvent
	Owner           string
	RepositoryCount int
	ForkCount       int
}

// NewRepositoriesLoadedEvent creates a new RepositoriesLoadedEvent
func NewRepositoriesLoadedEvent(owner string, repos []*Repository) *RepositoriesLoadedEvent {
	forks := 0
	for _, r := range repos {
		if r.IsFork() {
			forks++
		}
	}
	return &RepositoriesLoadedEvent{
		BaseEvent:       events.NewBaseEvent(EventTypeRepositoriesLoaded, owner),
		Owner:           owner,
		RepositoryCount: len(repos),
		ForkCount:       forks,
	}
}

func (e *RepositoriesLoadedEvent) Fields() []interface{} {
	return []interface{}{"owner", e.Owner, "repositories", e.RepositoryCount, "forks", e.ForkCount}
}
