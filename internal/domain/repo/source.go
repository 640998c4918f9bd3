package repo

import (
	"context"
)

// Source is a domain service that lists the repositories shown on the site.
// Implementations live in the infrastructure layer.
type Source interface {
	// ListRepositories returns every repository of the configured owner,
	// forks included, in no particular order
	ListRepositories(ctx context.Context) ([]*Repository, error)
}

// SourceFunc adapts a plain function to the Source interface
type SourceFunc func(ctx context.Context) ([]*Repository, error)

func (f SourceFunc) ListRepositories(ctx context.Context) ([]*Repository, error) {
	return f(ctx)
}
