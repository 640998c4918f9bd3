package github

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/domain/repo"
	"portfolio-core/internal/github"
)

// Lister is the part of the GitHub client the source needs
type Lister interface {
	ListUserRepositories(ctx context.Context, username string) ([]github.Repository, error)
}

// RepositorySource implements the domain repo.Source interface on top of
// the public GitHub listing of one user
type RepositorySource struct {
	client   Lister
	username string
	logger   hclog.Logger
}

// NewRepositorySource creates a new GitHub-backed repository source
func NewRepositorySource(client Lister, username string, logger hclog.Logger) *RepositorySource {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RepositorySource{client: client, username: username, logger: logger}
}

// Owner returns the GitHub user whose repositories are listed
func (s *RepositorySource) Owner() string {
	return s.username
}

// ListRepositories fetches and converts the user's repositories
func (s *RepositorySource) ListRepositories(ctx context.Context) ([]*repo.Repository, error) {
	githubRepos, err := s.client.ListUserRepositories(ctx, s.username)
	if err != nil {
		return nil, repo.ErrSourceUnavailable("github", fmt.Errorf("listing repositories of %s: %w", s.username, err))
	}

	domainRepos := make([]*repo.Repository, 0, len(githubRepos))
	for _, ghRepo := range githubRepos {
		r, err := repo.NewRepository(ghRepo.ID, ghRepo.Name, ghRepo.HTMLURL, ghRepo.UpdatedAt, repo.Metadata{
			Description: ghRepo.Description,
			Language:    ghRepo.Language,
			Homepage:    ghRepo.Homepage,
			Stars:       ghRepo.StargazersCount,
			Forks:       ghRepo.ForksCount,
			Topics:      ghRepo.Topics,
			Fork:        ghRepo.Fork,
		})
		if err != nil {
			s.logger.Warn("skipping repository", "name", ghRepo.FullName, "error", err)
			continue
		}
		domainRepos = append(domainRepos, r)
	}

	return domainRepos, nil
}
