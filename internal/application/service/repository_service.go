package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/domain/browser"
	"portfolio-core/internal/domain/repo"
)

// FeaturedCount is how many recent projects the home page shows
const FeaturedCount = 6

// RepositoryService handles project browser use cases
type RepositoryService struct {
	source repo.Source
	logger hclog.Logger
}

// NewRepositoryService creates a new repository service
func NewRepositoryService(source repo.Source, logger hclog.Logger) *RepositoryService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &RepositoryService{
		source: source,
		logger: logger,
	}
}

// Browse loads the working set and applies the query to a fresh browser.
// A failed fetch is reported through the response state, not as an error.
func (s *RepositoryService) Browse(ctx context.Context, query dto.BrowseQuery) *dto.BrowserPageResponse {
	b := s.load(ctx)

	// filter changes reset the page, so the page is applied last
	b.SetSearchTerm(query.Search)
	b.SetLanguageFilter(query.Language)
	if query.Page > 0 {
		b.SetPage(query.Page)
	}

	return toPageDTO(b)
}

// Featured returns the n most recently updated non-fork repositories
func (s *RepositoryService) Featured(ctx context.Context, n int) ([]*dto.RepositoryResponse, error) {
	b := s.load(ctx)
	if reason, failed := b.State().Reason(); failed {
		return nil, fmt.Errorf("failed to load featured repositories: %s", reason)
	}

	repos := b.Filtered()
	if n >= 0 && len(repos) > n {
		repos = repos[:n]
	}
	return toRepositoryDTOs(repos), nil
}

func (s *RepositoryService) load(ctx context.Context) *browser.Browser {
	b := browser.New(s.logger)
	b.Load(ctx, s.source)
	return b
}

func toPageDTO(b *browser.Browser) *dto.BrowserPageResponse {
	from, to := b.Range()
	page, totalPages := b.Page(), b.TotalPages()

	resp := &dto.BrowserPageResponse{
		State:        b.State().Status().String(),
		Repositories: toRepositoryDTOs(b.Visible()),
		Languages:    b.Languages(),
		Language:     b.Language(),
		Search:       b.SearchTerm(),
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      browser.PageSize,
			Total:      len(b.Filtered()),
			TotalPages: totalPages,
			Window:     b.PageWindow(),
			HasPrev:    page > 1,
			HasNext:    page < totalPages,
		},
		Showing: dto.ShowingRange{From: from, To: to},
		Total:   b.Total(),
	}
	if reason, failed := b.State().Reason(); failed {
		resp.Error = reason
	}
	return resp
}

func toRepositoryDTOs(repos []*repo.Repository) []*dto.RepositoryResponse {
	out := make([]*dto.RepositoryResponse, len(repos))
	for i, r := range repos {
		out[i] = toRepositoryDTO(r)
	}
	return out
}

// toRepositoryDTO converts a domain repository to DTO
func toRepositoryDTO(r *repo.Repository) *dto.RepositoryResponse {
	return &dto.RepositoryResponse{
		ID:          r.GitHubID().Int64(),
		Name:        r.Name().String(),
		URL:         r.URL().String(),
		Description: r.Description(),
		Language:    r.Language(),
		Homepage:    r.Homepage(),
		Stars:       r.StargazersCount(),
		Forks:       r.ForksCount(),
		Topics:      r.Topics(),
		UpdatedAt:   r.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
