package repo

import (
	"fmt"
	"strings"
	"time"
)

// Repository is a read-only summary of a public GitHub repository
type Repository struct {
	githubID    GitHubID
	name        Name
	url         URL
	description *string
	language    *string
	homepage    *string
	counts      Counts
	topics      []string
	isFork      bool
	updatedAt   time.Time
}

// Metadata carries the optional attributes of a repository
type Metadata struct {
	Description *string
	Language    *string
	Homepage    *string
	Stars       int
	Forks       int
	Topics      []string
	Fork        bool
}

// NewRepository creates a Repository entity from source data
func NewRepository(githubID int64, name, url string, updatedAt time.Time, meta Metadata) (*Repository, error) {
	githubIDVO, err := NewGitHubID(githubID)
	if err != nil {
		return nil, ErrInvalidRepositoryData("github id", err)
	}

	repoName, err := NewName(name)
	if err != nil {
		return nil, ErrInvalidRepositoryData("name", err)
	}

	repoURL, err := NewURL(url)
	if err != nil {
		return nil, ErrInvalidRepositoryData("url", err)
	}

	counts, err := NewCounts(meta.Stars, meta.Forks)
	if err != nil {
		return nil, ErrInvalidRepositoryData("counts", err)
	}

	topics := make([]string, len(meta.Topics))
	copy(topics, meta.Topics)

	return &Repository{
		githubID:    githubIDVO,
		name:        repoName,
		url:         repoURL,
		description: emptyToNil(meta.Description),
		language:    emptyToNil(meta.Language),
		homepage:    emptyToNil(meta.Homepage),
		counts:      counts,
		topics:      topics,
		isFork:      meta.Fork,
		updatedAt:   updatedAt,
	}, nil
}

// Matches reports whether the lower-cased term occurs in the name,
// the description or any topic. An empty term matches everything.
func (r *Repository) Matches(lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.name.String()), lowerTerm) {
		return true
	}
	if r.description != nil && strings.Contains(strings.ToLower(*r.description), lowerTerm) {
		return true
	}
	for _, topic := range r.topics {
		if strings.Contains(strings.ToLower(topic), lowerTerm) {
			return true
		}
	}
	return false
}

// HasLanguage reports whether the primary language is exactly lang.
// A repository without a language never matches.
func (r *Repository) HasLanguage(lang string) bool {
	return r.language != nil && *r.language == lang
}

// Getters

func (r *Repository) GitHubID() GitHubID {
	return r.githubID
}

func (r *Repository) Name() Name {
	return r.name
}

func (r *Repository) URL() URL {
	return r.url
}

func (r *Repository) Description() *string {
	return r.description
}

// DescriptionOr returns the description or fallback when it is absent
func (r *Repository) DescriptionOr(fallback string) string {
	if r.description == nil {
		return fallback
	}
	return *r.description
}

func (r *Repository) Language() *string {
	return r.language
}

// LanguageName returns the language or an empty string
func (r *Repository) LanguageName() string {
	if r.language == nil {
		return ""
	}
	return *r.language
}

func (r *Repository) Homepage() *string {
	return r.homepage
}

func (r *Repository) StargazersCount() int {
	return r.counts.Stars()
}

func (r *Repository) ForksCount() int {
	return r.counts.Forks()
}

// Topics returns a copy of the topic labels in source order
func (r *Repository) Topics() []string {
	out := make([]string, len(r.topics))
	copy(out, r.topics)
	return out
}

func (r *Repository) IsFork() bool {
	return r.isFork
}

func (r *Repository) UpdatedAt() time.Time {
	return r.updatedAt
}

// String returns string representation (for debugging)
func (r *Repository) String() string {
	return fmt.Sprintf("Repository{id: %d, name: %s, fork: %t}",
		r.githubID.Int64(), r.name.String(), r.isFork)
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
