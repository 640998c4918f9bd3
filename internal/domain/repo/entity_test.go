package repo_test

import (
	"errors"
	"testing"
	"time"

	"portfolio-core/internal/domain/repo"
)

func strPtr(s string) *string { return &s }

func TestNewRepository(t *testing.T) {
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		githubID int64
		repoName string
		url      string
		meta     repo.Metadata
		wantErr  bool
	}{
		{
			name:     "valid repository",
			githubID: 12345,
			repoName: "my-repo",
			url:      "https://github.com/user/my-repo",
			meta:     repo.Metadata{Stars: 3, Forks: 1, Topics: []string{"go"}},
			wantErr:  false,
		},
		{
			name:     "invalid repository name",
			githubID: 12345,
			repoName: "",
			url:      "https://github.com/user/my-repo",
			wantErr:  true,
		},
		{
			name:     "invalid GitHub ID",
			githubID: 0,
			repoName: "my-repo",
			url:      "https://github.com/user/my-repo",
			wantErr:  true,
		},
		{
			name:     "invalid URL",
			githubID: 12345,
			repoName: "my-repo",
			url:      "invalid",
			wantErr:  true,
		},
		{
			name:     "negative stars",
			githubID: 12345,
			repoName: "my-repo",
			url:      "https://github.com/user/my-repo",
			meta:     repo.Metadata{Stars: -1},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository, err := repo.NewRepository(tt.githubID, tt.repoName, tt.url, updated, tt.meta)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRepository() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var domainErr *repo.DomainError
				if !errors.As(err, &domainErr) || domainErr.Code != repo.CodeInvalidRepositoryData {
					t.Errorf("NewRepository() error = %v, want %s", err, repo.CodeInvalidRepositoryData)
				}
				return
			}
			if repository.Name().String() != tt.repoName {
				t.Errorf("Name = %v, want %v", repository.Name().String(), tt.repoName)
			}
			if !repository.UpdatedAt().Equal(updated) {
				t.Errorf("UpdatedAt = %v, want %v", repository.UpdatedAt(), updated)
			}
		})
	}
}

func TestRepository_OptionalFields(t *testing.T) {
	repository, err := repo.NewRepository(1, "r", "https://github.com/u/r", time.Now(), repo.Metadata{
		Description: strPtr("  "),
		Language:    nil,
		Homepage:    strPtr("https://example.com"),
	})
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}

	if repository.Description() != nil {
		t.Errorf("blank description should be treated as absent, got %q", *repository.Description())
	}
	if got := repository.DescriptionOr("No description provided"); got != "No description provided" {
		t.Errorf("DescriptionOr() = %q", got)
	}
	if repository.LanguageName() != "" {
		t.Errorf("LanguageName() = %q, want empty", repository.LanguageName())
	}
	if repository.Homepage() == nil || *repository.Homepage() != "https://example.com" {
		t.Errorf("Homepage = %v", repository.Homepage())
	}
}

func TestRepository_TopicsAreCopied(t *testing.T) {
	topics := []string{"cli", "go"}
	repository, _ := repo.NewRepository(1, "r", "https://github.com/u/r", time.Now(), repo.Metadata{Topics: topics})

	topics[0] = "mutated"
	got := repository.Topics()
	if got[0] != "cli" {
		t.Errorf("Topics()[0] = %q, want cli", got[0])
	}

	got[1] = "mutated"
	if repository.Topics()[1] != "go" {
		t.Error("Topics() should return a copy")
	}
}

func TestRepository_Matches(t *testing.T) {
	repository, _ := repo.NewRepository(1, "Resume-Chat", "https://github.com/u/r", time.Now(), repo.Metadata{
		Description: strPtr("Retrieval augmented answers"),
		Topics:      []string{"Qdrant", "fastapi"},
	})
	bare, _ := repo.NewRepository(2, "bare", "https://github.com/u/bare", time.Now(), repo.Metadata{})

	tests := []struct {
		name string
		repo *repo.Repository
		term string
		want bool
	}{
		{"empty term", bare, "", true},
		{"name", repository, "resume", true},
		{"description", repository, "augmented", true},
		{"topic", repository, "qdrant", true},
		{"no match", repository, "kubernetes", false},
		{"missing description never matches", bare, "retrieval", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.repo.Matches(tt.term); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestRepository_HasLanguage(t *testing.T) {
	goRepo, _ := repo.NewRepository(1, "r", "https://github.com/u/r", time.Now(), repo.Metadata{Language: strPtr("Go")})
	noLang, _ := repo.NewRepository(2, "s", "https://github.com/u/s", time.Now(), repo.Metadata{})

	if !goRepo.HasLanguage("Go") {
		t.Error("HasLanguage(Go) should be true")
	}
	if goRepo.HasLanguage("go") {
		t.Error("HasLanguage is case-sensitive")
	}
	if noLang.HasLanguage("") {
		t.Error("a repository without language never matches")
	}
}

func TestNewRepositoriesLoadedEvent(t *testing.T) {
	a, _ := repo.NewRepository(1, "a", "https://github.com/u/a", time.Now(), repo.Metadata{})
	b, _ := repo.NewRepository(2, "b", "https://github.com/u/b", time.Now(), repo.Metadata{Fork: true})

	ev := repo.NewRepositoriesLoadedEvent("octocat", []*repo.Repository{a, b})
	if ev.EventType() != repo.EventTypeRepositoriesLoaded {
		t.Errorf("EventType = %v", ev.EventType())
	}
	if ev.RepositoryCount != 2 || ev.ForkCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", ev.RepositoryCount, ev.ForkCount)
	}
	if ev.AggregateID() != "octocat" {
		t.Errorf("AggregateID = %v", ev.AggregateID())
	}
}
