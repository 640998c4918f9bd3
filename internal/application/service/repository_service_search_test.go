package service_test

import (
	"context"
	"testing"
	"time"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/domain/repo"
)

func TestRepositoryService_SearchRepositories(t *testing.T) {
	desc := "A CLI for deployments"
	r1 := newRepo(t, 1, "my-react-app", "TypeScript", time.Hour, false)
	r2, _ := repo.NewRepository(2, "golang-service", "https://github.com/octocat/golang-service", baseTime, repo.Metadata{
		Description: &desc,
		Topics:      []string{"microservice"},
	})
	r3 := newRepo(t, 3, "python-script", "Python", 2*time.Hour, false)
	svc := service.NewRepositoryService(&mockSource{repos: []*repo.Repository{r1, r2, r3}}, nil)

	tests := []struct {
		search string
		want   []string
	}{
		{"golang", []string{"golang-service"}},
		{"CLI", []string{"golang-service"}},
		{"MICRO", []string{"golang-service"}},
		{"script", []string{"python-script"}},
		{"nothing-matches", nil},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			resp := svc.Browse(context.Background(), dto.BrowseQuery{Search: tt.search})
			if len(resp.Repositories) != len(tt.want) {
				t.Fatalf("len(Repositories) = %v, want %v", len(resp.Repositories), len(tt.want))
			}
			for i, name := range tt.want {
				if resp.Repositories[i].Name != name {
					t.Errorf("Repositories[%d] = %v, want %v", i, resp.Repositories[i].Name, name)
				}
			}
			if resp.Search != tt.search {
				t.Errorf("Search = %v, want %v", resp.Search, tt.search)
			}
		})
	}
}

func TestRepositoryService_EmptySearch(t *testing.T) {
	svc := service.NewRepositoryService(&mockSource{repos: twentyRepos(t)}, nil)

	resp := svc.Browse(context.Background(), dto.BrowseQuery{Search: "", Language: "Cobol"})

	if resp.Language != "All" {
		t.Errorf("Language = %v, want All", resp.Language)
	}
	if resp.Filtered() {
		t.Error("Expected unfiltered response")
	}
	if len(resp.Repositories) != 9 {
		t.Errorf("len(Repositories) = %v, want 9", len(resp.Repositories))
	}
}
