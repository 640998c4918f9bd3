package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio-core/internal/domain/repo"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testRepos(t *testing.T, n int) []*repo.Repository {
	t.Helper()
	now := time.Now()
	out := make([]*repo.Repository, 0, n)
	for i := 1; i <= n; i++ {
		lang := "Go"
		if i%3 == 0 {
			lang = "Rust"
		}
		r, err := repo.NewRepository(int64(i), fmt.Sprintf("repo-%02d", i), "https://github.com/octocat/r", now.Add(-time.Duration(i)*time.Hour), repo.Metadata{Language: &lang})
		if err != nil {
			t.Fatalf("NewRepository: %v", err)
		}
		out = append(out, r)
	}
	return out
}

func loaded(t *testing.T, n int) browseModel {
	m := newBrowseModel(context.Background(), repo.SourceFunc(func(ctx context.Context) ([]*repo.Repository, error) {
		return testRepos(t, n), nil
	}), "octocat", nil)
	updated, _ := m.Update(m.Init()())
	return updated.(browseModel)
}

func TestBrowseLoadingThenLoaded(t *testing.T) {
	m := newBrowseModel(context.Background(), repo.SourceFunc(func(ctx context.Context) ([]*repo.Repository, error) {
		return testRepos(t, 3), nil
	}), "octocat", nil)

	if !strings.Contains(m.View(), "Loading projects...") {
		t.Fatalf("expected loading view")
	}

	updated, _ := m.Update(m.Init()())
	m = updated.(browseModel)
	view := m.View()
	if !strings.Contains(view, "repo-01") || !strings.Contains(view, "Showing 1-3 of 3") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestBrowseFailure(t *testing.T) {
	m := newBrowseModel(context.Background(), repo.SourceFunc(func(ctx context.Context) ([]*repo.Repository, error) {
		return nil, errors.New("rate limited")
	}), "octocat", nil)

	updated, _ := m.Update(m.Init()())
	view := updated.(browseModel).View()
	if !strings.Contains(view, "Unable to fetch projects from GitHub") || !strings.Contains(view, "No projects found") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestBrowsePaging(t *testing.T) {
	m := loaded(t, 20)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(browseModel)
	if m.browser.Page() != 2 {
		t.Fatalf("expected page 2, got %d", m.browser.Page())
	}

	updated, _ = m.Update(key("n"))
	updated, _ = updated.Update(key("n"))
	m = updated.(browseModel)
	if m.browser.Page() != 3 {
		t.Fatalf("paging must stop at the last page, got %d", m.browser.Page())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if updated.(browseModel).browser.Page() != 2 {
		t.Fatalf("expected page 2 after left")
	}
}

func TestBrowseSearchEditing(t *testing.T) {
	m := loaded(t, 20)
	m.browser.SetPage(2)

	updated, _ := m.Update(key("/"))
	m = updated.(browseModel)
	if !m.editing {
		t.Fatalf("expected search editing")
	}

	for _, r := range "repo-1" {
		updated, _ = m.Update(key(string(r)))
		m = updated.(browseModel)
	}
	if m.browser.SearchTerm() != "repo-1" {
		t.Fatalf("search term = %q", m.browser.SearchTerm())
	}
	if m.browser.Page() != 1 {
		t.Fatalf("search must reset the page")
	}
	if got := len(m.browser.Filtered()); got != 10 {
		t.Fatalf("expected 10 matches (repo-10..19), got %d", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(browseModel)
	if m.browser.SearchTerm() != "repo-" {
		t.Fatalf("backspace: search term = %q", m.browser.SearchTerm())
	}

	// q while editing is text, not quit
	updated, cmd := m.Update(key("q"))
	m = updated.(browseModel)
	if cmd != nil || m.browser.SearchTerm() != "repo-q" {
		t.Fatalf("q should be typed into the search box")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if updated.(browseModel).editing {
		t.Fatalf("enter should stop editing")
	}
}

func TestBrowseLanguageCycleAndClear(t *testing.T) {
	m := loaded(t, 9)

	updated, _ := m.Update(key("l"))
	m = updated.(browseModel)
	if m.browser.Language() != "Go" {
		t.Fatalf("expected Go, got %s", m.browser.Language())
	}

	updated, _ = m.Update(key("L"))
	updated, _ = updated.Update(key("L"))
	m = updated.(browseModel)
	if m.browser.Language() != "Rust" {
		t.Fatalf("expected wrap-around to Rust, got %s", m.browser.Language())
	}
	if got := len(m.browser.Filtered()); got != 3 {
		t.Fatalf("expected 3 Rust repos, got %d", got)
	}

	updated, _ = m.Update(key("c"))
	m = updated.(browseModel)
	if m.browser.Language() != "All" || m.browser.IsFiltered() {
		t.Fatalf("clear should reset filters")
	}
}

func TestBrowseQuit(t *testing.T) {
	m := loaded(t, 1)
	updated, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if updated.(browseModel).View() != "" {
		t.Fatalf("view should be empty after quit")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(testRepos(t, 2), 10)
	for _, want := range []string{"Name", "repo-01", "repo-02", "No description provided", "10", "11"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("abc", 5); got != "abc  " {
		t.Fatalf("pad = %q", got)
	}
	if got := pad("abcdefgh", 5); got != "abcd…" {
		t.Fatalf("truncate = %q", got)
	}
}
