// Package tui is the terminal project browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/domain/browser"
	"portfolio-core/internal/domain/repo"
)

// loadedMsg carries the outcome of the single fetch back to the event loop
type loadedMsg struct {
	repos []*repo.Repository
	err   error
}

type browseModel struct {
	ctx      context.Context
	source   repo.Source
	owner    string
	browser  *browser.Browser
	editing  bool
	quitting bool
}

// NewBrowseModel creates the bubbletea model for browsing owner's projects
func NewBrowseModel(ctx context.Context, source repo.Source, owner string, logger hclog.Logger) tea.Model {
	return newBrowseModel(ctx, source, owner, logger)
}

func newBrowseModel(ctx context.Context, source repo.Source, owner string, logger hclog.Logger) browseModel {
	return browseModel{
		ctx:     ctx,
		source:  source,
		owner:   owner,
		browser: browser.New(logger),
	}
}

func (m browseModel) Init() tea.Cmd {
	return fetch(m.ctx, m.source)
}

func fetch(ctx context.Context, source repo.Source) tea.Cmd {
	return func() tea.Msg {
		repos, err := source.ListRepositories(ctx)
		return loadedMsg{repos: repos, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.browser.Receive(msg.repos, msg.err)
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateSearch(msg), nil
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) browseModel {
	term := m.browser.SearchTerm()
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.editing = false
	case tea.KeyBackspace:
		if r := []rune(term); len(r) > 0 {
			m.browser.SetSearchTerm(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		m.browser.SetSearchTerm(term + " ")
	case tea.KeyRunes:
		m.browser.SetSearchTerm(term + string(msg.Runes))
	}
	return m
}

func (m browseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.editing = true
	case "l":
		m.cycleLanguage(1)
	case "L":
		m.cycleLanguage(-1)
	case "right", "n":
		m.browser.NextPage()
	case "left", "p":
		m.browser.PrevPage()
	case "c":
		m.browser.ClearFilters()
	}
	return m, nil
}

func (m browseModel) cycleLanguage(step int) {
	langs := m.browser.Languages()
	current := 0
	for i, l := range langs {
		if l == m.browser.Language() {
			current = i
			break
		}
	}
	next := (current + step + len(langs)) % len(langs)
	m.browser.SetLanguageFilter(langs[next])
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Projects · %s", m.owner)))
	b.WriteString("\n\n")

	state := m.browser.State()
	if state.IsLoading() {
		b.WriteString(mutedStyle.Render("Loading projects..."))
		b.WriteString("\n")
		return b.String()
	}
	if _, failed := state.Reason(); failed {
		b.WriteString(errorStyle.Render("Unable to fetch projects from GitHub"))
		b.WriteString("\n\n")
	}

	search := m.browser.SearchTerm()
	if m.editing {
		search = inputStyle.Render(search + "_")
	} else if search == "" {
		search = mutedStyle.Render("(none)")
	}
	b.WriteString(fmt.Sprintf("Search: %s   Language: %s\n\n", search, m.languageBar()))

	if m.browser.IsEmpty() {
		b.WriteString("No projects found\n")
		if m.browser.IsFiltered() {
			b.WriteString(mutedStyle.Render("press c to clear filters"))
			b.WriteString("\n")
		}
	} else {
		first, last := m.browser.Range()
		b.WriteString(RenderTable(m.browser.Visible(), first))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Showing %d-%d of %d", first, last, len(m.browser.Filtered())))
		if m.browser.TotalPages() > 1 {
			b.WriteString("   ")
			b.WriteString(m.pageBar())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("/ search · l/L language · ←/→ page · c clear · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) languageBar() string {
	parts := make([]string, 0, len(m.browser.Languages()))
	for _, l := range m.browser.Languages() {
		if l == m.browser.Language() {
			parts = append(parts, activeStyle.Render(l))
		} else {
			parts = append(parts, languageStyle(l).Render(l))
		}
	}
	return strings.Join(parts, " ")
}

func (m browseModel) pageBar() string {
	parts := []string{"‹ Prev"}
	for _, p := range m.browser.PageWindow() {
		label := fmt.Sprintf("%d", p)
		if p == m.browser.Page() {
			label = activeStyle.Render(label)
		}
		parts = append(parts, label)
	}
	parts = append(parts, "Next ›")
	return strings.Join(parts, " ")
}
