// Package browser holds the searchable, filterable, paginated view over the
// owner's repositories. A Browser is owned by a single caller (one HTTP
// request, one terminal session) and is never shared between goroutines.
package browser

import (
	"context"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/domain/repo"
)

const (
	// PageSize is the fixed number of repositories per page
	PageSize = 9

	// LanguageAll is the sentinel filter that admits every language
	LanguageAll = "All"
)

// Browser is the repository browsing state machine
type Browser struct {
	logger hclog.Logger

	state     LoadState
	working   []*repo.Repository
	languages []string

	search   string
	language string
	page     int

	filtered []*repo.Repository
}

// New returns a browser in the Loading state with no filters applied
func New(logger hclog.Logger) *Browser {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Browser{
		logger:    logger,
		state:     Loading(),
		languages: []string{LanguageAll},
		language:  LanguageAll,
		page:      1,
	}
}

// Load performs the single fetch from src and applies the result.
// Failures are logged and leave an empty working set; they are not returned.
func (b *Browser) Load(ctx context.Context, src repo.Source) {
	repos, err := src.ListRepositories(ctx)
	b.Receive(repos, err)
}

// Receive applies the outcome of a fetch performed elsewhere, e.g. by an
// event loop that runs the request asynchronously and delivers the result.
func (b *Browser) Receive(repos []*repo.Repository, err error) {
	if err != nil {
		b.logger.Warn("error loading repositories", "error", err)
		b.state = Failed(err.Error())
		b.setWorkingSet(nil)
		return
	}

	b.setWorkingSet(repos)
	b.state = Loaded(len(b.working))
	b.logger.Debug("repositories loaded", "count", len(b.working))
}

// SetSearchTerm updates the search term and returns to the first page
func (b *Browser) SetSearchTerm(term string) {
	b.search = term
	b.recompute()
}

// SetLanguageFilter selects a language and returns to the first page.
// Values that are not among Languages() select LanguageAll.
func (b *Browser) SetLanguageFilter(language string) {
	b.language = b.normalizeLanguage(language)
	b.recompute()
}

// SetPage moves to page n, clamped to [1, TotalPages()]
func (b *Browser) SetPage(n int) {
	b.page = clamp(n, 1, b.TotalPages())
}

// NextPage advances one page, stopping at the last page
func (b *Browser) NextPage() {
	b.SetPage(b.page + 1)
}

// PrevPage goes back one page, stopping at the first page
func (b *Browser) PrevPage() {
	b.SetPage(b.page - 1)
}

// ClearFilters resets the search term and language filter
func (b *Browser) ClearFilters() {
	b.search = ""
	b.language = LanguageAll
	b.recompute()
}

// State returns the load state
func (b *Browser) State() LoadState {
	return b.state
}

// SearchTerm returns the current search term
func (b *Browser) SearchTerm() string {
	return b.search
}

// Language returns the selected language filter
func (b *Browser) Language() string {
	return b.language
}

// Page returns the current 1-indexed page
func (b *Browser) Page() int {
	return b.page
}

// Total returns the size of the working set
func (b *Browser) Total() int {
	return len(b.working)
}

// Languages returns LanguageAll followed by the sorted distinct languages
// present in the working set
func (b *Browser) Languages() []string {
	out := make([]string, len(b.languages))
	copy(out, b.languages)
	return out
}

// Filtered returns the working set narrowed by search term and language
func (b *Browser) Filtered() []*repo.Repository {
	out := make([]*repo.Repository, len(b.filtered))
	copy(out, b.filtered)
	return out
}

// TotalPages returns the number of pages of the filtered set (at least one)
func (b *Browser) TotalPages() int {
	return TotalPages(len(b.filtered), PageSize)
}

// Visible returns the filtered repositories on the current page
func (b *Browser) Visible() []*repo.Repository {
	start, end := b.bounds()
	out := make([]*repo.Repository, end-start)
	copy(out, b.filtered[start:end])
	return out
}

// Range returns the 1-based positions of the first and last visible
// repositories within the filtered set, or 0, 0 when nothing is visible
func (b *Browser) Range() (first, last int) {
	start, end := b.bounds()
	if start == end {
		return 0, 0
	}
	return start + 1, end
}

// PageWindow returns the page numbers to offer as buttons
func (b *Browser) PageWindow() []int {
	return Window(b.page, b.TotalPages())
}

// IsEmpty reports the "no results" state: nothing survived the filters
func (b *Browser) IsEmpty() bool {
	return len(b.filtered) == 0
}

// IsFiltered reports whether any filter input is active
func (b *Browser) IsFiltered() bool {
	return b.search != "" || b.language != LanguageAll
}

func (b *Browser) bounds() (int, int) {
	start := (b.page - 1) * PageSize
	if start > len(b.filtered) {
		start = len(b.filtered)
	}
	end := start + PageSize
	if end > len(b.filtered) {
		end = len(b.filtered)
	}
	return start, end
}

// setWorkingSet drops forks, orders by last update (newest first) and
// rebuilds the language options
func (b *Browser) setWorkingSet(repos []*repo.Repository) {
	working := make([]*repo.Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil || r.IsFork() {
			continue
		}
		working = append(working, r)
	}
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].UpdatedAt().After(working[j].UpdatedAt())
	})
	b.working = working

	seen := make(map[string]struct{})
	var langs []string
	for _, r := range working {
		lang := r.LanguageName()
		if lang == "" {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	b.languages = append([]string{LanguageAll}, langs...)

	b.language = b.normalizeLanguage(b.language)
	b.recompute()
}

func (b *Browser) recompute() {
	term := strings.ToLower(b.search)

	filtered := make([]*repo.Repository, 0, len(b.working))
	for _, r := range b.working {
		if !r.Matches(term) {
			continue
		}
		if b.language != LanguageAll && !r.HasLanguage(b.language) {
			continue
		}
		filtered = append(filtered, r)
	}

	b.filtered = filtered
	b.page = 1
}

func (b *Browser) normalizeLanguage(language string) string {
	if language == "" || strings.EqualFold(language, LanguageAll) {
		return LanguageAll
	}
	for _, l := range b.languages {
		if l == language {
			return l
		}
	}
	return LanguageAll
}
