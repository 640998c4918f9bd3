// Package web holds the server-rendered pages and their assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"portfolio-core/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the page templates. When dir is set they are read from
// disk instead of the embedded copy, which lets templates be edited live.
func Templates(dir string) (*template.Template, error) {
	t := template.New("").Funcs(Funcs())
	if dir != "" {
		parsed, err := t.ParseGlob(filepath.Join(dir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("parsing templates in %s: %w", dir, err)
		}
		return parsed, nil
	}

	parsed, err := t.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return parsed, nil
}

// Static serves the stylesheet and scripts
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Funcs are the helpers available to every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"languageColor": content.LanguageColor,
		"month":         month,
		"ago":           ago,
		"count":         func(n int) string { return humanize.Comma(int64(n)) },
		"deref":         deref,
		"firstN":        firstN,
		"pageURL":       pageURL,
		"add":           func(a, b int) int { return a + b },
		"sub":           func(a, b int) int { return a - b },
		"mib":           func(n int64) string { return humanize.IBytes(uint64(n)) },
	}
}

// month renders an RFC 3339 timestamp as "Jun 2024"
func month(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// ago renders an RFC 3339 timestamp relative to now, e.g. "3 days ago"
func ago(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return humanize.Time(t)
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// pageURL links to a projects page keeping the current filters
func pageURL(search, language string, page int) string {
	v := url.Values{}
	if search != "" {
		v.Set("search", search)
	}
	if language != "" && language != "All" {
		v.Set("language", language)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return "/projects"
	}
	return "/projects?" + v.Encode()
}
