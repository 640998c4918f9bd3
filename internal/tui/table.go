package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"portfolio-core/internal/domain/repo"
)

type column struct {
	title string
	width int
}

var columns = []column{
	{"#", 4},
	{"Name", 28},
	{"Language", 12},
	{"Stars", 7},
	{"Forks", 6},
	{"Updated", 15},
	{"Description", 40},
}

// RenderTable lays out repos as a fixed-width table. first is the 1-based
// position of repos[0] within the filtered list.
func RenderTable(repos []*repo.Repository, first int) string {
	var b strings.Builder

	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = headerStyle.Render(pad(c.title, c.width))
	}
	b.WriteString(strings.Join(cells, " "))
	b.WriteString("\n")

	for i, r := range repos {
		lang := r.LanguageName()
		row := []string{
			mutedStyle.Render(pad(fmt.Sprintf("%d", first+i), columns[0].width)),
			repoNameStyle.Render(pad(r.Name().String(), columns[1].width)),
			languageStyle(lang).Render(pad(lang, columns[2].width)),
			pad(humanize.Comma(int64(r.StargazersCount())), columns[3].width),
			pad(humanize.Comma(int64(r.ForksCount())), columns[4].width),
			mutedStyle.Render(pad(humanize.Time(r.UpdatedAt()), columns[5].width)),
			pad(r.DescriptionOr("No description provided"), columns[6].width),
		}
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}

	return b.String()
}

// pad truncates or right-pads s to exactly width display cells
func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "…"
	}
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}
