package tui

import (
	"github.com/charmbracelet/lipgloss"

	"portfolio-core/internal/content"
)

// badgeHex mirrors the site stylesheet so the terminal shows the same language colours
var badgeHex = map[string]string{
	"bg-yellow-500": "#eab308",
	"bg-blue-400":   "#60a5fa",
	"bg-blue-500":   "#3b82f6",
	"bg-blue-600":   "#2563eb",
	"bg-green-400":  "#4ade80",
	"bg-green-500":  "#22c55e",
	"bg-green-600":  "#16a34a",
	"bg-red-500":    "#ef4444",
	"bg-red-600":    "#dc2626",
	"bg-cyan-400":   "#22d3ee",
	"bg-cyan-500":   "#06b6d4",
	"bg-orange-400": "#fb923c",
	"bg-orange-500": "#f97316",
	"bg-orange-600": "#ea580c",
	"bg-indigo-500": "#6366f1",
	"bg-purple-400": "#c084fc",
	"bg-purple-500": "#a855f7",
	"bg-gray-500":   "#6b7280",
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4f46e5"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Background(lipgloss.Color("#e5e7eb"))
	repoNameStyle = lipgloss.NewStyle().Bold(true)
)

func languageStyle(language string) lipgloss.Style {
	hex, ok := badgeHex[content.LanguageColor(language)]
	if !ok {
		hex = badgeHex[content.DefaultLanguageColor]
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
