package content

// DefaultLanguageColor is used for languages without a dedicated colour
const DefaultLanguageColor = "bg-gray-500"

var languageColors = map[string]string{
	"JavaScript": "bg-yellow-500",
	"TypeScript": "bg-blue-500",
	"Python":     "bg-green-500",
	"Java":       "bg-red-500",
	"Go":         "bg-cyan-500",
	"Rust":       "bg-orange-500",
	"PHP":        "bg-indigo-500",
	"Ruby":       "bg-red-600",
	"C++":        "bg-blue-600",
	"C#":         "bg-purple-500",
	"Swift":      "bg-orange-400",
	"Kotlin":     "bg-purple-400",
	"Dart":       "bg-blue-400",
	"HTML":       "bg-orange-600",
	"CSS":        "bg-blue-400",
	"Shell":      "bg-green-400",
	"Vue":        "bg-green-600",
	"React":      "bg-cyan-400",
	"Angular":    "bg-red-500",
	"Svelte":     "bg-orange-500",
}

// LanguageColor returns the badge colour class for a repository language.
// Matching is exact; unknown or empty languages get DefaultLanguageColor.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultLanguageColor
}
