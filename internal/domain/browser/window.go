package browser

// MaxWindow is the largest number of page buttons rendered at once
const MaxWindow = 5

// TotalPages returns ceil(items/pageSize) with a floor of one page
func TotalPages(items, pageSize int) int {
	if items <= 0 || pageSize <= 0 {
		return 1
	}
	return (items + pageSize - 1) / pageSize
}

// Window returns the page numbers to render for the current page.
// Up to MaxWindow pages are shown: all of them when they fit, the first
// five near the start, the last five near the end, and otherwise the
// current page with two neighbours on each side.
func Window(page, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	page = clamp(page, 1, totalPages)

	var first int
	switch {
	case totalPages <= MaxWindow:
		first = 1
	case page <= 3:
		first = 1
	case page >= totalPages-2:
		first = totalPages - MaxWindow + 1
	default:
		first = page - 2
	}

	n := MaxWindow
	if totalPages < n {
		n = totalPages
	}

	window := make([]int, n)
	for i := range window {
		window[i] = first + i
	}
	return window
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
