package browser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-core/internal/domain/browser"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       []int
	}{
		{"single page", 1, 1, []int{1}},
		{"fits", 2, 4, []int{1, 2, 3, 4}},
		{"exactly five", 5, 5, []int{1, 2, 3, 4, 5}},
		{"start", 1, 12, []int{1, 2, 3, 4, 5}},
		{"still start", 3, 12, []int{1, 2, 3, 4, 5}},
		{"centered", 6, 12, []int{4, 5, 6, 7, 8}},
		{"end", 10, 12, []int{8, 9, 10, 11, 12}},
		{"last", 12, 12, []int{8, 9, 10, 11, 12}},
		{"six pages middle", 4, 6, []int{2, 3, 4, 5, 6}},
		{"page out of range is clamped", 40, 12, []int{8, 9, 10, 11, 12}},
		{"zero pages", 1, 0, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, browser.Window(tt.page, tt.totalPages))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, browser.TotalPages(0, 9))
	assert.Equal(t, 1, browser.TotalPages(9, 9))
	assert.Equal(t, 2, browser.TotalPages(10, 9))
	assert.Equal(t, 3, browser.TotalPages(20, 9))
}

func TestLoadState(t *testing.T) {
	assert.True(t, browser.Loading().IsLoading())

	n, ok := browser.Loaded(4).Count()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	_, failed := browser.Loaded(4).Reason()
	assert.False(t, failed)

	reason, failed := browser.Failed("timeout").Reason()
	assert.True(t, failed)
	assert.Equal(t, "timeout", reason)
	_, ok = browser.Failed("timeout").Count()
	assert.False(t, ok)

	assert.Equal(t, "loaded(4)", browser.Loaded(4).String())
	assert.Equal(t, "failed(timeout)", browser.Failed("timeout").String())
	assert.Equal(t, "loading", browser.Loading().String())
}
