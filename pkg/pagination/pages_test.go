package pagination

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(items []Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		label := item.Label()
		if item.Current {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func TestPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		current  int
		total    int
		siblings int
		want     string
	}{
		{name: "two pages", current: 1, total: 2, siblings: 1, want: "[1] 2"},
		{name: "start of long list", current: 1, total: 10, siblings: 1, want: "[1] 2 ... 10"},
		{name: "middle of long list", current: 5, total: 10, siblings: 1, want: "1 ... 4 [5] 6 ... 10"},
		{name: "end of long list", current: 10, total: 10, siblings: 1, want: "1 ... 9 [10]"},
		{name: "near start has no left ellipsis", current: 3, total: 10, siblings: 1, want: "1 2 [3] 4 ... 10"},
		{name: "near end has no right ellipsis", current: 8, total: 10, siblings: 1, want: "1 ... 7 [8] 9 10"},
		{name: "wide window", current: 6, total: 12, siblings: 2, want: "1 ... 4 5 [6] 7 8 ... 12"},
		{name: "zero siblings", current: 6, total: 12, siblings: 0, want: "1 ... [6] ... 12"},
		{name: "negative siblings act as zero", current: 6, total: 12, siblings: -3, want: "1 ... [6] ... 12"},
		{name: "window covers everything", current: 3, total: 5, siblings: 3, want: "1 2 [3] 4 5"},
		{name: "months of a year", current: 2, total: 12, siblings: 1, want: "1 [2] 3 ... 12"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, labels(Pages(tc.current, tc.total, tc.siblings)))
		})
	}
}

func TestPagesSinglePageRendersNothing(t *testing.T) {
	t.Parallel()

	require.Nil(t, Pages(1, 1, 1))
	require.Nil(t, Pages(1, 0, 1))
}

func TestPagesNeverRepeatPages(t *testing.T) {
	t.Parallel()

	for total := 2; total <= 20; total++ {
		for current := 1; current <= total; current++ {
			seen := map[int]bool{}
			currentCount := 0
			for _, item := range Pages(current, total, 1) {
				if item.Current {
					currentCount++
				}
				if item.Ellipsis {
					continue
				}
				require.False(t, seen[item.Page], "page %d repeated (current=%d total=%d)", item.Page, current, total)
				seen[item.Page] = true
			}
			require.Equal(t, 1, currentCount)
			require.True(t, seen[1])
			require.True(t, seen[total])
		}
	}
}

func TestCanChange(t *testing.T) {
	t.Parallel()

	assert.True(t, CanChange(2, 1, 5))
	assert.False(t, CanChange(1, 1, 5))
	assert.False(t, CanChange(0, 1, 5))
	assert.False(t, CanChange(6, 5, 5))

	assert.False(t, HasPrevious(1))
	assert.True(t, HasPrevious(2))
	assert.True(t, HasNext(4, 5))
	assert.False(t, HasNext(5, 5))
}
