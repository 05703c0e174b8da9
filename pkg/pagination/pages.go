// Package pagination computes the compact page list shown by a pager:
// the first and last pages, a window of siblings around the current page,
// and ellipses where pages are skipped.
package pagination

import "strconv"

// Item is one entry of a page list. Ellipsis items have Page == 0.
type Item struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// Label renders the item as it appears in a pager.
func (i Item) Label() string {
	if i.Ellipsis {
		return "..."
	}
	return strconv.Itoa(i.Page)
}

// Pages returns the page list for current out of total pages, keeping
// siblings pages on each side of current. A single page, or none, needs no
// pager and yields nil.
func Pages(current, total, siblings int) []Item {
	if total <= 1 {
		return nil
	}
	if siblings < 0 {
		siblings = 0
	}

	items := []Item{{Page: 1, Current: current == 1}}

	left := max(current-siblings, 2)
	right := min(current+siblings, total-1)

	if left > 2 {
		items = append(items, Item{Ellipsis: true})
	}
	for page := left; page <= right; page++ {
		items = append(items, Item{Page: page, Current: page == current})
	}
	if right < total-1 {
		items = append(items, Item{Ellipsis: true})
	}

	return append(items, Item{Page: total, Current: current == total})
}

// CanChange reports whether moving from current to target is a real page
// change: target must exist and differ from current.
func CanChange(target, current, total int) bool {
	return target >= 1 && target <= total && target != current
}

// HasPrevious reports whether a previous page exists.
func HasPrevious(current int) bool {
	return current > 1
}

// HasNext reports whether a next page exists.
func HasNext(current, total int) bool {
	return current < total
}
