package store

import "strconv"

// ListKey returns the numbered key for element i (1-based) of a list.
func ListKey(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// ReadList reads prefix1, prefix2, ... up to the first missing or empty
// value.
func (sc Scope) ReadList(prefix string) []string {
	var items []string
	for i := 1; ; i++ {
		item := sc.String(ListKey(prefix, i), "")
		if item == "" {
			return items
		}
		items = append(items, item)
	}
}

// WriteList rewrites the list from index 1 and prunes stale trailing
// entries. An empty item ends the list, since it could not be read back.
func (sc Scope) WriteList(prefix string, items []string) {
	n := 0
	for _, item := range items {
		if item == "" {
			break
		}
		n++
		sc.SetValue(ListKey(prefix, n), item)
	}
	sc.PruneList(n+1, prefix)
}

// PruneList removes prefix<from>, prefix<from+1>, ... until it finds an
// index with no value. The same indices of each companion prefix are
// removed alongside.
func (sc Scope) PruneList(from int, prefix string, companions ...string) int {
	if from < 1 {
		from = 1
	}

	removed := 0
	for i := from; sc.String(ListKey(prefix, i), "") != ""; i++ {
		sc.Remove(ListKey(prefix, i))
		for _, c := range companions {
			sc.Remove(ListKey(c, i))
		}
		removed++
	}
	return removed
}
