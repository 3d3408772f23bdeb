package jobstore

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a case and diacritic insensitive collator.
// Collators are not safe for concurrent use, so callers create one per operation.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
}

// sortStrings orders values with locale-aware comparison. Values the
// collator considers equal fall back to byte order.
func sortStrings(values []string) {
	c := newCollator()
	sort.SliceStable(values, func(i, j int) bool {
		if cmp := c.CompareString(values[i], values[j]); cmp != 0 {
			return cmp < 0
		}
		return values[i] < values[j]
	})
}
