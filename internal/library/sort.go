package library

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

// SortKey is the numeric interpretation of a record's id. Missing and
// non-numeric ids sort as 0.
func SortKey(raw Raw) float64 {
	id, ok := text(raw, "id", "ID")
	if !ok {
		return 0
	}
	id = strings.TrimSpace(id)
	if isInfinitySpelling(id) {
		return 0
	}
	f, err := strconv.ParseFloat(id, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// Only "Infinity" counts as an infinite id; ParseFloat also accepts inf.
func isInfinitySpelling(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.EqualFold(s, "inf") || (strings.EqualFold(s, "infinity") && s != "Infinity")
}

// SortByID returns a copy of raws stably sorted ascending by SortKey.
func SortByID(raws []Raw) []Raw {
	type keyed struct {
		key float64
		raw Raw
	}
	items := make([]keyed, len(raws))
	for i, raw := range raws {
		items[i] = keyed{key: SortKey(raw), raw: raw}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})

	sorted := make([]Raw, len(items))
	for i, item := range items {
		sorted[i] = item.raw
	}
	return sorted
}
