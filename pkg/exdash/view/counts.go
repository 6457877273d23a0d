package view

import (
	"cmp"
	"math"
	"slices"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// ValueCount is the frequency of one distinct value.
type ValueCount struct {
	Value any
	Count int
}

// ValueCounts counts the distinct non-blank values of a column, most
// frequent first. Ties keep the order in which values first appear. Equal
// numbers count together whatever their Go type; the first one seen is
// reported.
func (v *View) ValueCounts(column string) []ValueCount {
	index := make(map[any]int)
	var counts []ValueCount
	for _, r := range v.Rows {
		val := r.Value(column)
		if models.IsBlank(val) {
			continue
		}
		key := countKey(val)
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, ValueCount{Value: val, Count: 1})
	}
	slices.SortStableFunc(counts, func(a, b ValueCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return counts
}

// countKey folds integral floats onto int64 so 2020 and 2020.0 are one value.
func countKey(v any) any {
	switch n := v.(type) {
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n)
		}
	case int:
		return int64(n)
	}
	return v
}
