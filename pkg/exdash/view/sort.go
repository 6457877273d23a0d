package view

import (
	"cmp"
	"slices"
	"time"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortRows orders rows in place by keys. Blank values sort last in both
// directions; ties keep their previous order.
func sortRows(rows []models.Record, keys []models.SortDirective, lang language.Tag) {
	// Collators are not safe for concurrent use; one per call.
	c := collate.New(lang)
	slices.SortStableFunc(rows, func(a, b models.Record) int {
		for _, k := range keys {
			av, bv := a.Value(k.ColumnID), b.Value(k.ColumnID)
			ab, bb := models.IsBlank(av), models.IsBlank(bv)
			switch {
			case ab && bb:
				continue
			case ab:
				return 1
			case bb:
				return -1
			}
			r := compareValues(av, bv, c)
			if k.Direction == models.SortDesc {
				r = -r
			}
			if r != 0 {
				return r
			}
		}
		return 0
	})
}

// kindRank orders values of different kinds: numbers, times, bools, strings.
func kindRank(v any) int {
	switch v.(type) {
	case int64, float64, int:
		return 0
	case time.Time:
		return 1
	case bool:
		return 2
	default:
		return 3
	}
}

func compareValues(a, b any, c *collate.Collator) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		return cmp.Compare(toFloat(a), toFloat(b))
	case 1:
		return a.(time.Time).Compare(b.(time.Time))
	case 2:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	default:
		return c.CompareString(toString(a), toString(b))
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
