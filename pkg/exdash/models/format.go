package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is used to print datetime cells.
const DateTimeLayout = "2006-01-02 15:04:05"

// IsBlank reports whether a cell value is empty: nil or whitespace-only text.
func IsBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// FormatValue renders a cell value as display text. Blank cells are "".
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(DateTimeLayout)
	default:
		return fmt.Sprint(x)
	}
}
