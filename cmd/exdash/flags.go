package main

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// parseFilters parses column=expression pairs. The expression keeps any
// further '=' characters, so "Year==2020" filters Year with "=2020".
func parseFilters(specs []string) (map[string]string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(specs))
	for _, s := range specs {
		column, expr, ok := strings.Cut(s, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid filter %q (want column=expression)", s)
		}
		out[column] = strings.TrimSpace(expr)
	}
	return out, nil
}

// parseSorts parses column[:asc|desc] directives.
func parseSorts(specs []string) ([]models.SortDirective, error) {
	var out []models.SortDirective
	for _, s := range specs {
		column, dir, _ := strings.Cut(s, ":")
		column = strings.TrimSpace(column)
		if column == "" {
			return nil, fmt.Errorf("invalid sort %q (want column[:asc|desc])", s)
		}
		switch dir = strings.ToLower(strings.TrimSpace(dir)); dir {
		case "":
			dir = models.SortAsc
		case models.SortAsc, models.SortDesc:
		default:
			return nil, fmt.Errorf("invalid sort direction %q", dir)
		}
		out = append(out, models.SortDirective{ColumnID: column, Direction: dir})
	}
	return out, nil
}

// chartFileName turns a column id into a safe PNG file name.
func chartFileName(column string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, column)
	if name == "" {
		name = "column"
	}
	return name + ".png"
}
