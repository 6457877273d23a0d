// Package view derives the filtered and sorted copy of the dataset that
// every callback works on.
package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ukaji3/exdash-go/pkg/exdash/filter"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"golang.org/x/text/language"
)

// Sort modes.
const (
	SortSingle = "single"
	SortMulti  = "multi"
)

// ErrSortMode is returned when single sort mode receives several directives.
var ErrSortMode = errors.New("single sort mode accepts one sort directive")

// Options configures how views are derived.
type Options struct {
	// SortMode is SortSingle (default) or SortMulti.
	SortMode string
	// Language drives string collation. Zero value means language.Und.
	Language language.Tag
	// Filters compiles column filters. Nil means a case-sensitive compiler.
	Filters *filter.Compiler
}

// View is a derived copy of the dataset. The dataset itself is never
// modified; View.Rows shares record values with it and must be treated as
// read-only.
type View struct {
	// Columns is empty when the view has no rows.
	Columns []models.Column
	Rows    []models.Record
}

// Derive applies row deletion, column filters and sorting from state.
// Before the table reports derived data (state.Derived false) the view is
// the full dataset.
func Derive(ds *models.Dataset, state models.TableState, opts Options) (*View, error) {
	if !state.Derived {
		return newView(ds.Columns, slices.Clone(ds.Rows)), nil
	}

	deleted := make(map[int]bool, len(state.DeletedRows))
	for _, id := range state.DeletedRows {
		deleted[id] = true
	}

	compiler := opts.Filters
	if compiler == nil {
		compiler = filter.NewCompiler(false)
	}
	type columnFilter struct {
		id string
		f  *filter.Filter
	}
	var filters []columnFilter
	// Iterate columns, not the map, so evaluation order is stable.
	for _, col := range ds.Columns {
		src, ok := state.Filters[col.ID]
		if !ok {
			continue
		}
		f, err := compiler.Compile(src, col.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.ID, err)
		}
		if f != nil {
			filters = append(filters, columnFilter{id: col.ID, f: f})
		}
	}

	rows := make([]models.Record, 0, len(ds.Rows))
	for _, rec := range ds.Rows {
		if deleted[rec.ID] {
			continue
		}
		keep := true
		for _, cf := range filters {
			if !cf.f.Match(rec.Value(cf.id)) {
				keep = false
				break
			}
		}
		if keep {
			rows = append(rows, rec)
		}
	}

	var keys []models.SortDirective
	for _, d := range state.SortBy {
		if ds.HasColumn(d.ColumnID) {
			keys = append(keys, d)
		}
	}
	if len(keys) > 1 && opts.SortMode != SortMulti {
		return nil, ErrSortMode
	}
	if len(keys) > 0 {
		sortRows(rows, keys, opts.Language)
	}

	return newView(ds.Columns, rows), nil
}

func newView(columns []models.Column, rows []models.Record) *View {
	v := &View{Rows: rows}
	if len(rows) > 0 {
		v.Columns = columns
	}
	return v
}

// HasColumn reports whether the view carries the column.
func (v *View) HasColumn(id string) bool {
	for _, c := range v.Columns {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (v *View) Len() int {
	return len(v.Rows)
}

// Values returns the column's values in view order.
func (v *View) Values(column string) []any {
	out := make([]any, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Value(column)
	}
	return out
}

// PageCount returns the number of pages, at least 1.
func (v *View) PageCount(size int) int {
	if size <= 0 || len(v.Rows) == 0 {
		return 1
	}
	return (len(v.Rows) + size - 1) / size
}

// ClampPage limits page to the valid range for size.
func (v *View) ClampPage(page, size int) int {
	if page < 0 {
		return 0
	}
	if last := v.PageCount(size) - 1; page > last {
		return last
	}
	return page
}

// Page returns the rows of one page. A size of zero or less returns all rows.
func (v *View) Page(page, size int) []models.Record {
	if size <= 0 {
		return v.Rows
	}
	page = v.ClampPage(page, size)
	start := page * size
	end := min(start+size, len(v.Rows))
	if start >= end {
		return nil
	}
	return v.Rows[start:end]
}

// Index maps a page-relative active cell to an absolute view row index.
// It returns -1 when there is no active cell or it lies outside the view.
func (v *View) Index(cell *models.Cell, page, size int) int {
	if cell == nil || cell.Row < 0 {
		return -1
	}
	idx := cell.Row
	if size > 0 {
		idx += v.ClampPage(page, size) * size
	}
	if idx >= len(v.Rows) {
		return -1
	}
	return idx
}
