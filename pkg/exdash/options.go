// Package exdash loads a spreadsheet into the immutable dataset behind the dashboard.
package exdash

// DefaultSheetName is the sheet read when no sheet is configured and the
// workbook contains it.
const DefaultSheetName = "ArticlesByCategory"

// Options configures loading behavior.
type Options struct {
	// SheetName selects the sheet. Empty means DefaultSheetName when present,
	// otherwise the first sheet.
	SheetName string
	// Range is an A1 range or defined name bounding the table, header row
	// included. Empty means the detected data bounds of the whole sheet.
	Range string
	// MarkdownColumns are rendered as markdown and cannot be selected.
	// If nil, defaults to DefaultMarkdownColumns.
	MarkdownColumns []string
	// IncludeLinks turns hyperlinked cells into markdown links.
	// If nil, defaults to true.
	IncludeLinks *bool
	// UsePrintArea bounds the table by the sheet's print area when Range is
	// empty. Rows outside the print area are then not loaded.
	UsePrintArea bool
}

// DefaultMarkdownColumns lists the columns presented as markdown by default.
var DefaultMarkdownColumns = []string{"Cite"}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeLinks returns whether to convert cell hyperlinks.
func (o Options) ShouldIncludeLinks() bool {
	if o.IncludeLinks != nil {
		return *o.IncludeLinks
	}
	return true
}

// IsMarkdown reports whether the column is presented as markdown.
func (o Options) IsMarkdown(column string) bool {
	cols := o.MarkdownColumns
	if cols == nil {
		cols = DefaultMarkdownColumns
	}
	for _, c := range cols {
		if c == column {
			return true
		}
	}
	return false
}
