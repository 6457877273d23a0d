package models

// ColumnType is the inferred type of a column.
type ColumnType string

const (
	// ColumnNumeric holds int64 or float64 values.
	ColumnNumeric ColumnType = "numeric"
	// ColumnText holds string values.
	ColumnText ColumnType = "text"
	// ColumnDatetime holds time.Time values.
	ColumnDatetime ColumnType = "datetime"
	// ColumnBoolean holds bool values.
	ColumnBoolean ColumnType = "boolean"
	// ColumnEmpty has no non-blank value at all.
	ColumnEmpty ColumnType = "empty"
)

// PresentationMarkdown marks a column whose cells are rendered as markdown.
const PresentationMarkdown = "markdown"

// Column describes one named column of the dataset.
type Column struct {
	// ID is the column identifier used in records and table state.
	ID string `json:"id"`
	// Name is the display name (the header text).
	Name string `json:"name"`
	// Type is inferred from the first non-blank value.
	Type ColumnType `json:"type"`
	// Presentation is "markdown" for markdown columns, empty otherwise.
	Presentation string `json:"presentation,omitempty"`
	// Selectable reports whether the column can be selected for charting.
	Selectable bool `json:"selectable,omitempty"`
}

// Dataset is the immutable table loaded from the spreadsheet at startup.
// Nothing mutates a Dataset after Load returns it.
type Dataset struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the data was read from.
	SheetName string `json:"sheet_name"`
	// Area is the sheet region the data was read from, header row included.
	Area Area `json:"area"`
	// Columns lists the columns in sheet order.
	Columns []Column `json:"columns"`
	// Rows contains the data rows in sheet order.
	Rows []Record `json:"rows"`
}

// Column returns the column with the given id.
func (d *Dataset) Column(id string) (Column, bool) {
	for _, c := range d.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// HasColumn reports whether a column with the given id exists.
func (d *Dataset) HasColumn(id string) bool {
	_, ok := d.Column(id)
	return ok
}

// ColumnIDs returns the column ids in sheet order.
func (d *Dataset) ColumnIDs() []string {
	ids := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		ids[i] = c.ID
	}
	return ids
}
