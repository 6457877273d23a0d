package models

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortDirective orders the derived view by one column.
type SortDirective struct {
	ColumnID  string `json:"column_id"`
	Direction string `json:"direction"`
}

// Cell identifies the active cell. Row is relative to the current page.
type Cell struct {
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	ColumnID string `json:"column_id"`
}

// TableState is the transient, client-owned state of the data table.
type TableState struct {
	// SelectedColumns are the columns chosen for charting.
	SelectedColumns []string `json:"selected_columns"`
	// Filters maps column id to native filter text.
	Filters map[string]string `json:"filters,omitempty"`
	// SortBy lists sort directives in priority order.
	SortBy []SortDirective `json:"sort_by,omitempty"`
	// DeletedRows lists record ids removed from the table.
	DeletedRows []int `json:"deleted_rows,omitempty"`
	// ActiveCell is the focused cell, if any.
	ActiveCell *Cell `json:"active_cell,omitempty"`
	// PageCurrent is the 0-based page index.
	PageCurrent int `json:"page_current"`
	// PageSize is the number of rows per page; zero means the configured default.
	PageSize int `json:"page_size,omitempty"`
	// Derived is false until the table reports its first derived data.
	// Callbacks then read the full dataset.
	Derived bool `json:"derived"`
}
