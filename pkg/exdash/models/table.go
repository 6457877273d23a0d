package models

// TableColumn is a column as declared to the data table widget.
type TableColumn struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Presentation string `json:"presentation,omitempty"`
	Selectable   bool   `json:"selectable,omitempty"`
}

// FilterOptions configures the native column filters.
type FilterOptions struct {
	PlaceholderText string `json:"placeholder_text"`
	Case            string `json:"case"`
}

// TableSpec is the static description of the data table widget.
type TableSpec struct {
	ID                   string            `json:"id"`
	Columns              []TableColumn     `json:"columns"`
	FilterAction         string            `json:"filter_action"`
	FilterOptions        FilterOptions     `json:"filter_options"`
	Editable             bool              `json:"editable"`
	SortAction           string            `json:"sort_action"`
	SortMode             string            `json:"sort_mode"`
	ColumnSelectable     string            `json:"column_selectable"`
	RowSelectable        bool              `json:"row_selectable"`
	RowDeletable         bool              `json:"row_deletable"`
	SelectedColumns      []string          `json:"selected_columns"`
	PageAction           string            `json:"page_action"`
	PageCurrent          int               `json:"page_current"`
	PageSize             int               `json:"page_size"`
	RowCount             int               `json:"row_count"`
	StyleTable           map[string]string `json:"style_table"`
	StyleData            map[string]string `json:"style_data"`
	StyleCell            map[string]any    `json:"style_cell"`
	StyleCellConditional []StyleRule       `json:"style_cell_conditional"`
	StyleDataConditional []StyleRule       `json:"style_data_conditional"`
}

// Tooltip is the hover text of one cell.
type Tooltip struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}
