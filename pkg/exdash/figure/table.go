package figure

import (
	"slices"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
)

// TableID is the element id of the data table.
const TableID = "interactive-datatable"

// TableOptions are the configurable parts of the table description.
type TableOptions struct {
	PageSize        int
	SelectedColumns []string
	FilterCase      string
	SortMode        string
}

// TableSpec describes the data table widget for ds.
func (t Theme) TableSpec(ds *models.Dataset, opts TableOptions) models.TableSpec {
	columns := make([]models.TableColumn, len(ds.Columns))
	var conditional []models.StyleRule
	for i, c := range ds.Columns {
		tc := models.TableColumn{ID: c.ID, Name: c.Name}
		if c.Presentation == models.PresentationMarkdown {
			tc.Presentation = models.PresentationMarkdown
			conditional = append(conditional, models.StyleRule{
				If:    models.StyleCondition{ColumnID: c.ID},
				Width: "20%",
			})
		} else {
			tc.Selectable = c.Selectable
		}
		columns[i] = tc
	}

	return models.TableSpec{
		ID:           TableID,
		Columns:      columns,
		FilterAction: "native",
		FilterOptions: models.FilterOptions{
			PlaceholderText: "Filter column...",
			Case:            opts.FilterCase,
		},
		Editable:         false,
		SortAction:       "native",
		SortMode:         opts.SortMode,
		ColumnSelectable: "multi",
		RowSelectable:    false,
		RowDeletable:     true,
		SelectedColumns:  SelectableColumns(ds, opts.SelectedColumns),
		PageAction:       "native",
		PageCurrent:      0,
		PageSize:         opts.PageSize,
		RowCount:         len(ds.Rows),
		StyleTable: map[string]string{
			"width":       "120%",
			"minWidth":    "100%",
			"tableLayout": "fixed",
		},
		StyleData: map[string]string{
			"whiteSpace": "normal",
			"height":     "auto",
			"lineHeight": "15px",
		},
		StyleCell: map[string]any{
			"overflow":     "hidden",
			"textOverflow": "ellipsis",
			"maxWidth":     0,
		},
		StyleCellConditional: conditional,
		StyleDataConditional: t.BaseRowStyles(),
	}
}

// SelectableColumns keeps the ids of want that name selectable columns of ds.
func SelectableColumns(ds *models.Dataset, want []string) []string {
	out := make([]string, 0, len(want))
	for _, id := range want {
		c, ok := ds.Column(id)
		if ok && c.Selectable && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Tooltips returns the hover text of every cell of rows.
func Tooltips(columns []models.Column, rows []models.Record) []map[string]models.Tooltip {
	out := make([]map[string]models.Tooltip, len(rows))
	for i, r := range rows {
		tips := make(map[string]models.Tooltip, len(columns))
		for _, c := range columns {
			tips[c.ID] = models.Tooltip{Value: models.FormatValue(r.Value(c.ID)), Type: models.PresentationMarkdown}
		}
		out[i] = tips
	}
	return out
}
