package figure

import "github.com/ukaji3/exdash-go/pkg/exdash/models"

// BaseRowStyles returns the static conditional styles of the data table.
// The slice is new on every call.
func (t Theme) BaseRowStyles() []models.StyleRule {
	return []models.StyleRule{
		{
			If:              models.StyleCondition{State: "active"},
			BackgroundColor: t.ActiveRowBackground,
			Border:          "1px transparent",
		},
		{
			If:              models.StyleCondition{State: "selected"},
			BackgroundColor: t.SelectedBackground,
			Border:          "1px transparent",
		},
	}
}

// RowStyles returns the base styles plus a highlight of the active cell's row.
func (t Theme) RowStyles(active *models.Cell) []models.StyleRule {
	styles := t.BaseRowStyles()
	if active != nil {
		row := active.Row
		styles = append(styles, models.StyleRule{
			If:              models.StyleCondition{RowIndex: &row},
			BackgroundColor: t.ActiveRowBackground,
		})
	}
	return styles
}
