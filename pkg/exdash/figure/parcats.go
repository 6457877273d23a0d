package figure

import (
	"strings"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
)

// Parcats builds the relationship diagram of the selected columns. active
// is the absolute view index of the active row, or -1.
func (t Theme) Parcats(v *view.View, selected []string, active int) models.ParcatsFigure {
	dims := make([]models.Dimension, 0, len(selected))
	for _, column := range selected {
		if !v.HasColumn(column) {
			continue
		}
		dims = append(dims, models.Dimension{Label: column, Values: v.Values(column)})
	}

	color := make([]int, v.Len())
	if active >= 0 && active < len(color) {
		color[active] = 1
	}

	title := ""
	if len(selected) > 0 {
		title = strings.Join(selected, ", ") + " Relationship"
	}

	return models.ParcatsFigure{
		Data: []models.ParcatsTrace{{
			Type:        "parcats",
			Dimensions:  dims,
			TickFont:    models.Font{Size: 14, Family: t.FontFamily},
			LabelFont:   models.Font{Size: 16, Family: t.FontFamily},
			Arrangement: "freeform",
			Line: models.ParcatsLine{
				Colorscale: []models.ColorStop{
					{Offset: 0, Color: t.LineColor},
					{Offset: 1, Color: t.ActiveLineColor},
				},
				CMin:  0,
				CMax:  1,
				Color: color,
				Shape: "hspline",
			},
		}},
		Layout: models.ParcatsLayout{
			Title:  models.Title{Text: title},
			Font:   models.Font{Size: 12},
			Margin: models.Margin{L: 250, R: 250, T: 50, B: 20},
		},
	}
}
