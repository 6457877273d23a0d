package figure

import (
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
)

// BarChartHeight is the pixel height of each frequency chart.
const BarChartHeight = 250

// BarCharts builds one frequency bar chart per selected column present in v.
func (t Theme) BarCharts(v *view.View, selected []string) []models.Graph {
	graphs := make([]models.Graph, 0, len(selected))
	for _, column := range selected {
		if !v.HasColumn(column) {
			continue
		}
		graphs = append(graphs, models.Graph{
			ID:     column,
			Figure: t.BarChart(v, column),
		})
	}
	return graphs
}

// BarChart builds the frequency bar chart of one column.
func (t Theme) BarChart(v *view.View, column string) models.BarFigure {
	counts := v.ValueCounts(column)
	x := make([]any, len(counts))
	y := make([]int, len(counts))
	for i, c := range counts {
		x[i] = c.Value
		y[i] = c.Count
	}
	return models.BarFigure{
		Data: []models.BarTrace{{
			X:           x,
			Y:           y,
			Type:        "bar",
			Orientation: "v",
			Marker:      models.Marker{Color: t.BarColor},
		}},
		Layout: models.BarLayout{
			XAxis:  models.Axis{Automargin: true},
			YAxis:  models.Axis{Automargin: true, Title: &models.Title{Text: column}},
			Height: BarChartHeight,
			Margin: models.Margin{T: 50, L: 50, R: 50},
		},
	}
}
