package figure

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdash-go/internal/fixture"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
)

func derive(t *testing.T, state models.TableState) *view.View {
	t.Helper()
	v, err := view.Derive(fixture.Articles(), state, view.Options{})
	require.NoError(t, err)
	return v
}

func robotics(t *testing.T) *view.View {
	return derive(t, models.TableState{Derived: true, Filters: map[string]string{"Domain": "Robotics"}})
}

func assertGolden(t *testing.T, name string, value any) {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

func TestBarChartsGolden(t *testing.T) {
	graphs := DefaultTheme().BarCharts(robotics(t), []string{"Domain", "Task"})
	assertGolden(t, "bar_charts_robotics", graphs)
}

func TestParcatsGolden(t *testing.T) {
	fig := DefaultTheme().Parcats(robotics(t), []string{"Domain", "Task"}, 1)
	assertGolden(t, "parcats_robotics", fig)
}

func TestBarChartsSkipsMissingColumns(t *testing.T) {
	v := derive(t, models.TableState{})
	graphs := DefaultTheme().BarCharts(v, []string{"Year", "Nope", "Domain"})
	require.Len(t, graphs, 2)
	assert.Equal(t, "Year", graphs[0].ID)
	assert.Equal(t, "Domain", graphs[1].ID)

	year := graphs[0].Figure.Data[0]
	assert.Equal(t, []any{int64(2020), int64(2021), int64(2019), int64(2022), int64(2018)}, year.X)
	assert.Equal(t, []int{3, 3, 2, 2, 1}, year.Y)
	assert.Equal(t, "Year", graphs[0].Figure.Layout.YAxis.Title.Text)
}

func TestBarChartsEmptyView(t *testing.T) {
	v := derive(t, models.TableState{Derived: true, Filters: map[string]string{"Domain": "Biology"}})
	assert.Empty(t, DefaultTheme().BarCharts(v, []string{"Domain", "Task"}))
}

func TestParcatsActiveRow(t *testing.T) {
	v := derive(t, models.TableState{})

	fig := DefaultTheme().Parcats(v, []string{"Domain"}, 3)
	color := fig.Data[0].Line.Color
	require.Len(t, color, 12)
	for i, c := range color {
		if i == 3 {
			assert.Equal(t, 1, c)
		} else {
			assert.Equal(t, 0, c)
		}
	}

	fig = DefaultTheme().Parcats(v, []string{"Domain"}, 40)
	assert.NotContains(t, fig.Data[0].Line.Color, 1)

	fig = DefaultTheme().Parcats(v, nil, -1)
	assert.Equal(t, "", fig.Layout.Title.Text)
	assert.Empty(t, fig.Data[0].Dimensions)
}

func TestRowStyles(t *testing.T) {
	theme := DefaultTheme()
	base := theme.RowStyles(nil)
	require.Len(t, base, 2)
	assert.Equal(t, "active", base[0].If.State)
	assert.Equal(t, "rgba(0, 116, 217, .03)", base[1].BackgroundColor)

	styles := theme.RowStyles(&models.Cell{Row: 4, ColumnID: "Task"})
	require.Len(t, styles, 3)
	require.NotNil(t, styles[2].If.RowIndex)
	assert.Equal(t, 4, *styles[2].If.RowIndex)
	assert.Equal(t, "rgba(150, 180, 225, 0.2)", styles[2].BackgroundColor)
	assert.Empty(t, styles[2].Border)

	// Building a highlighted set never leaks into the base set.
	assert.Len(t, theme.RowStyles(nil), 2)
}

func TestTableSpec(t *testing.T) {
	ds := fixture.Articles()
	spec := DefaultTheme().TableSpec(ds, TableOptions{
		PageSize:        10,
		SelectedColumns: []string{"Domain", "Task", "Cite", "Missing", "Domain"},
		FilterCase:      "sensitive",
		SortMode:        "single",
	})

	assert.Equal(t, TableID, spec.ID)
	assert.Equal(t, []string{"Domain", "Task"}, spec.SelectedColumns)
	assert.Equal(t, 12, spec.RowCount)
	assert.True(t, spec.RowDeletable)
	assert.False(t, spec.Editable)
	assert.Equal(t, "Filter column...", spec.FilterOptions.PlaceholderText)

	want := []models.TableColumn{
		{ID: "Domain", Name: "Domain", Selectable: true},
		{ID: "Task", Name: "Task", Selectable: true},
		{ID: "Year", Name: "Year", Selectable: true},
		{ID: "Method", Name: "Method", Selectable: true},
		{ID: "Cite", Name: "Cite", Presentation: models.PresentationMarkdown},
	}
	if diff := cmp.Diff(want, spec.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, spec.StyleCellConditional, 1)
	assert.Equal(t, "Cite", spec.StyleCellConditional[0].If.ColumnID)
	assert.Equal(t, "20%", spec.StyleCellConditional[0].Width)
}

func TestTooltips(t *testing.T) {
	ds := fixture.Articles()
	tips := Tooltips(ds.Columns, ds.Rows[10:])
	require.Len(t, tips, 2)
	assert.Equal(t, models.Tooltip{Value: "2022", Type: "markdown"}, tips[0]["Year"])
	assert.Equal(t, models.Tooltip{Value: "", Type: "markdown"}, tips[1]["Year"])
	assert.Equal(t, "[Author 11](https://example.org/11)", tips[1]["Cite"].Value)
}

func TestThemeWithDefaults(t *testing.T) {
	theme := Theme{BarColor: "teal"}.WithDefaults()
	assert.Equal(t, "teal", theme.BarColor)
	assert.Equal(t, "firebrick", theme.ActiveLineColor)
	assert.Equal(t, DefaultTheme(), Theme{}.WithDefaults())
}
