package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdash-go/internal/fixture"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	ds := fixture.Articles()
	v, err := view.Derive(ds, models.TableState{
		Derived: true,
		Filters: map[string]string{"Domain": "CV"},
		SortBy:  []models.SortDirective{{ColumnID: "Year", Direction: models.SortDesc}},
	}, view.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(ds, v, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(fixture.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, fixture.Headers, rows[0])
	assert.Equal(t, []string{"CV", "Detection", "2022", "CNN", "[Author 10](https://example.org/10)"}, rows[1])
	assert.Equal(t, "2019", rows[4][2])
}

func TestWriteXLSXEmptyView(t *testing.T) {
	ds := fixture.Articles()
	v, err := view.Derive(ds, models.TableState{Derived: true, Filters: map[string]string{"Domain": "Biology"}}, view.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(ds, v, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(fixture.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
