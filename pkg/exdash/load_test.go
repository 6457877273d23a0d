package exdash

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exdash-go/internal/fixture"
	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

func TestLoad(t *testing.T) {
	path := fixture.WriteArticles(t, t.TempDir())

	ds, err := Load(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "articles.xlsx", ds.BookName)
	assert.Equal(t, fixture.SheetName, ds.SheetName)
	assert.Equal(t, models.Area{R1: 1, C1: 1, R2: 13, C2: 5}, ds.Area)
	assert.Equal(t, fixture.Headers, ds.ColumnIDs())
	require.Len(t, ds.Rows, 12)

	year, ok := ds.Column("Year")
	require.True(t, ok)
	assert.Equal(t, models.ColumnNumeric, year.Type)
	assert.True(t, year.Selectable)

	cite, ok := ds.Column("Cite")
	require.True(t, ok)
	assert.Equal(t, models.PresentationMarkdown, cite.Presentation)
	assert.False(t, cite.Selectable)

	assert.Equal(t, fixture.Articles().Rows, ds.Rows)
}

func TestLoadRange(t *testing.T) {
	path := fixture.WriteArticles(t, t.TempDir())

	ds, err := Load(path, Options{Range: "A1:B4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Domain", "Task"}, ds.ColumnIDs())
	require.Len(t, ds.Rows, 3)
	assert.Equal(t, "Translation", ds.Rows[2].Value("Task"))
}

func TestLoadPrintArea(t *testing.T) {
	path := fixture.WriteArticles(t, t.TempDir())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fixture.SheetName + "!$A$1:$C$3",
		Scope:    fixture.SheetName,
	}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	// The print area is smaller than the data; by default it is ignored.
	ds, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, fixture.Headers, ds.ColumnIDs())
	assert.Len(t, ds.Rows, 12)

	ds, err = Load(path, Options{UsePrintArea: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Domain", "Task", "Year"}, ds.ColumnIDs())
	assert.Len(t, ds.Rows, 2)
}

func TestLoadFirstSheetFallback(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Domain", "Task"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"NLP", "QA"}))

	ds, err := LoadFile(f, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", ds.SheetName)
	assert.Len(t, ds.Rows, 1)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.xlsx"), DefaultOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("not a workbook"), 0644))
	_, err = Load(garbage, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)

	path := fixture.WriteArticles(t, dir)
	_, err = Load(path, Options{SheetName: "Nope"})
	assert.ErrorIs(t, err, ErrSheetNotFound)

	_, err = Load(path, Options{Range: "NoSuchName"})
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "area", loadErr.Component)
	assert.Equal(t, fixture.SheetName, loadErr.SheetName)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.ShouldIncludeLinks())
	assert.True(t, opts.IsMarkdown("Cite"))
	assert.False(t, opts.IsMarkdown("Domain"))

	off := false
	opts = Options{IncludeLinks: &off, MarkdownColumns: []string{}}
	assert.False(t, opts.ShouldIncludeLinks())
	assert.False(t, opts.IsMarkdown("Cite"))
}
