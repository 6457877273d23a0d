// Package export writes a derived view back out as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/view"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName names the exported sheet when the dataset has no sheet name.
const DefaultSheetName = "Export"

// WriteXLSX writes the rows of v, with the columns of ds, as an .xlsx
// workbook. The header row is bold, frozen and carries an auto filter.
func WriteXLSX(ds *models.Dataset, v *view.View, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := ds.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(ds.Columns))
	for i, c := range ds.Columns {
		header[i] = c.Name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for r, rec := range v.Rows {
		row := make([]any, len(ds.Columns))
		for i, c := range ds.Columns {
			row[i] = rec.Value(c.ID)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	if len(ds.Columns) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return err
		}
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(ds.Columns), len(v.Rows)+1)
		if err != nil {
			return err
		}
		if err := f.AutoFilter(sheet, "A1:"+last, nil); err != nil {
			return fmt.Errorf("failed to add auto filter: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
