// Package fixture provides the sample articles table shared by tests.
package fixture

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet the sample workbook stores its table in.
const SheetName = "ArticlesByCategory"

// Headers are the sample table's column names in sheet order.
var Headers = []string{"Domain", "Task", "Year", "Method", "Cite"}

var articles = [][]any{
	{"NLP", "QA", int64(2019), "Transformer"},
	{"CV", "Detection", int64(2020), "CNN"},
	{"NLP", "Translation", int64(2018), "Transformer"},
	{"NLP", "QA", int64(2021), "RNN"},
	{"Robotics", "Control", int64(2020), "RL"},
	{"CV", "Segmentation", int64(2021), "CNN"},
	{"NLP", "QA", int64(2020), "Transformer"},
	{"CV", "Detection", int64(2019), "Transformer"},
	{"Robotics", "Navigation", int64(2021), "RL"},
	{"NLP", "Summarization", int64(2022), "Transformer"},
	{"CV", "Detection", int64(2022), "CNN"},
	{"Speech", "Recognition", nil, "RNN"},
}

func cite(i int) string {
	return fmt.Sprintf("[Author %d](https://example.org/%d)", i, i)
}

// Articles returns a freshly built copy of the sample dataset.
func Articles() *models.Dataset {
	ds := &models.Dataset{
		BookName:  "articles.xlsx",
		SheetName: SheetName,
		Area:      models.Area{R1: 1, C1: 1, R2: len(articles) + 1, C2: len(Headers)},
		Columns: []models.Column{
			{ID: "Domain", Name: "Domain", Type: models.ColumnText, Selectable: true},
			{ID: "Task", Name: "Task", Type: models.ColumnText, Selectable: true},
			{ID: "Year", Name: "Year", Type: models.ColumnNumeric, Selectable: true},
			{ID: "Method", Name: "Method", Type: models.ColumnText, Selectable: true},
			{ID: "Cite", Name: "Cite", Type: models.ColumnText, Presentation: models.PresentationMarkdown},
		},
	}
	for i, row := range articles {
		values := make(map[string]any, len(Headers))
		for c, v := range row {
			values[Headers[c]] = v
		}
		values["Cite"] = cite(i)
		ds.Rows = append(ds.Rows, models.Record{ID: i, Values: values})
	}
	return ds
}

// WriteArticles saves the sample table as an .xlsx file in dir and returns its path.
func WriteArticles(tb testing.TB, dir string) string {
	tb.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		tb.Fatalf("rename sheet: %v", err)
	}
	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		tb.Fatalf("write header: %v", err)
	}
	for i, row := range articles {
		cells := append(append([]any{}, row...), cite(i))
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			tb.Fatalf("write row %d: %v", i, err)
		}
	}

	path := filepath.Join(dir, "articles.xlsx")
	if err := f.SaveAs(path); err != nil {
		tb.Fatalf("save workbook: %v", err)
	}
	return path
}
