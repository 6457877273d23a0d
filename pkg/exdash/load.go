package exdash

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/ukaji3/exdash-go/pkg/exdash/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads one sheet of an Excel file into an immutable Dataset.
func Load(path string, opts Options) (*models.Dataset, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	ds, err := LoadFile(f, opts)
	if err != nil {
		return nil, err
	}
	ds.BookName = filepath.Base(path)
	return ds, nil
}

// LoadFile reads one sheet of an open workbook into a Dataset.
func LoadFile(f *excelize.File, opts Options) (*models.Dataset, error) {
	sheetName, err := pickSheet(f, opts.SheetName)
	if err != nil {
		return nil, err
	}

	area, err := resolveArea(f, sheetName, opts)
	if err != nil {
		return nil, NewLoadError(sheetName, "area", err)
	}

	headers, rows, err := parser.ExtractCells(f, sheetName, area, opts.ShouldIncludeLinks())
	if err != nil {
		return nil, NewLoadError(sheetName, "cells", err)
	}
	if len(headers) == 0 {
		return nil, NewLoadError(sheetName, "columns", ErrNoHeader)
	}

	ids := parser.UniqueHeaders(headers)
	columns := make([]models.Column, len(ids))
	for i, id := range ids {
		values := make([]any, len(rows))
		for r, row := range rows {
			values[r] = row[i]
		}
		col := models.Column{
			ID:         id,
			Name:       id,
			Type:       parser.InferColumnType(values),
			Selectable: true,
		}
		if opts.IsMarkdown(id) {
			col.Presentation = models.PresentationMarkdown
			col.Selectable = false
		}
		columns[i] = col
	}

	records := make([]models.Record, len(rows))
	for r, row := range rows {
		values := make(map[string]any, len(ids))
		for i, id := range ids {
			values[id] = row[i]
		}
		records[r] = models.Record{ID: r, Values: values}
	}

	return &models.Dataset{
		SheetName: sheetName,
		Area:      area,
		Columns:   columns,
		Rows:      records,
	}, nil
}

func pickSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrSheetNotFound
	}
	want := name
	if want == "" {
		want = DefaultSheetName
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	if name != "" {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return sheets[0], nil
}

func resolveArea(f *excelize.File, sheetName string, opts Options) (models.Area, error) {
	if opts.Range != "" {
		return parser.ResolveArea(f, sheetName, opts.Range)
	}
	if opts.UsePrintArea {
		if areas := parser.ExtractPrintAreas(f)[sheetName]; len(areas) > 0 {
			return areas[0], nil
		}
	}
	return parser.DetectArea(f, sheetName, parser.DefaultTableParams())
}
