package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are the formatted date renderings excelize produces for the
// built-in date number formats, plus ISO forms.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006",
}

// ExtractCells reads the cells inside area from a sheet.
// The first row of the area is the header row. It returns the header texts
// and the non-blank data rows, each holding one parsed value per header.
// When includeLinks is set, hyperlinked cells become markdown links.
func ExtractCells(f *excelize.File, sheetName string, area models.Area, includeLinks bool) ([]string, [][]any, error) {
	if area.Empty() {
		return nil, nil, fmt.Errorf("empty area %s", area)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < area.R1 {
		return nil, nil, nil
	}

	width := area.C2 - area.C1 + 1
	headers := make([]string, width)
	headerRow := rows[area.R1-1]
	for i := 0; i < width; i++ {
		colIdx := area.C1 - 1 + i
		if colIdx < len(headerRow) {
			headers[i] = strings.TrimSpace(headerRow[colIdx])
		}
	}

	var result [][]any
	for rowNum := area.R1 + 1; rowNum <= area.R2 && rowNum <= len(rows); rowNum++ {
		row := rows[rowNum-1]
		values := make([]any, width)
		hasData := false

		for i := 0; i < width; i++ {
			colIdx := area.C1 - 1 + i
			if colIdx >= len(row) || row[colIdx] == "" {
				continue
			}
			hasData = true
			value := ParseValue(row[colIdx])

			if includeLinks {
				cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
				hasLink, target, err := f.GetCellHyperLink(sheetName, cellName)
				if err == nil && hasLink && target != "" {
					value = fmt.Sprintf("[%s](%s)", row[colIdx], target)
				}
			}
			values[i] = value
		}

		if hasData {
			result = append(result, values)
		}
	}

	return headers, result, nil
}

// ParseValue converts a formatted cell string to a typed value.
// Returns int64 for integers, float64 for decimals, bool for TRUE/FALSE,
// time.Time for recognised dates, or the original string.
func ParseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float; NaN and Inf stay text so values remain JSON encodable
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// Return as string
	return s
}

// InferColumnType returns the type of the first non-blank value.
func InferColumnType(values []any) models.ColumnType {
	for _, v := range values {
		switch v.(type) {
		case nil:
			continue
		case int64, float64:
			return models.ColumnNumeric
		case bool:
			return models.ColumnBoolean
		case time.Time:
			return models.ColumnDatetime
		default:
			return models.ColumnText
		}
	}
	return models.ColumnEmpty
}

// UniqueHeaders makes header texts usable as column ids.
// Blank headers become "Unnamed: <index>" and repeats get a ".<n>" suffix.
func UniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	for i, h := range headers {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = h + "." + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}
