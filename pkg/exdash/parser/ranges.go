package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ResolveArea turns a region reference into cell bounds on sheetName.
// ref may be an A1 range ("A1:D10", "$A$1:$D$10", "Sheet!A1:D10") or the
// name of a defined name scoped to the sheet or the workbook.
func ResolveArea(f *excelize.File, sheetName, ref string) (models.Area, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Area{}, fmt.Errorf("empty range reference")
	}
	if area := parseRangeToArea(stripSheet(ref)); area != nil {
		return *area, nil
	}

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, ref) {
			continue
		}
		if dn.Scope != "" && dn.Scope != "Workbook" && dn.Scope != sheetName {
			continue
		}
		sheet, areas := parseAreaReference(dn.RefersTo)
		if len(areas) == 0 {
			return models.Area{}, fmt.Errorf("defined name %q refers to %q, not a cell range", dn.Name, dn.RefersTo)
		}
		if sheet != "" && sheet != sheetName {
			return models.Area{}, fmt.Errorf("defined name %q refers to sheet %q, not %q", dn.Name, sheet, sheetName)
		}
		return areas[0], nil
	}
	return models.Area{}, fmt.Errorf("unknown range or defined name %q", ref)
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if strings.EqualFold(dn.Name, printAreaName) {
			sheetName, areas := parseAreaReference(dn.RefersTo)
			if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
				sheetName = dn.Scope
			}
			if sheetName != "" && len(areas) > 0 {
				result[sheetName] = append(result[sheetName], areas...)
			}
		}
	}

	return result
}

// parseAreaReference parses a defined name reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parseAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area

	ref = strings.TrimPrefix(strings.TrimSpace(ref), "=")
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		sheet, rangeStr := splitSheet(part)
		if sheetName == "" {
			sheetName = sheet
		}

		if area := parseRangeToArea(rangeStr); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

func stripSheet(ref string) string {
	_, rangeStr := splitSheet(ref)
	return rangeStr
}

// splitSheet splits "Sheet!A1:B2" or "'My Sheet'!A1:B2" at the separator
// after the sheet name. The range part may itself contain '!' ("#REF!").
func splitSheet(ref string) (string, string) {
	if strings.HasPrefix(ref, "'") {
		for i := 1; i < len(ref); i++ {
			if ref[i] != '\'' {
				continue
			}
			if i+1 < len(ref) && ref[i+1] == '\'' {
				i++
				continue
			}
			if i+1 < len(ref) && ref[i+1] == '!' {
				return strings.ReplaceAll(ref[1:i], "''", "'"), ref[i+2:]
			}
			break
		}
	}
	if idx := strings.Index(ref, "!"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return "", ref
}

// parseRangeToArea parses a range string like $A$1:$D$10 to an Area.
func parseRangeToArea(rangeStr string) *models.Area {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.Area{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
}
