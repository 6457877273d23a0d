package parser

import (
	"testing"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/xuri/excelize/v2"
)

func TestParseAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		sheet     string
		areaCount int
		first     models.Area
	}{
		{"'My Sheet'!$A$1:$D$10", "My Sheet", 1, models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"Data!$B$2:$C$5,Data!$E$1:$F$2", "Data", 2, models.Area{R1: 2, C1: 2, R2: 5, C2: 3}},
		{"=Data!D10:A1", "Data", 1, models.Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"Data!#REF!", "Data", 0, models.Area{}},
		{"'Q1!Data'!$A$1:$B$2", "Q1!Data", 1, models.Area{R1: 1, C1: 1, R2: 2, C2: 2}},
		{"'Bob''s'!A1:A3", "Bob's", 1, models.Area{R1: 1, C1: 1, R2: 3, C2: 1}},
	}

	for _, tt := range tests {
		sheet, areas := parseAreaReference(tt.ref)
		if sheet != tt.sheet {
			t.Errorf("parseAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.sheet)
		}
		if len(areas) != tt.areaCount {
			t.Fatalf("parseAreaReference(%q) returned %d areas, expected %d", tt.ref, len(areas), tt.areaCount)
		}
		if tt.areaCount > 0 && areas[0] != tt.first {
			t.Errorf("parseAreaReference(%q) first = %+v, expected %+v", tt.ref, areas[0], tt.first)
		}
	}
}

func TestSplitSheet(t *testing.T) {
	tests := []struct {
		ref, sheet, rng string
	}{
		{"A1:B2", "", "A1:B2"},
		{"Data!A1:B2", "Data", "A1:B2"},
		{"Data!#REF!", "Data", "#REF!"},
		{"'My Sheet'!$A$1", "My Sheet", "$A$1"},
		{"'a!b'!#REF!", "a!b", "#REF!"},
	}
	for _, tt := range tests {
		sheet, rng := splitSheet(tt.ref)
		if sheet != tt.sheet || rng != tt.rng {
			t.Errorf("splitSheet(%q) = %q, %q, expected %q, %q", tt.ref, sheet, rng, tt.sheet, tt.rng)
		}
	}
}

func TestResolveArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "Articles",
		RefersTo: "Sheet1!$A$1:$C$20",
		Scope:    "Workbook",
	}); err != nil {
		t.Fatalf("SetDefinedName: %v", err)
	}

	area, err := ResolveArea(f, "Sheet1", "B2:D4")
	if err != nil || area != (models.Area{R1: 2, C1: 2, R2: 4, C2: 4}) {
		t.Errorf("ResolveArea(B2:D4) = %+v, %v", area, err)
	}

	area, err = ResolveArea(f, "Sheet1", "articles")
	if err != nil || area != (models.Area{R1: 1, C1: 1, R2: 20, C2: 3}) {
		t.Errorf("ResolveArea(articles) = %+v, %v", area, err)
	}

	if _, err := ResolveArea(f, "Sheet1", "Missing"); err == nil {
		t.Error("Expected error for unknown defined name")
	}
}

func TestExtractPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: "Sheet1!$A$1:$B$3",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName: %v", err)
	}

	areas := ExtractPrintAreas(f)
	if len(areas["Sheet1"]) != 1 || areas["Sheet1"][0] != (models.Area{R1: 1, C1: 1, R2: 3, C2: 2}) {
		t.Errorf("Unexpected print areas %+v", areas)
	}
}
