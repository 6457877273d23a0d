package models

import "fmt"

// Area represents cell coordinate bounds of a sheet region.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Empty reports whether the area covers no cells.
func (a Area) Empty() bool {
	return a.R2 < a.R1 || a.C2 < a.C1 || a.R1 <= 0 || a.C1 <= 0
}

// Contains reports whether the 1-based cell coordinates lie inside the area.
func (a Area) Contains(col, row int) bool {
	return row >= a.R1 && row <= a.R2 && col >= a.C1 && col <= a.C2
}

func (a Area) String() string {
	return fmt.Sprintf("R%dC%d:R%dC%d", a.R1, a.C1, a.R2, a.C2)
}
