// Package models defines data structures for the dashboard dataset and its derived outputs.
package models

// Record represents a single data row of the loaded sheet.
type Record struct {
	// ID is the 0-based position of the row among the sheet's data rows.
	ID int `json:"id"`
	// Values maps column id to cell value (int64, float64, bool, string, time.Time or nil).
	Values map[string]any `json:"values"`
}

// Value returns the value stored for columnID, or nil when the cell is blank.
func (r Record) Value(columnID string) any {
	if r.Values == nil {
		return nil
	}
	return r.Values[columnID]
}

// Flatten returns the record as a column id to value map including the row id.
func (r Record) Flatten() map[string]any {
	out := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		out[k] = v
	}
	out["id"] = r.ID
	return out
}
