package models

import (
	"encoding/json"
	"fmt"
)

// Font describes a plotly font.
type Font struct {
	Size   int    `json:"size,omitempty"`
	Family string `json:"family,omitempty"`
}

// Title is a plotly title object.
type Title struct {
	Text string `json:"text"`
}

// Margin is a plotly layout margin in pixels. Zero sides are omitted.
type Margin struct {
	T int `json:"t,omitempty"`
	L int `json:"l,omitempty"`
	R int `json:"r,omitempty"`
	B int `json:"b,omitempty"`
}

// Axis is a plotly cartesian axis.
type Axis struct {
	Automargin bool   `json:"automargin"`
	Title      *Title `json:"title,omitempty"`
}

// Marker holds bar marker styling.
type Marker struct {
	Color string `json:"color"`
}

// BarTrace is a single plotly bar trace.
type BarTrace struct {
	// X holds the distinct column values.
	X []any `json:"x"`
	// Y holds the frequency of each value in X.
	Y           []int  `json:"y"`
	Type        string `json:"type"`
	Orientation string `json:"orientation"`
	Marker      Marker `json:"marker"`
}

// BarLayout is the layout of a frequency bar chart.
type BarLayout struct {
	XAxis  Axis   `json:"xaxis"`
	YAxis  Axis   `json:"yaxis"`
	Height int    `json:"height"`
	Margin Margin `json:"margin"`
}

// BarFigure is a complete bar chart figure.
type BarFigure struct {
	Data   []BarTrace `json:"data"`
	Layout BarLayout  `json:"layout"`
}

// Graph is one bar chart graph component, identified by its column.
type Graph struct {
	ID     string    `json:"id"`
	Figure BarFigure `json:"figure"`
}

// Dimension is one parallel-categories axis.
type Dimension struct {
	Label  string `json:"label"`
	Values []any  `json:"values"`
}

// ColorStop is one entry of a colorscale, encoded as [offset, color].
type ColorStop struct {
	Offset float64
	Color  string
}

// MarshalJSON encodes the stop as a two element array.
func (c ColorStop) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Offset, c.Color})
}

// UnmarshalJSON decodes a [offset, color] pair.
func (c *ColorStop) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("color stop: want 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &c.Offset); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &c.Color)
}

// ParcatsLine styles the lines of a parcats trace.
type ParcatsLine struct {
	Colorscale []ColorStop `json:"colorscale"`
	CMin       float64     `json:"cmin"`
	CMax       float64     `json:"cmax"`
	// Color holds one color index per view row.
	Color []int  `json:"color"`
	Shape string `json:"shape"`
}

// ParcatsTrace is a plotly parallel-categories trace.
type ParcatsTrace struct {
	Type        string      `json:"type"`
	Dimensions  []Dimension `json:"dimensions"`
	TickFont    Font        `json:"tickfont"`
	LabelFont   Font        `json:"labelfont"`
	Arrangement string      `json:"arrangement"`
	Line        ParcatsLine `json:"line"`
}

// ParcatsLayout is the layout of the relationship diagram.
type ParcatsLayout struct {
	Title  Title  `json:"title"`
	Font   Font   `json:"font"`
	Margin Margin `json:"margin"`
}

// ParcatsFigure is the relationship diagram figure.
type ParcatsFigure struct {
	Data   []ParcatsTrace `json:"data"`
	Layout ParcatsLayout  `json:"layout"`
}

// StyleCondition selects the cells a StyleRule applies to.
type StyleCondition struct {
	State    string `json:"state,omitempty"`
	RowIndex *int   `json:"row_index,omitempty"`
	ColumnID string `json:"column_id,omitempty"`
}

// StyleRule is one conditional style entry of the data table.
type StyleRule struct {
	If              StyleCondition `json:"if"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	Border          string         `json:"border,omitempty"`
	Width           string         `json:"width,omitempty"`
}
