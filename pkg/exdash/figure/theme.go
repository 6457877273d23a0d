// Package figure builds the chart and style outputs of the dashboard.
// Every builder is a pure function of a derived view and the table state.
package figure

// Theme holds the colors and fonts used by the figures.
type Theme struct {
	// BarColor fills frequency bars.
	BarColor string `yaml:"bar_color"`
	// LineColor draws parcats lines of inactive rows.
	LineColor string `yaml:"line_color"`
	// ActiveLineColor draws the parcats line of the active row.
	ActiveLineColor string `yaml:"active_line_color"`
	// ActiveRowBackground highlights the active cell and its row.
	ActiveRowBackground string `yaml:"active_row_background"`
	// SelectedBackground tints selected cells.
	SelectedBackground string `yaml:"selected_background"`
	// FontFamily is used for parcats labels and ticks.
	FontFamily string `yaml:"font_family"`
}

// DefaultTheme returns the stock dashboard colors.
func DefaultTheme() Theme {
	return Theme{
		BarColor:            "lightsteelblue",
		LineColor:           "lightsteelblue",
		ActiveLineColor:     "firebrick",
		ActiveRowBackground: "rgba(150, 180, 225, 0.2)",
		SelectedBackground:  "rgba(0, 116, 217, .03)",
		FontFamily:          "Times",
	}
}

// WithDefaults fills empty fields from DefaultTheme.
func (t Theme) WithDefaults() Theme {
	d := DefaultTheme()
	if t.BarColor == "" {
		t.BarColor = d.BarColor
	}
	if t.LineColor == "" {
		t.LineColor = d.LineColor
	}
	if t.ActiveLineColor == "" {
		t.ActiveLineColor = d.ActiveLineColor
	}
	if t.ActiveRowBackground == "" {
		t.ActiveRowBackground = d.ActiveRowBackground
	}
	if t.SelectedBackground == "" {
		t.SelectedBackground = d.SelectedBackground
	}
	if t.FontFamily == "" {
		t.FontFamily = d.FontFamily
	}
	return t
}
