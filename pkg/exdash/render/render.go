// Package render draws bar chart figures as PNG images with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/exdash-go/pkg/exdash/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoBars is returned for a figure without any bar to draw.
var ErrNoBars = errors.New("figure has no bars")

const (
	minWidth    = 320
	barWidth    = 48
	barSpacing  = 24
	maxLabelLen = 18
)

// namedColors resolves the CSS color names used by the figures.
var namedColors = map[string]drawing.Color{
	"lightsteelblue": drawing.ColorFromHex("b0c4de"),
	"steelblue":      drawing.ColorFromHex("4682b4"),
	"firebrick":      drawing.ColorFromHex("b22222"),
	"teal":           drawing.ColorFromHex("008080"),
	"gray":           drawing.ColorFromHex("808080"),
}

// ParseColor converts a CSS color name or #rrggbb hex string.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 3 {
		return drawing.Color{}, fmt.Errorf("unsupported color %q", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return drawing.Color{}, fmt.Errorf("unsupported color %q", s)
		}
	}
	return drawing.ColorFromHex(hex), nil
}

// BarPNG renders the first trace of a bar chart graph as a PNG image.
func BarPNG(g models.Graph, w io.Writer) error {
	if len(g.Figure.Data) == 0 || len(g.Figure.Data[0].X) == 0 {
		return ErrNoBars
	}
	trace := g.Figure.Data[0]

	fill, err := ParseColor(trace.Marker.Color)
	if err != nil {
		fill = namedColors["lightsteelblue"]
	}

	maxCount := 0
	bars := make([]chart.Value, len(trace.X))
	for i, x := range trace.X {
		count := 0
		if i < len(trace.Y) {
			count = trace.Y[i]
		}
		maxCount = max(maxCount, count)
		bars[i] = chart.Value{
			Label: truncate(models.FormatValue(x)),
			Value: float64(count),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill.WithAlpha(255),
				StrokeWidth: 1,
			},
		}
	}

	title := g.ID
	if t := g.Figure.Layout.YAxis.Title; t != nil && t.Text != "" {
		title = t.Text
	}
	height := g.Figure.Layout.Height
	if height <= 0 {
		height = 250
	}

	bc := chart.BarChart{
		Title:  title,
		Width:  max(minWidth, len(bars)*(barWidth+barSpacing)+2*g.Figure.Layout.Margin.L),
		Height: height,
		Background: chart.Style{Padding: chart.Box{
			Top:    g.Figure.Layout.Margin.T,
			Left:   g.Figure.Layout.Margin.L,
			Right:  g.Figure.Layout.Margin.R,
			Bottom: 20,
		}},
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		// An explicit range keeps single-height charts drawable.
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)}},
		Bars:  bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %s: %w", g.ID, err)
	}
	return nil
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxLabelLen {
		return s
	}
	return string(r[:maxLabelLen-1]) + "…"
}
