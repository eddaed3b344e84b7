package widgets

import (
	"fmt"
	"strings"
)

type ChartPoint struct {
	Label string
	Value float64
}

// Chart renders a horizontal bar per point, scaled to the largest value.
type Chart struct {
	Title string
	Data  []ChartPoint
}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(c.Data) == 0 {
		return c.Title + "\n(no data)"
	}
	maxV := 0.0
	for _, p := range c.Data {
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if maxV <= 0 {
		maxV = 1
	}
	lines := []string{c.Title}
	for _, p := range c.Data {
		w := int((p.Value / maxV) * float64(max(1, width-16)))
		if w < 1 && p.Value > 0 {
			w = 1
		}
		lines = append(lines, fmt.Sprintf("%-10s %3.0f %s", p.Label, p.Value, strings.Repeat("█", w)))
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}
