package widgets

import "strings"

// Table is a plain header+rows grid for read-only aggregate views.
type Table struct {
	Headers []string
	Rows    [][]string
	Empty   string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	lines := []string{strings.Join(t.Headers, " | ")}
	if len(t.Rows) == 0 && t.Empty != "" {
		lines = append(lines, t.Empty)
	}
	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, " | "))
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}
