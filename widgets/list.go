package widgets

import "strings"

// List renders titled bullet rows. Empty is shown instead of rows when
// there are none, so empty collections get an explicit affordance rather
// than a blank pane.
type List struct {
	Title string
	Items []string
	Empty string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, l.Title)
	}
	if len(l.Items) == 0 {
		empty := l.Empty
		if empty == "" {
			empty = "(none)"
		}
		rows = append(rows, empty)
	}
	for _, item := range l.Items {
		rows = append(rows, "- "+item)
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
