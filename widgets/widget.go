package widgets

// Widget renders itself into a width×height cell of the layout.
type Widget interface {
	Render(width, height int) string
}
