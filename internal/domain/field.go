package domain

// Field is one read-only display element of a subject, used by the show,
// preview and compare layouts.
type Field struct {
	Name  string
	Label string
	Value string
}
