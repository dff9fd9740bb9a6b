package core

// Mark identifies which seat owns a cell. Empty means the cell has not
// been played.
type Mark int8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

// String returns the display symbol for a mark.
func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "."
	}
}

// IsPlayer reports whether the mark belongs to a seat (i.e. is not Empty).
func (m Mark) IsPlayer() bool {
	return m == MarkX || m == MarkO
}

// Other returns the opposing seat's mark. Calling it on Empty returns Empty.
func (m Mark) Other() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}
