package tether

// CursorShape represents the terminal cursor shape.
type CursorShape int

const (
	CursorDefault        CursorShape = 0 // Terminal default
	CursorBlockBlink     CursorShape = 1 // Blinking block
	CursorBlock          CursorShape = 2 // Steady block
	CursorUnderlineBlink CursorShape = 3 // Blinking underline
	CursorUnderline      CursorShape = 4 // Steady underline
	CursorBarBlink       CursorShape = 5 // Blinking bar (line)
	CursorBar            CursorShape = 6 // Steady bar (line)
)

// Cursor represents a cursor position and style.
type Cursor struct {
	X, Y    int
	Shape   CursorShape
	Visible bool
}

// DefaultCursor returns a cursor with sensible defaults.
func DefaultCursor() Cursor {
	return Cursor{
		Shape:   CursorBlock,
		Visible: true,
	}
}
