package tether

// Component is a render node for the windowed item view. A component
// is told its available space with SetConstraints and must afterwards
// report its natural size from Size — that contract is what allows the
// auto-height probes to measure an item without showing it.
type Component interface {
	// SetConstraints tells the component how much space is available.
	SetConstraints(width, height int)
	// MinSize returns the minimum size the component needs.
	MinSize() (width, height int)
	// Size returns the component's natural size after layout.
	Size() (width, height int)
	// Render draws the component to the buffer at the given position.
	Render(buf *Buffer, x, y int)
}

// Base provides common layout bookkeeping for components.
// Embed this in component structs.
type Base struct {
	width, height int // natural size after layout
	constraintW   int // available width from parent
	constraintH   int // available height from parent
}

// SetConstraints records the available space.
func (b *Base) SetConstraints(width, height int) {
	b.constraintW = width
	b.constraintH = height
}

// Constraints returns the current constraints.
func (b *Base) Constraints() (width, height int) {
	return b.constraintW, b.constraintH
}

// MinSize returns the minimum size needed.
func (b *Base) MinSize() (int, int) {
	return 0, 0
}

// Size returns the natural size after layout.
func (b *Base) Size() (int, int) {
	return b.width, b.height
}

// SetSize sets the natural size.
func (b *Base) SetSize(w, h int) {
	b.width = w
	b.height = h
}
