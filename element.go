package tether

// Rect is a rectangle in screen cells.
type Rect struct {
	Top, Left     int
	Width, Height int
}

// Bottom returns the row just below the rectangle.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Right returns the column just past the rectangle.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Element is a node in the rendered layout tree. The position tracker
// reads element geometry fresh every frame, so an element only has to
// keep its Rect current; parents and scroll containers are
// rediscovered per frame, which tolerates tree changes for free.
type Element struct {
	rect     Rect
	parent   *Element
	scroller bool
	detached bool
}

// NewElement creates a detached-from-nothing element with zero bounds.
func NewElement() *Element {
	return &Element{}
}

// SetBounds records the element's current geometry.
func (e *Element) SetBounds(r Rect) *Element {
	e.rect = r
	return e
}

// Bounds reports the element's geometry. ok is false once the element
// has been detached from the tree — callers treat that as a transient
// condition, not an error.
func (e *Element) Bounds() (Rect, bool) {
	if e == nil || e.detached {
		return Rect{}, false
	}
	return e.rect, true
}

// SetParent links the element under p.
func (e *Element) SetParent(p *Element) *Element {
	e.parent = p
	return e
}

// MarkScrollContainer flags this element as a scrollable body, making
// it discoverable by ScrollContainerOf.
func (e *Element) MarkScrollContainer() *Element {
	e.scroller = true
	return e
}

// Detach removes the element from the tree. Subsequent Bounds calls
// report it unreachable.
func (e *Element) Detach() {
	e.detached = true
	e.parent = nil
}

// ScrollContainerOf walks up from el and returns the nearest element
// marked as a scroll container, or nil when there is none.
func ScrollContainerOf(el *Element) *Element {
	for e := el; e != nil; e = e.parent {
		if e.scroller && !e.detached {
			return e
		}
	}
	return nil
}
