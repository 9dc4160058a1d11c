package tether

// WindowList renders only the slice of its items that intersects the
// viewport, plus a configurable overscan margin. Item heights come
// from a size function queried lazily during layout, so heights may
// change between frames (measurements landing, estimates improving)
// and the list picks the change up through ResetAfterIndex.
type WindowList struct {
	Base

	items    []Item
	itemSize func(index int) int

	// offsets[i] is the top row of item i relative to the content
	// origin; grown lazily and truncated by ResetAfterIndex.
	offsets []int

	scrollOffset int
	overscan     int
	estimated    int

	onScroll   func(offset int)
	border     *BorderStyle
	background *Color

	viewportW int
	viewportH int
}

// NewWindowList creates a windowed list over items. itemSize may be
// nil, in which case declared item heights (or the estimate) are used
// directly.
func NewWindowList(items []Item, itemSize func(index int) int) *WindowList {
	return &WindowList{
		items:     items,
		itemSize:  itemSize,
		overscan:  1,
		estimated: 1,
	}
}

// Overscan sets how many extra items are rendered beyond each edge of
// the viewport. More overscan smooths fast scrolling at the cost of
// extra render work.
func (l *WindowList) Overscan(n int) *WindowList {
	if n < 0 {
		n = 0
	}
	l.overscan = n
	return l
}

// EstimatedItemSize sets the height assumed for items with no size
// function answer and no declared height.
func (l *WindowList) EstimatedItemSize(rows int) *WindowList {
	if rows < 1 {
		rows = 1
	}
	l.estimated = rows
	return l
}

// OnScroll registers a callback fired whenever the scroll offset
// changes, with the new offset.
func (l *WindowList) OnScroll(fn func(offset int)) *WindowList {
	l.onScroll = fn
	return l
}

// Border draws the list inside the given border style.
func (l *WindowList) Border(style BorderStyle) *WindowList {
	l.border = &style
	return l
}

// Background fills the viewport with the given color before items
// render.
func (l *WindowList) Background(c Color) *WindowList {
	l.background = &c
	return l
}

// SetItems replaces the item collection, drops the offset cache and
// reclamps the scroll position.
func (l *WindowList) SetItems(items []Item) {
	l.items = items
	l.offsets = nil
	l.clampScroll()
}

// Len returns the number of items.
func (l *WindowList) Len() int {
	return len(l.items)
}

// sizeOf answers the height of item i: the size function first, then
// the declared height, then the estimate. Never below one row.
func (l *WindowList) sizeOf(i int) int {
	h := 0
	if l.itemSize != nil {
		h = l.itemSize(i)
	}
	if h <= 0 {
		h = l.items[i].Height
	}
	if h <= 0 {
		h = l.estimated
	}
	return h
}

// offsetOf returns the top row of item i, extending the prefix cache
// as needed. offsetOf(len(items)) is the total content height.
func (l *WindowList) offsetOf(i int) int {
	if len(l.offsets) == 0 {
		l.offsets = append(l.offsets, 0)
	}
	for len(l.offsets) <= i {
		n := len(l.offsets) - 1
		l.offsets = append(l.offsets, l.offsets[n]+l.sizeOf(n))
	}
	return l.offsets[i]
}

// ItemOffset returns the top row of item i relative to the content
// origin. Hosts use it to derive on-screen geometry for a row, e.g. to
// anchor an overlay to it.
func (l *WindowList) ItemOffset(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(l.items) {
		i = len(l.items)
	}
	return l.offsetOf(i)
}

// ItemHeight returns the laid-out height of item i.
func (l *WindowList) ItemHeight(i int) int {
	if i < 0 || i >= len(l.items) {
		return 0
	}
	return l.sizeOf(i)
}

// TotalHeight returns the full content height in rows.
func (l *WindowList) TotalHeight() int {
	return l.offsetOf(len(l.items))
}

func (l *WindowList) maxScroll() int {
	max := l.TotalHeight() - l.viewportH
	if max < 0 {
		max = 0
	}
	return max
}

// ScrollTo scrolls the viewport to the given row offset, clamped to
// the content. A no-op move fires no callback.
func (l *WindowList) ScrollTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	if max := l.maxScroll(); offset > max {
		offset = max
	}
	if offset == l.scrollOffset {
		return
	}
	l.scrollOffset = offset
	if l.onScroll != nil {
		l.onScroll(offset)
	}
}

// ScrollBy scrolls relative to the current offset.
func (l *WindowList) ScrollBy(delta int) {
	l.ScrollTo(l.scrollOffset + delta)
}

// ScrollOffset returns the current scroll offset in rows.
func (l *WindowList) ScrollOffset() int {
	return l.scrollOffset
}

// ScrollToItem scrolls so the item at index is positioned per align.
// AlignAuto scrolls the minimum distance that brings the item fully
// into view, and not at all if it already is.
func (l *WindowList) ScrollToItem(index int, align Align) {
	if len(l.items) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(l.items) {
		index = len(l.items) - 1
	}
	top := l.offsetOf(index)
	bottom := top + l.sizeOf(index)
	switch align {
	case AlignStart:
		l.ScrollTo(top)
	case AlignEnd:
		l.ScrollTo(bottom - l.viewportH)
	case AlignCenter:
		l.ScrollTo(top - (l.viewportH-(bottom-top))/2)
	default: // AlignAuto
		if top < l.scrollOffset {
			l.ScrollTo(top)
		} else if bottom > l.scrollOffset+l.viewportH {
			l.ScrollTo(bottom - l.viewportH)
		}
	}
}

// ResetAfterIndex invalidates cached offsets for items at or after
// index; their heights are re-queried on the next layout. With force
// the scroll position is reclamped against the new content height
// immediately.
func (l *WindowList) ResetAfterIndex(index int, force bool) {
	if index < 0 {
		index = 0
	}
	if keep := index + 1; keep < len(l.offsets) {
		l.offsets = l.offsets[:keep]
	}
	if force {
		l.clampScroll()
	}
}

func (l *WindowList) clampScroll() {
	if l.scrollOffset > l.maxScroll() {
		l.scrollOffset = l.maxScroll()
	}
	if l.scrollOffset < 0 {
		l.scrollOffset = 0
	}
}

// indexAt returns the index of the item containing the given content
// row, or the last item for rows past the end.
func (l *WindowList) indexAt(row int) int {
	if row < 0 {
		return 0
	}
	for i := range l.items {
		if l.offsetOf(i+1) > row {
			return i
		}
	}
	return len(l.items) - 1
}

// VisibleRange returns the half-open item range [start, end) rendered
// for the current viewport, including overscan.
func (l *WindowList) VisibleRange() (int, int) {
	if len(l.items) == 0 || l.viewportH <= 0 {
		return 0, 0
	}
	start := l.indexAt(l.scrollOffset)
	end := l.indexAt(l.scrollOffset+l.viewportH-1) + 1
	start -= l.overscan
	end += l.overscan
	if start < 0 {
		start = 0
	}
	if end > len(l.items) {
		end = len(l.items)
	}
	return start, end
}

// SetConstraints sizes the viewport and constrains the visible items.
func (l *WindowList) SetConstraints(width, height int) {
	l.Base.SetConstraints(width, height)
	l.SetSize(width, height)

	innerW, innerH := width, height
	if l.border != nil {
		innerW -= 2
		innerH -= 2
	}
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	l.viewportW = innerW
	l.viewportH = innerH
	l.clampScroll()

	start, end := l.VisibleRange()
	for i := start; i < end; i++ {
		if c := l.items[i].Content; c != nil {
			c.SetConstraints(innerW, l.sizeOf(i))
		}
	}
}

// Render draws the visible window of items, clipping partially visible
// rows at the viewport edges.
func (l *WindowList) Render(buf *Buffer, x, y int) {
	w, h := l.Size()
	if w <= 0 || h <= 0 {
		return
	}

	innerX, innerY := x, y
	if l.background != nil {
		style := DefaultStyle().Background(*l.background)
		buf.FillRect(x, y, w, h, NewCell(' ', style))
	}
	if l.border != nil {
		buf.DrawBorder(x, y, w, h, *l.border, DefaultStyle())
		innerX++
		innerY++
	}
	if l.viewportW <= 0 || l.viewportH <= 0 {
		return
	}

	start, end := l.VisibleRange()
	for i := start; i < end; i++ {
		content := l.items[i].Content
		if content == nil {
			continue
		}
		itemTop := l.offsetOf(i) - l.scrollOffset
		itemH := l.sizeOf(i)
		if itemTop+itemH <= 0 || itemTop >= l.viewportH {
			continue
		}

		scratch := NewBuffer(l.viewportW, itemH)
		content.Render(scratch, 0, 0)

		// Clip rows that fall above or below the viewport.
		srcY, dstY := 0, itemTop
		rows := itemH
		if dstY < 0 {
			srcY = -dstY
			rows += dstY
			dstY = 0
		}
		if dstY+rows > l.viewportH {
			rows = l.viewportH - dstY
		}
		if rows <= 0 {
			continue
		}
		buf.Blit(scratch, 0, srcY, innerX, innerY+dstY, l.viewportW, rows)
	}

	if l.border != nil {
		l.renderScrollbar(buf, x, y, w, h)
	}
}

// renderScrollbar draws a proportional thumb on the right border.
func (l *WindowList) renderScrollbar(buf *Buffer, x, y, w, h int) {
	total := l.TotalHeight()
	if total <= l.viewportH || l.viewportH <= 0 {
		return
	}
	trackH := h - 2
	if trackH < 1 {
		return
	}
	thumbH := l.viewportH * trackH / total
	if thumbH < 1 {
		thumbH = 1
	}
	maxTop := trackH - thumbH
	thumbTop := 0
	if max := l.maxScroll(); max > 0 {
		thumbTop = l.scrollOffset * maxTop / max
	}
	barX := x + w - 1
	for i := 0; i < trackH; i++ {
		ch := BoxVertical
		if i >= thumbTop && i < thumbTop+thumbH {
			ch = '┃'
		}
		buf.Set(barX, y+1+i, NewCell(ch, DefaultStyle()))
	}
}
