package tether

import "github.com/kungfusheep/riffkey"

// OverlayEditor is a single-line text surface positioned by a Tracker.
// It owns the edit value, the cursor, and the key/blur policy of the
// overlay:
//
//	Escape  cancel callback, then blur
//	Enter   blur; the key is claimed by the router so no newline ever
//	        reaches the value
//	Tab     blur only; focus cycling proceeds in the host's base router
//	blur    commit callback fires exactly once with the current value
type OverlayEditor struct {
	value  string
	cursor int // rune index into value

	rect      Rect
	focused   bool
	committed bool

	style  Style
	border *BorderStyle

	onChangeComplete func(string)
	onCancel         func()
	onBlur           func()
}

// NewOverlayEditor creates an empty editor with default styling.
func NewOverlayEditor() *OverlayEditor {
	return &OverlayEditor{style: DefaultStyle()}
}

// OnChangeComplete sets the commit callback, invoked exactly once per
// focus session when the editor loses focus.
func (e *OverlayEditor) OnChangeComplete(fn func(value string)) *OverlayEditor {
	e.onChangeComplete = fn
	return e
}

// OnCancel sets the callback invoked when editing is cancelled with
// Escape, and at unmount by the owning component.
func (e *OverlayEditor) OnCancel(fn func()) *OverlayEditor {
	e.onCancel = fn
	return e
}

// OnBlur notifies the host after the surface loses focus, however that
// happens. Hosts use it to pop the editor's router off the input stack.
func (e *OverlayEditor) OnBlur(fn func()) *OverlayEditor {
	e.onBlur = fn
	return e
}

// Styled sets the editor's text style.
func (e *OverlayEditor) Styled(s Style) *OverlayEditor {
	e.style = s
	return e
}

// Border draws the editor with the given border.
func (e *OverlayEditor) Border(b BorderStyle) *OverlayEditor {
	e.border = &b
	return e
}

// SetValue replaces the edit value and clamps the cursor.
func (e *OverlayEditor) SetValue(s string) {
	e.value = s
	if n := len([]rune(s)); e.cursor > n {
		e.cursor = n
	}
}

// Value returns the current edit value.
func (e *OverlayEditor) Value() string {
	return e.value
}

// SetRect is the tracker's publish sink: it moves the editor to the
// clamped geometry computed for this frame.
func (e *OverlayEditor) SetRect(r Rect) {
	e.rect = r
}

// Rect returns the editor's current geometry.
func (e *OverlayEditor) Rect() Rect {
	return e.rect
}

// Focus gives the editor keyboard focus and starts a fresh commit
// session. The cursor moves to the end of the value.
func (e *OverlayEditor) Focus() {
	e.focused = true
	e.committed = false
	e.cursor = len([]rune(e.value))
}

// Focused reports whether the editor has keyboard focus.
func (e *OverlayEditor) Focused() bool {
	return e.focused
}

// Blur removes focus and fires the commit callback with the current
// value. Committing is once-per-session: a second blur, by whatever
// path, does nothing.
func (e *OverlayEditor) Blur() {
	if !e.focused {
		return
	}
	e.focused = false
	if e.onChangeComplete != nil && !e.committed {
		e.committed = true
		e.onChangeComplete(e.value)
	}
	if e.onBlur != nil {
		e.onBlur()
	}
}

// cancel implements the Escape policy: cancel callback first, then
// blur (which commits).
func (e *OverlayEditor) cancel() {
	if e.onCancel != nil {
		e.onCancel()
	}
	e.Blur()
}

// submit implements the Enter policy. The router claims the key before
// any text insertion can happen, so blurring is all there is to do.
func (e *OverlayEditor) submit() {
	e.Blur()
}

// Insert inserts a rune at the cursor.
func (e *OverlayEditor) Insert(ch rune) {
	if !e.focused {
		return
	}
	runes := []rune(e.value)
	runes = append(runes[:e.cursor], append([]rune{ch}, runes[e.cursor:]...)...)
	e.value = string(runes)
	e.cursor++
}

// Backspace deletes the rune before the cursor.
func (e *OverlayEditor) Backspace() {
	if !e.focused || e.cursor == 0 {
		return
	}
	runes := []rune(e.value)
	e.value = string(append(runes[:e.cursor-1], runes[e.cursor:]...))
	e.cursor--
}

// Delete deletes the rune under the cursor.
func (e *OverlayEditor) Delete() {
	runes := []rune(e.value)
	if !e.focused || e.cursor >= len(runes) {
		return
	}
	e.value = string(append(runes[:e.cursor], runes[e.cursor+1:]...))
}

// MoveCursor moves the cursor by delta runes, clamped to the value.
func (e *OverlayEditor) MoveCursor(delta int) {
	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = 0
	}
	if n := len([]rune(e.value)); e.cursor > n {
		e.cursor = n
	}
}

// Home moves the cursor to the start of the value.
func (e *OverlayEditor) Home() {
	e.cursor = 0
}

// End moves the cursor past the last rune.
func (e *OverlayEditor) End() {
	e.cursor = len([]rune(e.value))
}

// Router returns the key routing for a focused editor. Push it onto
// the riffkey input stack when the editor takes focus and pop it from
// OnBlur. Escape, Enter and Tab are claimed here, ahead of text
// insertion.
func (e *OverlayEditor) Router() *riffkey.Router {
	r := riffkey.NewRouter()
	r.Handle("<Esc>", func(riffkey.Match) { e.cancel() })
	r.Handle("<CR>", func(riffkey.Match) { e.submit() })
	r.Handle("<Tab>", func(riffkey.Match) { e.Blur() })
	r.Handle("<BS>", func(riffkey.Match) { e.Backspace() })
	r.Handle("<C-d>", func(riffkey.Match) { e.Delete() })
	r.Handle("<Left>", func(riffkey.Match) { e.MoveCursor(-1) })
	r.Handle("<Right>", func(riffkey.Match) { e.MoveCursor(1) })
	r.Handle("<Home>", func(riffkey.Match) { e.Home() })
	r.Handle("<End>", func(riffkey.Match) { e.End() })
	registerPrintable(r, e.Insert)
	return r
}

// Render draws the editor at its tracked rect.
func (e *OverlayEditor) Render(buf *Buffer) {
	r := e.rect
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	buf.FillRect(r.Left, r.Top, r.Width, r.Height, NewCell(' ', e.style))

	textX, textY, textW := r.Left, r.Top, r.Width
	if e.border != nil {
		buf.DrawBorder(r.Left, r.Top, r.Width, r.Height, *e.border, e.style)
		textX++
		textY++
		textW -= 2
	}
	if textW <= 0 {
		return
	}

	// Scroll the value horizontally so the cursor stays visible.
	runes := []rune(e.value)
	start := 0
	if e.cursor >= textW {
		start = e.cursor - textW + 1
	}
	end := start + textW
	if end > len(runes) {
		end = len(runes)
	}
	buf.WriteStringClipped(textX, textY, string(runes[start:end]), e.style, textW)
	if e.focused {
		cx := textX + e.cursor - start
		cell := buf.Get(cx, textY)
		buf.Set(cx, textY, NewCell(cell.Rune, e.style.Inverse()))
	}
}

// CursorState returns the terminal cursor placement for the editor,
// for hosts that show the hardware cursor instead of an inverse cell.
func (e *OverlayEditor) CursorState() Cursor {
	x := e.rect.Left + e.cursor
	y := e.rect.Top
	if e.border != nil {
		x++
		y++
	}
	return Cursor{X: x, Y: y, Shape: CursorBar, Visible: e.focused}
}

// registerPrintable registers handlers for the common printable
// characters so unclaimed keys become insertions.
func registerPrintable(r *riffkey.Router, handler func(ch rune)) {
	for ch := 'a'; ch <= 'z'; ch++ {
		ch := ch
		r.Handle(string(ch), func(riffkey.Match) { handler(ch) })
	}
	for ch := 'A'; ch <= 'Z'; ch++ {
		ch := ch
		r.Handle(string(ch), func(riffkey.Match) { handler(ch) })
	}
	for ch := '0'; ch <= '9'; ch++ {
		ch := ch
		r.Handle(string(ch), func(riffkey.Match) { handler(ch) })
	}
	for _, ch := range " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		ch := ch
		pattern := string(ch)
		if ch == ' ' {
			pattern = "<Space>"
		}
		r.Handle(pattern, func(riffkey.Match) { handler(ch) })
	}
}
