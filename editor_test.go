package tether

import "testing"

func TestOverlayEditor(t *testing.T) {
	t.Run("Editing", func(t *testing.T) {
		e := NewOverlayEditor()
		e.SetValue("hello")
		e.Focus()

		if e.cursor != 5 {
			t.Errorf("expected cursor at end, got %d", e.cursor)
		}

		e.Insert('!')
		if e.Value() != "hello!" {
			t.Errorf("expected %q, got %q", "hello!", e.Value())
		}

		e.Backspace()
		e.Backspace()
		if e.Value() != "hell" {
			t.Errorf("expected %q, got %q", "hell", e.Value())
		}

		e.Home()
		e.Delete()
		if e.Value() != "ell" {
			t.Errorf("expected %q, got %q", "ell", e.Value())
		}

		e.MoveCursor(99)
		if e.cursor != 3 {
			t.Errorf("expected cursor clamped to 3, got %d", e.cursor)
		}
		e.MoveCursor(-99)
		if e.cursor != 0 {
			t.Errorf("expected cursor clamped to 0, got %d", e.cursor)
		}
	})

	t.Run("EditingRequiresFocus", func(t *testing.T) {
		e := NewOverlayEditor()
		e.SetValue("abc")

		e.Insert('x')
		e.Backspace()
		e.Delete()
		if e.Value() != "abc" {
			t.Errorf("expected value untouched without focus, got %q", e.Value())
		}
	})

	t.Run("BlurCommitsOnce", func(t *testing.T) {
		var commits []string
		e := NewOverlayEditor().OnChangeComplete(func(v string) { commits = append(commits, v) })

		e.SetValue("draft")
		e.Focus()
		e.Insert('s')
		e.Blur()

		if len(commits) != 1 || commits[0] != "drafts" {
			t.Fatalf("expected one commit of %q, got %v", "drafts", commits)
		}

		// A second blur, by any path, does nothing.
		e.Blur()
		if len(commits) != 1 {
			t.Errorf("expected commit once per session, got %d", len(commits))
		}
	})

	t.Run("RefocusStartsNewSession", func(t *testing.T) {
		var commits []string
		e := NewOverlayEditor().OnChangeComplete(func(v string) { commits = append(commits, v) })

		e.SetValue("one")
		e.Focus()
		e.Blur()
		e.Focus()
		e.SetValue("two")
		e.Blur()

		if len(commits) != 2 || commits[1] != "two" {
			t.Errorf("expected a commit per session, got %v", commits)
		}
	})

	t.Run("EscapeCancelsThenBlurs", func(t *testing.T) {
		var order []string
		e := NewOverlayEditor().
			OnCancel(func() { order = append(order, "cancel") }).
			OnChangeComplete(func(string) { order = append(order, "commit") }).
			OnBlur(func() { order = append(order, "blur") })

		e.SetValue("partial edit")
		e.Focus()
		e.cancel()

		want := []string{"cancel", "commit", "blur"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, order)
			}
		}
		if e.Focused() {
			t.Error("expected focus gone after escape")
		}
	})

	t.Run("EnterBlursWithoutNewline", func(t *testing.T) {
		committed := ""
		e := NewOverlayEditor().OnChangeComplete(func(v string) { committed = v })

		e.SetValue("line")
		e.Focus()
		e.submit()

		if committed != "line" {
			t.Errorf("expected %q, got %q", "line", committed)
		}
		for _, r := range e.Value() {
			if r == '\n' {
				t.Error("expected no newline in value")
			}
		}
		if e.Focused() {
			t.Error("expected blur on enter")
		}
	})

	t.Run("TabBlursOnly", func(t *testing.T) {
		cancelled := false
		blurred := false
		e := NewOverlayEditor().
			OnCancel(func() { cancelled = true }).
			OnBlur(func() { blurred = true })

		e.SetValue("v")
		e.Focus()
		e.Blur() // the Tab route

		if cancelled {
			t.Error("expected no cancel on tab")
		}
		if !blurred {
			t.Error("expected blur notification")
		}
	})

	t.Run("TrackedRect", func(t *testing.T) {
		e := NewOverlayEditor()
		e.SetRect(Rect{Top: 4, Left: 10, Width: 30, Height: 1})

		r := e.Rect()
		if r.Top != 4 || r.Left != 10 {
			t.Errorf("expected rect at (4,10), got (%d,%d)", r.Top, r.Left)
		}
	})

	t.Run("Render", func(t *testing.T) {
		buf := NewBuffer(40, 5)
		e := NewOverlayEditor()
		e.SetValue("hello world")
		e.SetRect(Rect{Top: 1, Left: 2, Width: 20, Height: 1})
		e.Render(buf)

		if got := buf.GetLine(1); got != "  hello world" {
			t.Errorf("expected %q, got %q", "  hello world", got)
		}
	})

	t.Run("RenderScrollsToCursor", func(t *testing.T) {
		buf := NewBuffer(20, 2)
		e := NewOverlayEditor()
		e.SetValue("abcdefghijklmnop")
		e.SetRect(Rect{Top: 0, Left: 0, Width: 8, Height: 1})
		e.Focus() // cursor at end, past the visible width
		e.Render(buf)

		line := buf.GetLine(0)
		if len(line) > 8 {
			t.Errorf("expected at most 8 visible cells, got %q", line)
		}
		// The tail of the value is visible, not the head.
		if line[0] == 'a' {
			t.Errorf("expected scrolled view, got %q", line)
		}
	})

	t.Run("CursorState", func(t *testing.T) {
		e := NewOverlayEditor()
		e.SetValue("ab")
		e.SetRect(Rect{Top: 3, Left: 5, Width: 10, Height: 1})
		e.Focus()

		c := e.CursorState()
		if c.X != 7 || c.Y != 3 {
			t.Errorf("expected cursor at (7,3), got (%d,%d)", c.X, c.Y)
		}
		if !c.Visible {
			t.Error("expected visible cursor while focused")
		}

		e.Blur()
		if e.CursorState().Visible {
			t.Error("expected hidden cursor after blur")
		}
	})
}
