package tether

import "testing"

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		if buf.Width() != 80 || buf.Height() != 24 {
			t.Errorf("expected 80x24, got %dx%d", buf.Width(), buf.Height())
		}

		// All cells should be empty
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				c := buf.Get(x, y)
				if c.Rune != ' ' {
					t.Errorf("expected space at (%d,%d), got %q", x, y, c.Rune)
				}
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)

		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}

		for _, tt := range tests {
			got := buf.InBounds(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		cell := NewCell('X', DefaultStyle().Foreground(Red))

		buf.Set(5, 5, cell)
		got := buf.Get(5, 5)

		if !got.Equal(cell) {
			t.Errorf("got %+v, want %+v", got, cell)
		}

		// Out of bounds should return empty cell
		oob := buf.Get(-1, -1)
		if oob.Rune != ' ' {
			t.Error("expected empty cell for out of bounds")
		}
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(20, 5)
		n := buf.WriteString(2, 1, "hello", DefaultStyle())

		if n != 5 {
			t.Errorf("expected 5 cells written, got %d", n)
		}
		if got := buf.GetLine(1); got != "  hello" {
			t.Errorf("expected %q, got %q", "  hello", got)
		}
	})

	t.Run("WriteStringClipped", func(t *testing.T) {
		buf := NewBuffer(20, 5)
		n := buf.WriteStringClipped(0, 0, "hello world", DefaultStyle(), 5)

		if n != 5 {
			t.Errorf("expected 5 cells written, got %d", n)
		}
		if got := buf.GetLine(0); got != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
	})

	t.Run("FillRect", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		buf.FillRect(2, 2, 3, 3, NewCell('#', DefaultStyle()))

		if buf.Get(2, 2).Rune != '#' || buf.Get(4, 4).Rune != '#' {
			t.Error("expected filled corners")
		}
		if buf.Get(1, 2).Rune != ' ' || buf.Get(5, 4).Rune != ' ' {
			t.Error("expected cells outside the rect untouched")
		}
	})

	t.Run("Blit", func(t *testing.T) {
		src := NewBuffer(4, 3)
		src.WriteString(0, 0, "abcd", DefaultStyle())
		src.WriteString(0, 1, "efgh", DefaultStyle())
		src.WriteString(0, 2, "ijkl", DefaultStyle())

		dst := NewBuffer(10, 5)
		dst.Blit(src, 0, 1, 3, 2, 4, 2)

		if got := dst.GetLine(2); got != "   efgh" {
			t.Errorf("expected %q, got %q", "   efgh", got)
		}
		if got := dst.GetLine(3); got != "   ijkl" {
			t.Errorf("expected %q, got %q", "   ijkl", got)
		}
		if got := dst.GetLine(0); got != "" {
			t.Errorf("expected untouched row, got %q", got)
		}
	})

	t.Run("BlitClipsAtEdges", func(t *testing.T) {
		src := NewBuffer(3, 1)
		src.WriteString(0, 0, "xyz", DefaultStyle())

		dst := NewBuffer(4, 2)
		dst.Blit(src, 0, 0, 2, 0, 3, 1) // 'z' falls off the right edge

		if got := dst.GetLine(0); got != "  xy" {
			t.Errorf("expected %q, got %q", "  xy", got)
		}
	})

	t.Run("DrawBorder", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		buf.DrawBorder(0, 0, 10, 5, BorderSingle, DefaultStyle())

		if buf.Get(0, 0).Rune != BoxTopLeft {
			t.Errorf("expected top-left corner, got %q", buf.Get(0, 0).Rune)
		}
		if buf.Get(9, 4).Rune != BoxBottomRight {
			t.Errorf("expected bottom-right corner, got %q", buf.Get(9, 4).Rune)
		}
		if buf.Get(5, 0).Rune != BoxHorizontal {
			t.Errorf("expected horizontal edge, got %q", buf.Get(5, 0).Rune)
		}
		if buf.Get(0, 2).Rune != BoxVertical {
			t.Errorf("expected vertical edge, got %q", buf.Get(0, 2).Rune)
		}
		// Interior untouched
		if buf.Get(5, 2).Rune != ' ' {
			t.Error("expected interior untouched")
		}
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		buf.WriteString(0, 0, "keep", DefaultStyle())

		buf.Resize(20, 10)
		if buf.Width() != 20 || buf.Height() != 10 {
			t.Errorf("expected 20x10, got %dx%d", buf.Width(), buf.Height())
		}
		if got := buf.GetLine(0); got != "keep" {
			t.Errorf("expected content preserved, got %q", got)
		}

		buf.Resize(2, 1)
		if got := buf.GetLine(0); got != "ke" {
			t.Errorf("expected content cropped, got %q", got)
		}
	})

	t.Run("String", func(t *testing.T) {
		buf := NewBuffer(3, 2)
		buf.WriteString(0, 0, "ab", DefaultStyle())
		buf.WriteString(0, 1, "cd", DefaultStyle())

		want := "ab \ncd "
		if got := buf.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}
