package tether

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextBlock is a styled block of text that word-wraps to its
// constraint width. Its natural height depends on the width it is laid
// out at, which makes it the canonical auto-height item content.
type TextBlock struct {
	Base
	text  string
	style Style
	wrap  bool
	lines []string
}

// Text creates a wrapping text block.
func Text(s string) *TextBlock {
	return &TextBlock{text: s, style: DefaultStyle(), wrap: true}
}

// Styled sets the block's style.
func (t *TextBlock) Styled(style Style) *TextBlock {
	t.style = style
	return t
}

// NoWrap disables word wrapping; long lines are clipped at render.
func (t *TextBlock) NoWrap() *TextBlock {
	t.wrap = false
	return t
}

// SetText replaces the text. The block re-wraps on its next layout.
func (t *TextBlock) SetText(s string) {
	t.text = s
	t.lines = nil
}

// Content returns the unwrapped text.
func (t *TextBlock) Content() string {
	return t.text
}

// SetConstraints wraps the text to the given width and sets the
// block's size to the wrapped dimensions.
func (t *TextBlock) SetConstraints(width, height int) {
	t.Base.SetConstraints(width, height)
	if t.wrap {
		t.lines = wrapText(t.text, width)
	} else {
		t.lines = strings.Split(t.text, "\n")
	}
	maxW := 0
	for _, line := range t.lines {
		if w := runewidth.StringWidth(line); w > maxW {
			maxW = w
		}
	}
	if maxW > width {
		maxW = width
	}
	t.SetSize(maxW, len(t.lines))
}

// MinSize returns the smallest useful size for a text block.
func (t *TextBlock) MinSize() (int, int) {
	return 1, 1
}

// Render draws the wrapped lines.
func (t *TextBlock) Render(buf *Buffer, x, y int) {
	w, _ := t.Size()
	for i, line := range t.lines {
		buf.WriteStringClipped(x, y+i, line, t.style, w)
	}
}

// wrapText greedily word-wraps s to the given display width. Explicit
// newlines are honored; a word wider than the width is broken at the
// width boundary.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineW := 0
		for _, word := range words {
			wordW := runewidth.StringWidth(word)
			// Break oversized words at the width boundary.
			for wordW > width {
				if lineW > 0 {
					out = append(out, line)
					line, lineW = "", 0
				}
				head, headW := truncateWidth(word, width)
				out = append(out, head)
				word = word[len(head):]
				wordW -= headW
			}
			switch {
			case lineW == 0:
				line, lineW = word, wordW
			case lineW+1+wordW <= width:
				line += " " + word
				lineW += 1 + wordW
			default:
				out = append(out, line)
				line, lineW = word, wordW
			}
		}
		if lineW > 0 || line != "" {
			out = append(out, line)
		}
	}
	return out
}

// truncateWidth returns the longest prefix of s that fits in width
// display columns, and that prefix's width.
func truncateWidth(s string, width int) (string, int) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i], w
		}
		w += rw
	}
	return s, w
}
