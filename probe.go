package tether

// probeMaxHeight bounds the layout pass of an off-screen probe so a
// pathological component cannot demand an unbounded scratch buffer.
const probeMaxHeight = 4096

// heightProbe renders an item into an off-screen buffer so its natural
// height can be read without the item ever flashing on the terminal.
type heightProbe struct {
	index   int
	content Component
	mounted bool
}

func newHeightProbe(index int, content Component) *heightProbe {
	return &heightProbe{index: index, content: content}
}

// mount lays the item out at the given width and renders it into a
// scratch buffer. Does nothing until a positive width is known; the
// pipeline retries on its next measurement pass.
func (p *heightProbe) mount(width int) {
	if p.mounted || p.content == nil || width <= 0 {
		return
	}
	p.content.SetConstraints(width, probeMaxHeight)
	w, h := p.content.Size()
	if w <= 0 || h <= 0 {
		return // nothing measurable yet
	}
	scratch := NewBuffer(w, h)
	p.content.Render(scratch, 0, 0)
	p.mounted = true
}

// read reports the probed natural height. ok is false while the probe
// is unmounted or its content still has no measurable size — never a
// fatal condition, just "not yet".
func (p *heightProbe) read() (int, bool) {
	if !p.mounted || p.content == nil {
		return 0, false
	}
	_, h := p.content.Size()
	if h <= 0 {
		return 0, false
	}
	return h, true
}
