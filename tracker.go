package tether

// CancelFunc tears down work started elsewhere. Safe to call more than
// once.
type CancelFunc func()

// Tracker keeps a floating overlay pinned to a moving anchor element.
//
// Scrolling, resizing and content reflow can all move an anchor, and
// no single notification covers the three, so the tracker recomputes
// the anchor's geometry every frame and republishes it. The overlay
// can never visibly lag by more than one frame, and a frame where the
// anchor is unreachable simply keeps the last published position.
type Tracker struct {
	frames  *Frames
	publish func(Rect)

	anchorFn    *Latest[func() *Element]
	containerFn *Latest[func() *Element]

	minWidth  int
	minHeight int
	onReady   func()
}

// NewTracker creates a tracker that delivers clamped overlay geometry
// to publish once per frame while started.
func NewTracker(frames *Frames, publish func(Rect)) *Tracker {
	return &Tracker{
		frames:      frames,
		publish:     publish,
		anchorFn:    NewLatest[func() *Element](nil),
		containerFn: NewLatest[func() *Element](nil),
	}
}

// MinSize floors the published width and height. Zero disables a floor.
func (t *Tracker) MinSize(width, height int) *Tracker {
	t.minWidth = width
	t.minHeight = height
	return t
}

// Container overrides scroll-container discovery with an explicit
// accessor. Without it the tracker walks the anchor's ancestors every
// frame.
func (t *Tracker) Container(get func() *Element) *Tracker {
	t.containerFn.Set(get)
	return t
}

// OnReady schedules fn for a single frame after Start. Overlays use it
// to move input focus into their interactive surface once it exists.
// The one-shot is cancelled together with the tracker.
func (t *Tracker) OnReady(fn func()) *Tracker {
	t.onReady = fn
	return t
}

// SetAnchor swaps the anchor accessor without restarting the tracking
// loop. The accessor may return a different element across calls, or
// nil while the anchor is temporarily gone.
func (t *Tracker) SetAnchor(get func() *Element) {
	t.anchorFn.Set(get)
}

// Start begins per-frame tracking of the anchor produced by get. The
// returned CancelFunc is the single teardown path: it stops the
// recurring tracking task and the one-shot ready task, and no publish
// happens after it returns. The loop never stops on its own, so the
// owner must call it exactly once at unmount.
func (t *Tracker) Start(get func() *Element) CancelFunc {
	t.anchorFn.Set(get)
	task := t.frames.Repeat(t.tick)
	var ready *FrameTask
	if t.onReady != nil {
		ready = t.frames.Schedule(t.onReady)
	}
	return func() {
		task.Cancel()
		if ready != nil {
			ready.Cancel()
		}
	}
}

// tick recomputes and publishes the overlay geometry for one frame.
func (t *Tracker) tick() {
	get := t.anchorFn.Get()
	if get == nil {
		return
	}
	anchor := get()
	if anchor == nil {
		return // transient absence: skip the publish, keep polling
	}
	rect, ok := anchor.Bounds()
	if !ok {
		return
	}

	var container *Element
	if cf := t.containerFn.Get(); cf != nil {
		container = cf()
	} else {
		container = ScrollContainerOf(anchor)
	}
	if container != nil {
		if cr, ok := container.Bounds(); ok {
			// Keep the overlay inside the container: top within
			// [cr.Top, cr.Bottom()-rect.Height]. Left, width and
			// height pass through unclamped.
			if limit := cr.Bottom() - rect.Height; rect.Top > limit {
				rect.Top = limit
			}
			if rect.Top < cr.Top {
				rect.Top = cr.Top
			}
		}
	}

	if rect.Width < t.minWidth {
		rect.Width = t.minWidth
	}
	if rect.Height < t.minHeight {
		rect.Height = t.minHeight
	}
	t.publish(rect)
}
