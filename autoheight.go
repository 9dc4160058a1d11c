package tether

// Align controls where a scrolled-to item lands in the viewport.
type Align int

const (
	AlignAuto   Align = iota // minimal scroll to bring the item fully into view
	AlignStart               // item's top row at the top of the viewport
	AlignCenter              // item centered in the viewport
	AlignEnd                 // item's bottom row at the bottom of the viewport
)

// WindowRenderer is the windowed-rendering collaborator driven by the
// auto-height engine. The renderer owns visible-range computation and
// scroll behavior; the engine only answers its per-item size queries
// and nudges it imperatively when measurements land.
type WindowRenderer interface {
	// ScrollTo scrolls the viewport to the given row offset.
	ScrollTo(offset int)
	// ScrollToItem scrolls so the item at index is positioned per align.
	ScrollToItem(index int, align Align)
	// ResetAfterIndex invalidates cached layout from index onward;
	// force applies the relayout immediately.
	ResetAfterIndex(index int, force bool)
}

// AutoHeight measures auto-height items asynchronously and answers
// per-item size queries for a WindowRenderer. Items that declare an
// explicit height are returned verbatim. Auto items are probe-mounted
// off-screen, measured, and remembered for the rest of the epoch;
// until their measurement lands they are estimated from the running
// average of measured siblings, or from a flat default. Every
// debounced resize starts a fresh epoch, because a width change
// invalidates every previously measured natural size.
type AutoHeight struct {
	frames   *Frames
	renderer WindowRenderer

	items []Item

	table       *heightTable
	probes      map[int]*heightProbe
	probeOrder  []int
	mountQueued bool

	defaultHeight int
	allowAuto     bool
	useAverage    bool

	fixedHeight int
	height      int
	containerFn *Latest[func() *Element]
	heightPoll  *FrameTask

	resize *ResizeWatcher

	scrollAlign Align
}

// NewAutoHeight creates an engine feeding sizes to renderer. The
// renderer may be nil for callers that only want ItemSize answers.
func NewAutoHeight(frames *Frames, renderer WindowRenderer) *AutoHeight {
	return &AutoHeight{
		frames:        frames,
		renderer:      renderer,
		table:         newHeightTable(),
		probes:        make(map[int]*heightProbe),
		defaultHeight: 1,
		allowAuto:     true,
		containerFn:   NewLatest[func() *Element](nil),
	}
}

// DefaultHeight sets the fallback row height for undeclared and
// not-yet-measured items. Floored at one row so a consumer can never
// receive a zero size.
func (a *AutoHeight) DefaultHeight(rows int) *AutoHeight {
	if rows < 1 {
		rows = 1
	}
	a.defaultHeight = rows
	return a
}

// AllowAutoHeight enables or disables the measurement path entirely.
// With it off, auto items lay out at the default height.
func (a *AutoHeight) AllowAutoHeight(ok bool) *AutoHeight {
	a.allowAuto = ok
	return a
}

// UseAverageEstimation estimates unmeasured auto items from the
// running average of measured siblings instead of the flat default.
func (a *AutoHeight) UseAverageEstimation(ok bool) *AutoHeight {
	a.useAverage = ok
	return a
}

// FixedHeight supplies the container height directly, disabling the
// per-frame height derivation.
func (a *AutoHeight) FixedHeight(rows int) *AutoHeight {
	a.fixedHeight = rows
	return a
}

// ScrollAlign sets the alignment used by scroll-to-index pass-through.
func (a *AutoHeight) ScrollAlign(align Align) *AutoHeight {
	a.scrollAlign = align
	return a
}

// SetItems replaces the item collection. Measurements for the current
// epoch are kept; indices are assumed stable across the swap.
func (a *AutoHeight) SetItems(items []Item) {
	a.items = items
}

// Items returns the current item collection.
func (a *AutoHeight) Items() []Item {
	return a.items
}

// Start binds the engine to its scroll container and begins the first
// measurement epoch.
func (a *AutoHeight) Start(getContainer func() *Element) *AutoHeight {
	a.containerFn.Set(getContainer)
	a.resetEpoch()
	return a
}

// WatchResize starts a fresh measurement epoch after resize events on
// ch settle (≈200ms).
func (a *AutoHeight) WatchResize(ch <-chan Size) *AutoHeight {
	a.resize = WatchResize(a.frames, ch, func(Size) { a.resetEpoch() })
	return a
}

// Close cancels the height poll and the resize watcher. Call at
// unmount; the engine holds no other resources.
func (a *AutoHeight) Close() {
	if a.heightPoll != nil {
		a.heightPoll.Cancel()
		a.heightPoll = nil
	}
	if a.resize != nil {
		a.resize.Close()
		a.resize = nil
	}
}

// Height reports the resolved container height: the fixed caller
// height if one was supplied, otherwise the last height derived from
// the container (zero until the poll resolves).
func (a *AutoHeight) Height() int {
	if a.fixedHeight > 0 {
		return a.fixedHeight
	}
	return a.height
}

// Measured reports how many items have been measured this epoch.
func (a *AutoHeight) Measured() int {
	return a.table.len()
}

// Average reports the running average height over measured items this
// epoch, or the default height when nothing has been measured yet.
func (a *AutoHeight) Average() int {
	if avg, ok := a.table.average(); ok {
		return avg
	}
	return a.defaultHeight
}

// ItemSize reports the row height for index, evaluated on demand by
// the renderer during layout. The decision ladder:
//
//  1. explicit declared height → verbatim, measurement never overrides it
//  2. auto, already measured this epoch → the measured value
//  3. auto, average estimation on and measurements exist → running average
//  4. otherwise → the default height
//
// Auto items answered by 3 or 4 get a probe registered so their real
// measurement lands on a following frame.
func (a *AutoHeight) ItemSize(index int) int {
	if index < 0 || index >= len(a.items) {
		return a.defaultHeight
	}
	it := a.items[index]
	if it.Height > 0 {
		return it.Height
	}
	if it.Auto && a.allowAuto {
		if h, ok := a.table.get(index); ok {
			return h
		}
		a.ensureProbe(index, it.Content)
		if a.useAverage {
			if avg, ok := a.table.average(); ok {
				return avg
			}
		}
		return a.defaultHeight
	}
	return a.defaultHeight
}

// ApplyScroll forwards optional scroll targets to the renderer. A nil
// pointer means the feature is off for this update and is ignored
// rather than escalated.
func (a *AutoHeight) ApplyScroll(toIndex, toOffset *int) {
	if a.renderer == nil {
		return
	}
	if toIndex != nil {
		a.renderer.ScrollToItem(*toIndex, a.scrollAlign)
	}
	if toOffset != nil {
		a.renderer.ScrollTo(*toOffset)
	}
}

// ensureProbe registers an off-screen probe for an unmeasured auto
// item and queues one measurement pass for the next frame. A probe
// whose mount was deferred (container width not known yet) gets
// requeued on the next query.
func (a *AutoHeight) ensureProbe(index int, content Component) {
	p, ok := a.probes[index]
	if !ok {
		p = newHeightProbe(index, content)
		a.probes[index] = p
		a.probeOrder = append(a.probeOrder, index)
	}
	if p.mounted {
		return
	}
	if !a.mountQueued {
		a.mountQueued = true
		a.frames.Schedule(a.mountProbes)
	}
}

// mountProbes lays out pending probes at the container width, then
// folds the batch into the table.
func (a *AutoHeight) mountProbes() {
	a.mountQueued = false
	width := a.containerWidth()
	for _, i := range a.probeOrder {
		a.probes[i].mount(width)
	}
	a.processAutoHeights()
}

// processAutoHeights folds every probe slot into a fresh total/count —
// already-measured slots without re-reading, newly mounted probes by
// reading them in registration order — then recomputes the running
// average. At most one relayout request goes to the renderer per
// batch: a newly measured row shifts every row below it, and the
// renderer should see that shift once, not once per item.
func (a *AutoHeight) processAutoHeights() {
	total, count := 0, 0
	resolved := false
	for _, i := range a.probeOrder {
		if h, ok := a.table.get(i); ok {
			total += h
			count++
			continue
		}
		h, ok := a.probes[i].read()
		if !ok {
			continue // retried after the next probe mount
		}
		a.table.set(i, h)
		total += h
		count++
		resolved = true
	}
	a.table.setAverage(total, count)
	if resolved && a.renderer != nil {
		a.renderer.ResetAfterIndex(0, true)
	}
}

// resetEpoch atomically clears measurements, probe registrations and
// the running average, then re-derives the container height. Runs on
// mount and after every settled resize.
func (a *AutoHeight) resetEpoch() {
	a.table.reset()
	a.probes = make(map[int]*heightProbe)
	a.probeOrder = nil
	a.mountQueued = false
	a.resolveHeight()
}

// resolveHeight determines the container height. A fixed caller height
// is taken verbatim. Otherwise the container is polled on successive
// frames until it reports a positive height — layout may not have
// committed yet on the frame a resize lands. The poll stops silently
// if the container goes away, and stops for good once a height is
// seen, so there is no busy loop after things stabilize.
func (a *AutoHeight) resolveHeight() {
	if a.heightPoll != nil {
		a.heightPoll.Cancel()
		a.heightPoll = nil
	}
	if a.fixedHeight > 0 {
		a.height = a.fixedHeight
		return
	}
	a.height = 0
	var task *FrameTask
	task = a.frames.Repeat(func() {
		get := a.containerFn.Get()
		if get == nil {
			task.Cancel()
			return
		}
		el := get()
		if el == nil {
			task.Cancel() // container went away mid-poll; abandon silently
			return
		}
		r, ok := el.Bounds()
		if !ok {
			task.Cancel()
			return
		}
		if r.Height > 0 {
			a.height = r.Height
			task.Cancel()
		}
	})
	a.heightPoll = task
}

// containerWidth reads the container's current width, or zero while it
// is unknown. Probes defer mounting until a width exists.
func (a *AutoHeight) containerWidth() int {
	get := a.containerFn.Get()
	if get == nil {
		return 0
	}
	el := get()
	if el == nil {
		return 0
	}
	r, ok := el.Bounds()
	if !ok {
		return 0
	}
	return r.Width
}
