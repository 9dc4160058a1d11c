package tether

import (
	"sync"
	"time"
)

// DefaultResizeDebounce is how long resize events must settle before
// the watcher fires. A resize burst produces one notification, not one
// per event.
const DefaultResizeDebounce = 200 * time.Millisecond

// ResizeWatcher turns a stream of terminal resize events into
// debounced notifications delivered on the frame loop. Constructing
// and closing the watcher scope the subscription to a component's
// mount lifetime.
type ResizeWatcher struct {
	frames *Frames
	fn     func(Size)
	delay  time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// WatchResize starts watching ch with the default debounce window.
func WatchResize(frames *Frames, ch <-chan Size, fn func(Size)) *ResizeWatcher {
	return WatchResizeDebounced(frames, ch, fn, DefaultResizeDebounce)
}

// WatchResizeDebounced starts watching ch with an explicit debounce
// window.
func WatchResizeDebounced(frames *Frames, ch <-chan Size, fn func(Size), delay time.Duration) *ResizeWatcher {
	w := &ResizeWatcher{
		frames: frames,
		fn:     fn,
		delay:  delay,
		stop:   make(chan struct{}),
	}
	go w.watch(ch)
	return w
}

func (w *ResizeWatcher) watch(ch <-chan Size) {
	var timer *time.Timer
	var fire <-chan time.Time
	var last Size
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return
			}
			last = s
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.delay)
			}
			fire = timer.C
		case <-fire:
			s := last
			w.frames.Post(func() { w.fn(s) })
			fire = nil
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Close deregisters the watcher. Idempotent. A debounce already in
// flight is discarded.
func (w *ResizeWatcher) Close() {
	w.stopOnce.Do(func() { close(w.stop) })
}
