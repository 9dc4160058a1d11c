package tether

import (
	"sync"
	"time"
)

// Frames is a cooperative frame scheduler. Work registered with
// Schedule runs once on the next frame; work registered with Repeat
// runs every frame until its task is cancelled. Frames are advanced by
// a single goroutine — either Run driving a ticker, or Step called
// directly in tests — so everything scheduled here executes with
// single-threaded semantics.
type Frames struct {
	mu      sync.Mutex
	queue   []*FrameTask
	posted  []func()
	stopCh  chan struct{}
	stopped bool
}

// FrameTask is a cancellable handle to scheduled frame work.
type FrameTask struct {
	frames    *Frames
	fn        func()
	repeat    bool
	cancelled bool
}

// NewFrames creates a new frame scheduler.
func NewFrames() *Frames {
	return &Frames{stopCh: make(chan struct{})}
}

// Schedule runs fn once on the next frame.
func (f *Frames) Schedule(fn func()) *FrameTask {
	return f.add(fn, false)
}

// Repeat runs fn on every frame until the task is cancelled. The
// caller owns the handle; nothing stops a repeating task on its own.
func (f *Frames) Repeat(fn func()) *FrameTask {
	return f.add(fn, true)
}

func (f *Frames) add(fn func(), repeat bool) *FrameTask {
	t := &FrameTask{frames: f, fn: fn, repeat: repeat}
	f.mu.Lock()
	f.queue = append(f.queue, t)
	f.mu.Unlock()
	return t
}

// Post queues fn to run at the start of the next frame. Unlike
// Schedule it returns no handle; use it to hand work to the frame
// goroutine from timers and signal handlers.
func (f *Frames) Post(fn func()) {
	f.mu.Lock()
	f.posted = append(f.posted, fn)
	f.mu.Unlock()
}

// Cancel prevents any further runs of the task. Idempotent: cancelling
// twice, or before the first frame has run, is a no-op. Once Cancel
// returns the task's callback will not run again.
func (t *FrameTask) Cancel() {
	t.frames.mu.Lock()
	t.cancelled = true
	t.frames.mu.Unlock()
}

// Cancelled reports whether the task has been cancelled.
func (t *FrameTask) Cancelled() bool {
	t.frames.mu.Lock()
	defer t.frames.mu.Unlock()
	return t.cancelled
}

// Step runs one frame: posted work first, then every live task queued
// for this frame in registration order. Repeating tasks are requeued
// for the next frame. Work scheduled from within a callback runs on
// the following frame, not this one.
func (f *Frames) Step() {
	f.mu.Lock()
	posted := f.posted
	f.posted = nil
	queue := f.queue
	f.queue = nil
	f.mu.Unlock()

	for _, fn := range posted {
		fn()
	}
	for _, t := range queue {
		f.mu.Lock()
		dead := t.cancelled
		f.mu.Unlock()
		if dead {
			continue
		}
		t.fn()
		if t.repeat {
			f.mu.Lock()
			if !t.cancelled {
				f.queue = append(f.queue, t)
			}
			f.mu.Unlock()
		}
	}
}

// Run drives frames from a ticker until Stop is called. Blocks.
func (f *Frames) Run(interval time.Duration) {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			f.Step()
		case <-f.stopCh:
			return
		}
	}
}

// Stop ends Run. Idempotent.
func (f *Frames) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped {
		return
	}
	f.stopped = true
	close(f.stopCh)
}
