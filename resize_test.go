package tether

import (
	"testing"
	"time"
)

func TestResizeWatcher(t *testing.T) {
	t.Run("DebouncesBursts", func(t *testing.T) {
		f := NewFrames()
		ch := make(chan Size, 8)
		var got []Size
		w := WatchResizeDebounced(f, ch, func(s Size) { got = append(got, s) }, 20*time.Millisecond)
		defer w.Close()

		// A drag burst: several sizes in quick succession.
		ch <- Size{Width: 100, Height: 30}
		ch <- Size{Width: 90, Height: 28}
		ch <- Size{Width: 80, Height: 24}

		time.Sleep(60 * time.Millisecond)
		f.Step()

		if len(got) != 1 {
			t.Fatalf("expected one debounced notification, got %d", len(got))
		}
		if got[0].Width != 80 || got[0].Height != 24 {
			t.Errorf("expected the last size of the burst, got %+v", got[0])
		}
	})

	t.Run("DeliversOnFrameLoop", func(t *testing.T) {
		f := NewFrames()
		ch := make(chan Size, 1)
		fired := false
		w := WatchResizeDebounced(f, ch, func(Size) { fired = true }, 5*time.Millisecond)
		defer w.Close()

		ch <- Size{Width: 50, Height: 20}
		time.Sleep(30 * time.Millisecond)

		// Nothing fires until the frame loop runs.
		if fired {
			t.Fatal("expected delivery deferred to the frame loop")
		}
		f.Step()
		if !fired {
			t.Error("expected delivery on the next frame")
		}
	})

	t.Run("SeparateEventsFireSeparately", func(t *testing.T) {
		f := NewFrames()
		ch := make(chan Size, 1)
		count := 0
		w := WatchResizeDebounced(f, ch, func(Size) { count++ }, 5*time.Millisecond)
		defer w.Close()

		ch <- Size{Width: 100, Height: 30}
		time.Sleep(30 * time.Millisecond)
		f.Step()

		ch <- Size{Width: 120, Height: 40}
		time.Sleep(30 * time.Millisecond)
		f.Step()

		if count != 2 {
			t.Errorf("expected two settled notifications, got %d", count)
		}
	})

	t.Run("CloseIsIdempotent", func(t *testing.T) {
		f := NewFrames()
		ch := make(chan Size)
		w := WatchResize(f, ch, func(Size) {})
		w.Close()
		w.Close()
	})
}
