package tether

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElement(t *testing.T) {
	t.Run("Bounds", func(t *testing.T) {
		el := NewElement().SetBounds(Rect{Top: 3, Left: 5, Width: 40, Height: 2})
		r, ok := el.Bounds()
		if !ok {
			t.Fatal("expected bounds to be available")
		}
		want := Rect{Top: 3, Left: 5, Width: 40, Height: 2}
		if diff := cmp.Diff(want, r); diff != "" {
			t.Errorf("bounds mismatch (-want +got):\n%s", diff)
		}
		if r.Bottom() != 5 || r.Right() != 45 {
			t.Errorf("expected bottom 5 right 45, got %d %d", r.Bottom(), r.Right())
		}
	})

	t.Run("NilElement", func(t *testing.T) {
		var el *Element
		if _, ok := el.Bounds(); ok {
			t.Error("nil element should report no bounds")
		}
	})

	t.Run("DetachedElement", func(t *testing.T) {
		el := NewElement().SetBounds(Rect{Width: 10, Height: 1})
		el.Detach()
		if _, ok := el.Bounds(); ok {
			t.Error("detached element should report no bounds")
		}
	})

	t.Run("ScrollContainerOf", func(t *testing.T) {
		root := NewElement()
		scroller := NewElement().SetParent(root).MarkScrollContainer()
		mid := NewElement().SetParent(scroller)
		leaf := NewElement().SetParent(mid)

		if got := ScrollContainerOf(leaf); got != scroller {
			t.Errorf("expected nearest scroller, got %v", got)
		}
		if got := ScrollContainerOf(root); got != nil {
			t.Errorf("expected nil for tree without scroller, got %v", got)
		}
	})

	t.Run("ScrollContainerOfSkipsDetached", func(t *testing.T) {
		outer := NewElement().MarkScrollContainer()
		inner := NewElement().SetParent(outer).MarkScrollContainer()
		leaf := NewElement().SetParent(inner)

		inner.Detach()
		// Detach severs the parent link, so discovery from the leaf
		// stops rather than finding the outer scroller through a dead
		// node.
		if got := ScrollContainerOf(leaf); got != nil {
			t.Errorf("expected nil through detached ancestor, got %v", got)
		}
	})
}

func TestLatest(t *testing.T) {
	t.Run("SetGet", func(t *testing.T) {
		l := NewLatest(10)
		if l.Get() != 10 {
			t.Errorf("expected 10, got %d", l.Get())
		}
		l.Set(20)
		if l.Get() != 20 {
			t.Errorf("expected 20, got %d", l.Get())
		}
	})

	t.Run("SwapWithoutRestart", func(t *testing.T) {
		// A long-lived callback reads the cell, not a captured value.
		cell := NewLatest(func() int { return 1 })
		read := func() int { return cell.Get()() }

		if read() != 1 {
			t.Fatalf("expected 1, got %d", read())
		}
		cell.Set(func() int { return 2 })
		if read() != 2 {
			t.Errorf("expected swapped accessor, got %d", read())
		}
	})

	t.Run("NilFunc", func(t *testing.T) {
		cell := NewLatest[func() *Element](nil)
		if cell.Get() != nil {
			t.Error("expected nil accessor")
		}
	})
}
