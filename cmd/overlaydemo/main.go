package main

import (
	"fmt"
	"log"

	"github.com/kungfusheep/riffkey"
	"github.com/kungfusheep/tether"
)

// A scrollable list of notes where Enter opens an inline editor pinned
// to the selected row. The editor follows the row as the list scrolls
// and stays clamped inside the list viewport.
func main() {
	app, err := tether.NewApp()
	if err != nil {
		log.Fatal(err)
	}
	frames := app.Frames()

	notes := []string{
		"Pick up the dry cleaning before six.",
		"The deploy window moved to Thursday. Coordinate with the on-call rotation and make sure the rollback script has been exercised against staging at least once.",
		"Call the dentist.",
		"Draft the Q3 planning doc. Needs the capacity numbers from finance and last quarter's incident review before it can go out.",
		"Water the plants.",
		"Renew the TLS certificates for the internal dashboards.",
		"Read through the new storage proposal and leave comments. The interesting part is the compaction strategy, which trades write amplification for faster point reads.",
		"Book travel for the offsite.",
		"Fix the flaky integration test in the billing suite.",
		"Reply to the vendor about the contract renewal terms.",
	}

	items := make([]tether.Item, len(notes))
	buildItems := func() {
		for i, n := range notes {
			items[i] = tether.AutoItem(tether.Text(n))
		}
	}
	buildItems()

	container := tether.NewElement().MarkScrollContainer()
	anchor := tether.NewElement().SetParent(container)

	var engine *tether.AutoHeight
	list := tether.NewWindowList(items, func(i int) int { return engine.ItemSize(i) }).
		Overscan(2).
		Border(tether.BorderRounded)
	engine = tether.NewAutoHeight(frames, list).
		DefaultHeight(1).
		UseAverageEstimation(true)
	engine.SetItems(items)
	engine.Start(func() *tether.Element { return container })
	engine.WatchResize(app.Screen().ResizeChan())
	defer engine.Close()

	selected := 0
	listTop, listLeft := 2, 2

	editor := tether.NewOverlayEditor().
		Styled(tether.DefaultStyle().Background(tether.BrightBlack)).
		Border(tether.BorderSingle)

	status := "j/k move · Enter edit · q quit"

	var stopTracking tether.CancelFunc
	editor.OnBlur(func() {
		app.Pop()
		if stopTracking != nil {
			stopTracking()
			stopTracking = nil
		}
	})
	editor.OnChangeComplete(func(value string) {
		notes[selected] = value
		items[selected] = tether.AutoItem(tether.Text(value))
		list.SetItems(items)
		engine.SetItems(items)
		list.ResetAfterIndex(selected, true)
		status = fmt.Sprintf("saved note %d", selected+1)
	})
	editor.OnCancel(func() {
		status = "edit cancelled"
	})

	tracker := tether.NewTracker(frames, editor.SetRect).
		MinSize(20, 3).
		Container(func() *tether.Element { return container }).
		OnReady(func() {
			editor.SetValue(notes[selected])
			editor.Focus()
			app.Push(editor.Router())
		})

	app.Handle("j", func(riffkey.Match) {
		frames.Post(func() {
			if selected < len(items)-1 {
				selected++
				list.ScrollToItem(selected, tether.AlignAuto)
			}
		})
	})
	app.Handle("k", func(riffkey.Match) {
		frames.Post(func() {
			if selected > 0 {
				selected--
				list.ScrollToItem(selected, tether.AlignAuto)
			}
		})
	})
	app.Handle("<C-d>", func(riffkey.Match) { frames.Post(func() { list.ScrollBy(4) }) })
	app.Handle("<C-u>", func(riffkey.Match) { frames.Post(func() { list.ScrollBy(-4) }) })
	app.Handle("<Enter>", func(riffkey.Match) {
		frames.Post(func() {
			if stopTracking != nil {
				return // already editing
			}
			stopTracking = tracker.Start(func() *tether.Element { return anchor })
		})
	})
	app.Handle("q", func(riffkey.Match) { app.Stop() })
	app.Handle("<C-c>", func(riffkey.Match) { app.Stop() })

	app.SetRender(func(buf *tether.Buffer) {
		size := app.Size()
		listW := size.Width - listLeft*2
		listH := size.Height - listTop - 2

		buf.WriteString(listLeft, 0, "notes", tether.DefaultStyle().Bold())
		buf.WriteString(listLeft, size.Height-1, status, tether.DefaultStyle().Dim())

		list.SetConstraints(listW, listH)
		list.Render(buf, listLeft, listTop)

		// Publish this frame's geometry for the tracker.
		container.SetBounds(tether.Rect{
			Top: listTop + 1, Left: listLeft + 1,
			Width: listW - 2, Height: listH - 2,
		})
		anchor.SetBounds(tether.Rect{
			Top:    listTop + 1 + list.ItemOffset(selected) - list.ScrollOffset(),
			Left:   listLeft + 1,
			Width:  listW - 2,
			Height: list.ItemHeight(selected),
		})

		if editor.Focused() {
			editor.Render(buf)
		}
	})
	app.SetCursor(func() (tether.Cursor, bool) {
		if !editor.Focused() {
			return tether.Cursor{}, false
		}
		return editor.CursorState(), true
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
