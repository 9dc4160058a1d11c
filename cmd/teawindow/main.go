package main

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/tether"
)

// The windowed list and auto-height engine hosted inside a bubbletea
// program instead of tether's own App loop. Bubbletea owns the
// terminal; a tick message drives the frame scheduler and the view
// renders the list buffer as plain text.

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	frames    *tether.Frames
	list      *tether.WindowList
	engine    *tether.AutoHeight
	container *tether.Element
	resize    chan tether.Size

	width  int
	height int
}

func newModel() *model {
	frames := tether.NewFrames()

	lines := []string{
		"short entry",
		"an entry long enough that it wraps onto several rows once the viewport narrows, which is exactly what the measurement pipeline is for",
		"another short one",
		"the running average kicks in for rows that have not been measured yet, so the scrollbar stays roughly honest while probes catch up",
		"tail entry",
	}
	items := make([]tether.Item, 0, len(lines)*8)
	for i := 0; i < 8; i++ {
		for _, l := range lines {
			items = append(items, tether.AutoItem(tether.Text(l)))
		}
	}

	container := tether.NewElement().MarkScrollContainer()

	var engine *tether.AutoHeight
	list := tether.NewWindowList(items, func(i int) int { return engine.ItemSize(i) }).
		Overscan(2).
		Border(tether.BorderSingle)
	engine = tether.NewAutoHeight(frames, list).
		UseAverageEstimation(true)
	engine.SetItems(items)
	engine.Start(func() *tether.Element { return container })

	m := &model{
		frames:    frames,
		list:      list,
		engine:    engine,
		container: container,
		resize:    make(chan tether.Size, 1),
	}
	engine.WatchResize(m.resize)
	return m
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.frames.Step()
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.container.SetBounds(tether.Rect{
			Top: 2, Left: 1,
			Width: m.width - 2, Height: m.height - 4,
		})
		select {
		case m.resize <- tether.Size{Width: msg.Width, Height: msg.Height}:
		default:
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.engine.Close()
			return m, tea.Quit
		case "j", "down":
			m.list.ScrollBy(1)
		case "k", "up":
			m.list.ScrollBy(-1)
		case "g":
			m.list.ScrollTo(0)
		case "G":
			m.list.ScrollTo(m.list.TotalHeight())
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "measuring..."
	}

	listH := m.height - 3
	buf := tether.NewBuffer(m.width, listH)
	m.list.SetConstraints(m.width, listH)
	m.list.Render(buf, 0, 0)

	status := fmt.Sprintf("offset %d/%d · measured %d · avg %d",
		m.list.ScrollOffset(), m.list.TotalHeight(),
		m.engine.Measured(), m.engine.Average())

	return titleStyle.Render("windowed list") + "\n" +
		buf.String() + "\n" +
		statusStyle.Render(status)
}

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
