package tether

import (
	"os"
	"sync"
	"time"

	"github.com/kungfusheep/riffkey"
)

// DefaultFrameInterval is the frame loop tick rate.
const DefaultFrameInterval = time.Second / 60

// App is a terminal application with integrated input handling via
// riffkey and a frame loop driving scheduled tasks. The render
// callback draws the whole frame into the screen's back buffer; the
// diff-based flush keeps per-frame output small.
type App struct {
	screen *Screen
	frames *Frames

	// riffkey integration
	router *riffkey.Router
	input  *riffkey.Input
	reader *riffkey.Reader

	render   func(*Buffer)
	cursorFn func() (Cursor, bool)

	running  bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewApp creates a new terminal application.
func NewApp() (*App, error) {
	screen, err := NewScreen(nil)
	if err != nil {
		return nil, err
	}

	router := riffkey.NewRouter()
	input := riffkey.NewInput(router)
	reader := riffkey.NewReader(os.Stdin)

	return &App{
		screen: screen,
		frames: NewFrames(),
		router: router,
		input:  input,
		reader: reader,
		stopCh: make(chan struct{}),
	}, nil
}

// Screen returns the screen.
func (a *App) Screen() *Screen {
	return a.screen
}

// Frames returns the frame scheduler. Tasks registered on it run on
// the main loop, once per tick.
func (a *App) Frames() *Frames {
	return a.frames
}

// Router returns the riffkey router for advanced configuration.
func (a *App) Router() *riffkey.Router {
	return a.router
}

// Input returns the riffkey input for modal handling (push/pop).
func (a *App) Input() *riffkey.Input {
	return a.input
}

// SetRender sets the per-frame render callback.
func (a *App) SetRender(fn func(*Buffer)) *App {
	a.render = fn
	return a
}

// SetCursor sets a callback reporting where the hardware cursor should
// sit after each frame, or ok=false to leave it hidden.
func (a *App) SetCursor(fn func() (Cursor, bool)) *App {
	a.cursorFn = fn
	return a
}

// Handle registers a key binding with a vim-style pattern.
// Examples: "j", "gg", "<C-c>", "<C-w>j", "<Up>"
func (a *App) Handle(pattern string, handler func(riffkey.Match)) *App {
	a.router.Handle(pattern, handler)
	return a
}

// Push pushes a new router onto the input stack (for modal input).
func (a *App) Push(r *riffkey.Router) {
	a.input.Push(r)
}

// Pop pops the current router from the input stack.
func (a *App) Pop() {
	a.input.Pop()
}

// Size returns the current screen size.
func (a *App) Size() Size {
	return a.screen.Size()
}

// Run starts the application. Blocks until Stop is called or input
// fails. Key dispatch happens on the input goroutine; handlers that
// touch frame-loop state should hop over via Frames().Post.
func (a *App) Run() error {
	a.running = true

	if err := a.screen.EnterRawMode(); err != nil {
		return err
	}
	defer a.screen.ExitRawMode()

	// Input loop; afterDispatch fires after every key.
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.input.Run(a.reader, func(handled bool) {})
	}()

	ticker := time.NewTicker(DefaultFrameInterval)
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case <-ticker.C:
			a.frame()
		case <-a.stopCh:
			return nil
		case err := <-errCh:
			// Stop() closes stdin, which surfaces here as a read
			// error; not a failure.
			if !a.running {
				return nil
			}
			return err
		}
	}
}

// frame runs one tick: scheduled tasks, then a full redraw.
func (a *App) frame() {
	a.frames.Step()
	if a.render == nil {
		return
	}
	a.screen.Clear()
	a.render(a.screen.Buffer())
	a.screen.Flush()
	if a.cursorFn != nil {
		if c, ok := a.cursorFn(); ok {
			a.screen.BufferCursor(c)
		} else {
			a.screen.BufferCursor(Cursor{Visible: false})
		}
	}
	a.screen.FlushBuffer()
}

// Stop signals the application to stop.
func (a *App) Stop() {
	a.running = false
	a.stopOnce.Do(func() { close(a.stopCh) })
	a.frames.Stop()
	// Close stdin to unblock the reader
	os.Stdin.Close()
}
