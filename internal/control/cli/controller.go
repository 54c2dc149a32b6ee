package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ja-he/makeymakey/internal/control/action"
	"github.com/ja-he/makeymakey/internal/host"
	"github.com/ja-he/makeymakey/internal/input"
	"github.com/ja-he/makeymakey/internal/potatolog"
	"github.com/ja-he/makeymakey/internal/styling"
	"github.com/ja-he/makeymakey/internal/tui"
)

// highlightFor is how long a fired hat stays highlighted.
const highlightFor = 300 * time.Millisecond

// Controller runs an interactive session: it feeds terminal key events into
// the runtime, steps the runtime, and renders the session state.
type Controller struct {
	session  *Session
	screen   *tui.ScreenHandler
	view     *tui.View
	logs     potatolog.LogReader
	controls *input.Tree

	mtx       sync.Mutex
	lastFired map[*host.Hat]time.Time
	quit      context.CancelFunc
	finished  bool
	pressed   []string
}

// NewController returns a controller for the session on the given screen.
func NewController(session *Session, screen *tui.ScreenHandler, stylesheet styling.Stylesheet, logs potatolog.LogReader) (*Controller, error) {
	c := &Controller{
		session:   session,
		screen:    screen,
		view:      tui.NewView(screen, stylesheet),
		logs:      logs,
		lastFired: make(map[*host.Hat]time.Time),
	}

	controls, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"<esc>": action.NewSimple(func() string { return "stop all" }, c.stopAll),
		"<c-c>": action.NewSimple(func() string { return "quit" }, c.Quit),
		"<c-l>": action.NewSimple(func() string { return "redraw" }, c.redraw),
	})
	if err != nil {
		return nil, err
	}
	c.controls = controls
	return c, nil
}

// Quit ends Run.
func (c *Controller) Quit() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.quit != nil {
		c.quit()
	}
}

// Pressed returns the host key names pressed so far, with stop-all recorded as
// "stop", in a form that the replay command accepts.
func (c *Controller) Pressed() []string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]string(nil), c.pressed...)
}

func (c *Controller) record(name string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.pressed = append(c.pressed, name)
}

func (c *Controller) stopAll() {
	c.record(stopToken)
	c.session.Runtime.StopAll()
}

func (c *Controller) redraw() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.screen.NeedsSync()
}

// Run runs the session until Quit is called or ctx is done. The screen is
// finalized on return.
func (c *Controller) Run(ctx context.Context) error {
	log.Info().Str("session", c.session.ID).Msg("makeymakey started")

	ctx, cancel := context.WithCancel(ctx)
	c.mtx.Lock()
	c.quit = cancel
	c.mtx.Unlock()
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.session.Extension.Run(ctx) })
	g.Go(func() error { return c.session.Runtime.Run(ctx, c.stepped) })

	// finalizing the screen makes PollEvent return nil, ending the event loop
	g.Go(func() error {
		<-ctx.Done()
		c.mtx.Lock()
		defer c.mtx.Unlock()
		c.finished = true
		c.screen.Fini()
		return nil
	})
	g.Go(func() error {
		events := c.screen.GetEventPollable()
		for {
			ev := events.PollEvent()
			if ev == nil {
				return nil
			}
			c.handleEvent(ev)
		}
	})

	err := g.Wait()
	log.Info().Str("session", c.session.ID).Msg("makeymakey stopped")
	return err
}

func (c *Controller) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key := input.KeyFromTcellEvent(e)
		if c.controls.ProcessInput(key) {
			return
		}
		name, ok := input.HostKeyName(key)
		if !ok {
			log.Debug().Str("key", key.ToDebugString()).Msg("ignoring key without name")
			return
		}
		c.record(name)
		c.session.Runtime.PressKey(name)
	case *tcell.EventResize:
		c.redraw()
	}
}

func (c *Controller) stepped(fired []*host.Hat) {
	now := time.Now()
	c.mtx.Lock()
	defer c.mtx.Unlock()
	for _, h := range fired {
		c.lastFired[h] = now
	}
	if c.finished {
		return
	}
	c.view.Draw(c.viewModel(now))
}

// viewModel snapshots the session for the view. Must be called with c.mtx
// held.
func (c *Controller) viewModel(now time.Time) tui.ViewModel {
	m := tui.ViewModel{
		Title:    fmt.Sprintf("makeymakey  session %s  step %s", c.session.ID, c.session.Runtime.CurrentStepTime()),
		KeysDown: c.session.Runtime.KeysDown(),
		Help:     c.controls.GetHelp(),
	}
	for _, sc := range c.session.Scripts {
		fired, ok := c.lastFired[sc.Hat]
		m.Hats = append(m.Hats, tui.HatState{
			Label:    sc.Label,
			Fires:    sc.Action.Count(),
			Recently: ok && now.Sub(fired) < highlightFor,
		})
	}
	for _, id := range c.session.Extension.Detector().Buffered() {
		m.Buffered = append(m.Buffered, string(id))
	}
	for _, entry := range c.logs.Tail(8) {
		m.Log = append(m.Log, potatolog.Format(entry))
	}
	return m
}
