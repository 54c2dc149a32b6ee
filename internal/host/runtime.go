// Package host provides the block runtime extensions are registered with: it
// owns the keyboard state, dispatches runtime events, and steps hat blocks.
package host

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/makeymakey/internal/control/action"
)

// Event is the name of a runtime event extensions can subscribe to.
type Event string

const (
	// EventKeyPressed is emitted once per key press, with the key's name.
	EventKeyPressed Event = "KEY_PRESSED"
	// EventProjectStopAll is emitted when the project is stopped.
	EventProjectStopAll Event = "PROJECT_STOP_ALL"
)

// DefaultStepTime is the duration of one simulation step (30 steps/second).
const DefaultStepTime = time.Second / 30

// Options configure a Runtime. Zero values select defaults.
type Options struct {
	StepTime time.Duration
	KeyHold  time.Duration
	Now      func() time.Time
	Logger   *zerolog.Logger
}

// Hat is a hat block instance: its predicate is evaluated once per step and
// its action runs whenever the predicate turns true.
type Hat struct {
	Opcode    string
	Arg       string
	Predicate func() bool
	Action    action.Action

	last bool
}

// Runtime is the host for extensions.
type Runtime struct {
	mtx      sync.Mutex
	handlers map[Event][]func(arg string)
	hats     []*Hat

	stepMtx  sync.Mutex
	stepTime time.Duration
	keyboard *Keyboard

	log zerolog.Logger
}

// New returns a runtime without subscribers or hats.
func New(opts Options) *Runtime {
	r := &Runtime{
		handlers: make(map[Event][]func(string)),
		stepTime: opts.StepTime,
		keyboard: NewKeyboard(opts.KeyHold, opts.Now),
		log:      zerolog.Nop(),
	}
	if r.stepTime <= 0 {
		r.stepTime = DefaultStepTime
	}
	if opts.Logger != nil {
		r.log = opts.Logger.With().Str("component", "runtime").Logger()
	}
	return r
}

// On subscribes the handler to the event.
func (r *Runtime) On(event Event, handler func(arg string)) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.handlers[event] = append(r.handlers[event], handler)
}

// Emit calls every handler subscribed to the event, in subscription order.
func (r *Runtime) Emit(event Event, arg string) {
	r.mtx.Lock()
	handlers := append([]func(string){}, r.handlers[event]...)
	r.mtx.Unlock()

	r.log.Trace().Str("event", string(event)).Str("arg", arg).Int("handlers", len(handlers)).Msg("emitting")
	for _, h := range handlers {
		h(arg)
	}
}

// PressKey marks the named key as down and emits EventKeyPressed.
func (r *Runtime) PressKey(name string) {
	r.keyboard.Press(name)
	r.Emit(EventKeyPressed, name)
}

// ReleaseKey marks the named key as up.
func (r *Runtime) ReleaseKey(name string) {
	r.keyboard.Release(name)
}

// StopAll stops the project: it emits EventProjectStopAll and releases all
// keys.
func (r *Runtime) StopAll() {
	r.log.Info().Msg("stopping all")
	r.Emit(EventProjectStopAll, "")
	r.keyboard.ReleaseAll()
}

// KeyIsDown returns whether the named key is held.
func (r *Runtime) KeyIsDown(name string) bool {
	return r.keyboard.IsDown(name)
}

// KeysDown returns the names of all held keys.
func (r *Runtime) KeysDown() []string {
	return r.keyboard.Down()
}

// CurrentStepTime returns the duration of one simulation step.
func (r *Runtime) CurrentStepTime() time.Duration {
	return r.stepTime
}

// AddHat adds a hat block instance to be evaluated on every step.
func (r *Runtime) AddHat(h *Hat) error {
	if h.Predicate == nil {
		return fmt.Errorf("hat '%s' (%s) has no predicate", h.Opcode, h.Arg)
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.hats = append(r.hats, h)
	return nil
}

// Hats returns the registered hat block instances.
func (r *Runtime) Hats() []*Hat {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]*Hat(nil), r.hats...)
}

// Step evaluates every hat once and runs the action of each hat whose
// predicate went from false to true. Returns the hats that fired.
func (r *Runtime) Step() []*Hat {
	r.stepMtx.Lock()
	defer r.stepMtx.Unlock()

	var fired []*Hat
	for _, h := range r.Hats() {
		now := h.Predicate()
		if now && !h.last {
			fired = append(fired, h)
		}
		h.last = now
	}
	for _, h := range fired {
		r.log.Debug().Str("opcode", h.Opcode).Str("arg", h.Arg).Msg("hat fired")
		if h.Action != nil {
			h.Action.Do()
		}
	}
	return fired
}

// Run steps the runtime every step time until ctx is done, passing the fired
// hats of each step to onStep (if non-nil).
func (r *Runtime) Run(ctx context.Context, onStep func(fired []*Hat)) error {
	ticker := time.NewTicker(r.stepTime)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fired := r.Step()
			if onStep != nil {
				onStep(fired)
			}
		}
	}
}
