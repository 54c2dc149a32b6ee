// Package makeymakey is the Makey Makey extension: hat blocks that fire while
// a key is held, and when keys are pressed in a given order.
package makeymakey

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/makeymakey/internal/host"
	"github.com/ja-he/makeymakey/internal/input"
	"github.com/ja-he/makeymakey/internal/sequence"
)

// Host is the part of the runtime the extension depends on.
type Host interface {
	On(event host.Event, handler func(arg string))
	KeyIsDown(name string) bool
	CurrentStepTime() time.Duration
}

// Options configure the extension. Zero values select defaults.
type Options struct {
	Keys             *input.KeyTable
	BufferLength     int
	SequenceTimeout  time.Duration
	DefaultSequences []string
	Clock            sequence.Clock
	Logger           *zerolog.Logger
}

// Extension is an instance of the extension, bound to one runtime session.
type Extension struct {
	host      Host
	keys      *input.KeyTable
	toggle    *sequence.FrameToggle
	detector  *sequence.Detector
	sequences []string

	log zerolog.Logger
}

// New creates the extension and subscribes it to the host's key press and
// stop events. The host's step time is read once, here.
func New(h Host, opts Options) *Extension {
	e := &Extension{
		host:      h,
		keys:      opts.Keys,
		sequences: opts.DefaultSequences,
		log:       zerolog.Nop(),
	}
	if e.keys == nil {
		e.keys = input.DefaultKeyTable()
	}
	if len(e.sequences) == 0 {
		e.sequences = DefaultSequences()
	}
	if opts.Logger != nil {
		e.log = opts.Logger.With().Str("component", ExtensionID).Logger()
	}

	e.toggle = sequence.NewFrameToggle(h.CurrentStepTime())
	e.detector = sequence.NewDetector(sequence.Options{
		BufferLength: opts.BufferLength,
		ClearAfter:   opts.SequenceTimeout,
		Clock:        opts.Clock,
		Keys:         e.keys,
		Logger:       opts.Logger,
	})

	h.On(host.EventKeyPressed, e.keyPressed)
	h.On(host.EventProjectStopAll, func(string) { e.detector.Reset() })

	e.log.Debug().Dur("toggle-period", e.toggle.Period()).Msg("extension created")
	return e
}

func (e *Extension) keyPressed(name string) {
	for _, canonical := range e.detector.KeyPressed(name) {
		e.log.Info().Str("sequence", canonical).Msg("keys pressed in order")
	}
}

// Run drives the frame toggle until ctx is done.
func (e *Extension) Run(ctx context.Context) error {
	return e.toggle.Run(ctx)
}

// Toggle returns the extension's frame toggle.
func (e *Extension) Toggle() *sequence.FrameToggle { return e.toggle }

// Detector returns the extension's sequence detector.
func (e *Extension) Detector() *sequence.Detector { return e.detector }

// WhenMakeyKeyPressed reports whether the key (a KeyID or a literal key) is
// held, pulsed by the frame toggle so a hat on it fires repeatedly.
func (e *Extension) WhenMakeyKeyPressed(key string) bool {
	return e.host.KeyIsDown(e.keys.HostName(key)) && e.toggle.Value()
}

// WhenCodePressed reports whether the space separated key sequence was just
// pressed in order.
func (e *Extension) WhenCodePressed(seq string) bool {
	return e.detector.Completed(seq)
}

// Predicate returns the hat predicate for the block with the given opcode
// and argument.
func (e *Extension) Predicate(opcode, arg string) (func() bool, error) {
	switch opcode {
	case OpcodeWhenMakeyKeyPressed:
		return func() bool { return e.WhenMakeyKeyPressed(arg) }, nil
	case OpcodeWhenCodePressed:
		if len(input.ParseKeyIDs(arg)) < sequence.MinSequenceLength {
			e.log.Warn().Str("sequence", arg).Msg("sequence has fewer than two keys and never fires")
		}
		return func() bool { return e.WhenCodePressed(arg) }, nil
	default:
		return nil, fmt.Errorf("unknown %s opcode '%s'", ExtensionID, opcode)
	}
}
