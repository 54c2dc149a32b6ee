// Package sequence detects ordered key sequences in the stream of key presses
// and provides the frame toggle used to pulse level-triggered key hats.
package sequence

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/makeymakey/internal/input"
)

// DefaultClearAfter is how long a sequence stays completed after a match.
const DefaultClearAfter = 100 * time.Millisecond

// MinSequenceLength is the minimum number of keys of a watched sequence.
const MinSequenceLength = 2

// Options configure a Detector. Zero values select defaults.
type Options struct {
	BufferLength int
	ClearAfter   time.Duration
	Clock        Clock
	Keys         *input.KeyTable
	Logger       *zerolog.Logger
}

// Detector matches the tail of the key press buffer against every watched
// sequence after each key press.
//
// All methods are safe for concurrent use; key presses, queries and the
// deferred clears are serialized on one mutex.
type Detector struct {
	mtx sync.Mutex

	keys       *input.KeyTable
	buffer     *Buffer
	registry   *Registry
	clock      Clock
	clearAfter time.Duration

	log zerolog.Logger
}

// Watched describes a registered sequence and its current state.
type Watched struct {
	Canonical string
	Completed bool
}

// NewDetector returns a new detector with an empty buffer and no sequences.
func NewDetector(opts Options) *Detector {
	d := &Detector{
		keys:       opts.Keys,
		buffer:     NewBuffer(opts.BufferLength),
		registry:   NewRegistry(),
		clock:      opts.Clock,
		clearAfter: opts.ClearAfter,
		log:        zerolog.Nop(),
	}
	if d.keys == nil {
		d.keys = input.DefaultKeyTable()
	}
	if d.clock == nil {
		d.clock = RealClock{}
	}
	if d.clearAfter <= 0 {
		d.clearAfter = DefaultClearAfter
	}
	if opts.Logger != nil {
		d.log = opts.Logger.With().Str("component", "sequence-detector").Logger()
	}
	return d
}

// KeyPressed records a key press given by the runtime's name for the key and
// returns the canonical keys of all sequences completed by it.
func (d *Detector) KeyPressed(hostName string) []string {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	id := d.keys.Normalize(hostName)
	d.buffer.Push(id)

	var matched []string
	d.registry.each(func(canonical string, s *Sequence) {
		if !matchesTail(d.buffer, s.Keys) {
			return
		}
		d.complete(s)
		matched = append(matched, canonical)
	})
	sort.Strings(matched)

	d.log.Trace().Str("key", hostName).Str("id", string(id)).Int("buffered", d.buffer.Len()).Msg("key pressed")
	for _, canonical := range matched {
		d.log.Debug().Str("sequence", canonical).Msg("sequence completed")
	}
	return matched
}

// matchesTail returns whether the last len(keys) buffered presses equal keys,
// in order.
func matchesTail(b *Buffer, keys []input.KeyID) bool {
	tail := b.Tail(len(keys))
	if tail == nil {
		return false
	}
	for i := range keys {
		if tail[i] != keys[i] {
			return false
		}
	}
	return true
}

// complete marks s completed and replaces any pending clear with a new one.
// Must be called with d.mtx held.
func (d *Detector) complete(s *Sequence) {
	s.completed = true
	s.generation++
	if s.clear != nil {
		s.clear.Stop()
	}
	generation := s.generation
	s.clear = d.clock.AfterFunc(d.clearAfter, func() { d.expire(s, generation) })
}

// expire clears s unless it was completed again after the clear was armed.
func (d *Detector) expire(s *Sequence, generation uint64) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	if s.generation != generation {
		return
	}
	s.completed = false
	s.clear = nil
}

// Reset forgets all buffered key presses. Watched sequences and their
// completion state are kept.
func (d *Detector) Reset() {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.buffer.Reset()
	d.log.Debug().Msg("key press buffer cleared")
}

// Completed returns whether the sequence given as space separated key ids
// (case insensitive) was just completed. The sequence is watched from the
// first call on. Specifications of fewer than two keys are never watched and
// never completed.
func (d *Detector) Completed(spec string) bool {
	ids := input.ParseKeyIDs(spec)
	if len(ids) < MinSequenceLength {
		return false
	}
	canonical := input.JoinKeyIDs(ids)

	d.mtx.Lock()
	defer d.mtx.Unlock()
	s := d.register(canonical, ids)
	return s.completed
}

// Register watches keys under the given canonical key. If the canonical key
// is already watched this does nothing. Returns false if the sequence is too
// short to be watched.
func (d *Detector) Register(canonical string, keys []input.KeyID) bool {
	if len(keys) < MinSequenceLength {
		return false
	}
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.register(canonical, keys)
	return true
}

func (d *Detector) register(canonical string, keys []input.KeyID) *Sequence {
	if s := d.registry.Get(canonical); s != nil {
		return s
	}
	d.log.Debug().Str("sequence", canonical).Msg("watching new sequence")
	return d.registry.Register(canonical, keys)
}

// Buffered returns a copy of the buffered key presses, oldest first.
func (d *Detector) Buffered() []input.KeyID {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	return d.buffer.Snapshot()
}

// Watched returns all watched sequences, sorted by canonical key.
func (d *Detector) Watched() []Watched {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	result := make([]Watched, 0, d.registry.Len())
	for _, canonical := range d.registry.Canonicals() {
		result = append(result, Watched{
			Canonical: canonical,
			Completed: d.registry.Get(canonical).Completed(),
		})
	}
	return result
}
