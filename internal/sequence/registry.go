package sequence

import (
	"sort"

	"github.com/ja-he/makeymakey/internal/input"
)

// Sequence is a key sequence watched for completion.
type Sequence struct {
	Keys []input.KeyID

	completed  bool
	generation uint64
	clear      Timer
}

// Completed returns whether the sequence was matched within the last clear
// window.
func (s *Sequence) Completed() bool { return s.completed }

// Registry holds the watched sequences by their canonical string.
// It is not safe for concurrent use; the Detector owning it serializes access.
type Registry struct {
	sequences map[string]*Sequence
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sequences: make(map[string]*Sequence)}
}

// Register adds the sequence under the given canonical key, unless the key
// is already registered, in which case the existing sequence is returned
// untouched (whatever keys are passed).
func (r *Registry) Register(canonical string, keys []input.KeyID) *Sequence {
	if s, ok := r.sequences[canonical]; ok {
		return s
	}
	s := &Sequence{Keys: append([]input.KeyID(nil), keys...)}
	r.sequences[canonical] = s
	return s
}

// Get returns the sequence for the canonical key, or nil.
func (r *Registry) Get(canonical string) *Sequence {
	return r.sequences[canonical]
}

// Len returns the number of registered sequences.
func (r *Registry) Len() int { return len(r.sequences) }

// Canonicals returns the registered canonical keys, sorted.
func (r *Registry) Canonicals() []string {
	result := make([]string, 0, len(r.sequences))
	for k := range r.sequences {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}

func (r *Registry) each(f func(canonical string, s *Sequence)) {
	for k, s := range r.sequences {
		f(k, s)
	}
}
