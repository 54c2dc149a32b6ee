package sequence

import "github.com/ja-he/makeymakey/internal/input"

// DefaultBufferLength is the default number of key presses remembered.
const DefaultBufferLength = 100

// Buffer is a bounded history of recently pressed keys, oldest first.
// It is not safe for concurrent use; the Detector owning it serializes access.
type Buffer struct {
	limit int
	keys  []input.KeyID
}

// NewBuffer returns an empty buffer remembering at most limit keys.
// A non-positive limit yields DefaultBufferLength.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultBufferLength
	}
	return &Buffer{
		limit: limit,
		keys:  make([]input.KeyID, 0, limit+1),
	}
}

// Push appends a key, evicting the single oldest key if over the limit.
func (b *Buffer) Push(id input.KeyID) {
	b.keys = append(b.keys, id)
	if len(b.keys) > b.limit {
		n := copy(b.keys, b.keys[1:])
		b.keys = b.keys[:n]
	}
}

// Tail returns the last n keys in press order, or nil if fewer than n keys
// are buffered. The result aliases the buffer and must not be retained.
func (b *Buffer) Tail(n int) []input.KeyID {
	if n > len(b.keys) || n < 0 {
		return nil
	}
	return b.keys[len(b.keys)-n:]
}

// Len returns the number of buffered keys.
func (b *Buffer) Len() int { return len(b.keys) }

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.keys = b.keys[:0]
}

// Snapshot returns a copy of the buffered keys.
func (b *Buffer) Snapshot() []input.KeyID {
	return append([]input.KeyID(nil), b.keys...)
}
