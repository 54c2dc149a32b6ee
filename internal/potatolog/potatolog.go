// Package potatolog is an in-memory sink for zerolog JSON output, so the
// interactive view can show recent log lines.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
// It keeps at most limit entries, dropping the oldest.
type MemoryLogReaderWriter struct {
	mtx   sync.Mutex
	log   []LogEntry
	limit int
}

// NewMemoryLogReaderWriter returns an empty log keeping at most limit entries
// (unbounded if limit is not positive).
func NewMemoryLogReaderWriter(limit int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{limit: limit}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.limit > 0 && len(w.log) > w.limit {
		w.log = append([]LogEntry(nil), w.log[len(w.log)-w.limit:]...)
	}
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return append([]LogEntry(nil), w.log...)
}

// Tail returns the last n entries (or fewer, if there are not as many).
func (w *MemoryLogReaderWriter) Tail(n int) []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	if n > len(w.log) {
		n = len(w.log)
	}
	return append([]LogEntry(nil), w.log[len(w.log)-n:]...)
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Tail(n int) []LogEntry
}

// Format renders an entry as a single line: level, message, then the other
// fields sorted by name. Timestamp and caller are omitted.
func Format(entry LogEntry) string {
	var b strings.Builder
	if level, ok := entry["level"]; ok {
		fmt.Fprintf(&b, "%-5s ", level)
	}
	if msg, ok := entry["message"]; ok {
		fmt.Fprint(&b, msg)
	}

	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case "level", "message", "time", "caller":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry[k])
	}
	return b.String()
}
