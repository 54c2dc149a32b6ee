// Package storage reads and writes recorded key presses.
package storage

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// KeyFileHandler reads and writes a key file: one host key name per line,
// blank lines and lines starting with '#' are ignored.
type KeyFileHandler struct {
	mutex    sync.Mutex
	filename string
}

// NewKeyFileHandler returns a handler for the given file.
func NewKeyFileHandler(filename string) *KeyFileHandler {
	f := KeyFileHandler{filename: filename}
	return &f
}

// Filename returns the name of the handled file.
func (h *KeyFileHandler) Filename() string {
	return h.filename
}

// Write replaces the file's contents with the given keys.
func (h *KeyFileHandler) Write(keys []string) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	f, err := os.OpenFile(h.filename, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrapf(err, "error opening file '%s'", h.filename)
	}
	defer f.Close()

	writer := bufio.NewWriter(f)
	for _, key := range keys {
		_, _ = writer.WriteString(key + "\n")
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "error writing file '%s'", h.filename)
	}
	return nil
}

// Read returns the keys stored in the file.
func (h *KeyFileHandler) Read() ([]string, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	f, err := os.Open(h.filename)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening file '%s'", h.filename)
	}
	defer f.Close()

	keys, err := ReadKeys(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading file '%s'", h.filename)
	}
	return keys, nil
}

// ReadKeys reads key names, one per line, from r.
func ReadKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			keys = append(keys, line)
		}
	}
	return keys, scanner.Err()
}
