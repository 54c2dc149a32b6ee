package host

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Keyboard tracks which keys are held, by the runtime's key names.
//
// Terminals report presses (and auto-repeat) but no releases, so a key is
// also considered released once hold has passed since its last press.
// A non-positive hold disables that, and keys stay down until released.
type Keyboard struct {
	mtx  sync.Mutex
	down map[string]time.Time
	hold time.Duration
	now  func() time.Time
}

// NewKeyboard returns a keyboard with no keys down.
func NewKeyboard(hold time.Duration, now func() time.Time) *Keyboard {
	if now == nil {
		now = time.Now
	}
	return &Keyboard{
		down: make(map[string]time.Time),
		hold: hold,
		now:  now,
	}
}

func keyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Press marks the key as down.
func (k *Keyboard) Press(name string) {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	k.down[keyName(name)] = k.now()
}

// Release marks the key as up.
func (k *Keyboard) Release(name string) {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	delete(k.down, keyName(name))
}

// ReleaseAll marks all keys as up.
func (k *Keyboard) ReleaseAll() {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	k.down = make(map[string]time.Time)
}

// IsDown returns whether the named key is currently held. Unknown names are
// never down.
func (k *Keyboard) IsDown(name string) bool {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	return k.isDown(keyName(name))
}

func (k *Keyboard) isDown(name string) bool {
	pressed, ok := k.down[name]
	if !ok {
		return false
	}
	return k.hold <= 0 || k.now().Sub(pressed) < k.hold
}

// Down returns the names of all held keys, sorted.
func (k *Keyboard) Down() []string {
	k.mtx.Lock()
	defer k.mtx.Unlock()
	result := make([]string, 0, len(k.down))
	for name := range k.down {
		if k.isDown(name) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}
