package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key input as delivered by the terminal.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a representation of the key suitable for logs.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// HostKeyName returns the name under which the runtime's keyboard knows the
// given key, e.g. "left arrow", "space" or "a".
// Returns false for keys the runtime has no name for (e.g. control chords).
func HostKeyName(k Key) (string, bool) {
	switch k.Key {
	case tcell.KeyRune:
		if k.Ch == ' ' {
			return "space", true
		}
		return strings.ToLower(string(k.Ch)), true
	case tcell.KeyLeft:
		return "left arrow", true
	case tcell.KeyRight:
		return "right arrow", true
	case tcell.KeyUp:
		return "up arrow", true
	case tcell.KeyDown:
		return "down arrow", true
	case tcell.KeyEnter:
		return "enter", true
	default:
		return "", false
	}
}
