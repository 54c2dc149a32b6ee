package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence specification string, e.g. "<c-c>" or "<esc>q".
type Keyspec string

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	special := false

	for pos, r := range specR {
		switch r {

		case '<':
			if special {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			special = true
			keys = append(keys, []rune{r})

		case '>':
			if !special {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			special = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if special {
				if !unicode.IsLetter(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if special {
		return nil, fmt.Errorf("unclosed special context at end of '%s'", spec)
	}

	result := make([]Key, 0, len(keys))
	for _, identifier := range keys {
		if identifier[0] != '<' {
			result = append(result, Key{Key: tcell.KeyRune, Ch: identifier[0]})
			continue
		}
		key, err := KeyIdentifierToKey(string(identifier[1 : len(identifier)-1]))
		if err != nil {
			return nil, fmt.Errorf("error mapping identifier '%s' to key: %s", string(identifier), err.Error())
		}
		result = append(result, key)
	}

	return result, nil
}

var specialKeys = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"c-c":   {Key: tcell.KeyCtrlC},
	"c-l":   {Key: tcell.KeyCtrlL},
	"c-r":   {Key: tcell.KeyCtrlR},
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier.
func ToConfigIdentifierString(k Key) (string, error) {
	for identifier, key := range specialKeys {
		if key == k {
			return "<" + identifier + ">", nil
		}
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch), nil
	}
	return "", fmt.Errorf("undescribable key %s", k.ToDebugString())
}
