// Package tui renders the state of a running session to the terminal.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ja-he/makeymakey/internal/styling"
)

// HatState is a hat as displayed.
type HatState struct {
	Label    string
	Fires    int
	Recently bool
}

// ViewModel is everything the view shows.
type ViewModel struct {
	Title    string
	Hats     []HatState
	Buffered []string
	KeysDown []string
	Log      []string
	Help     map[string]string
}

// View draws a ViewModel through a ScreenHandler.
type View struct {
	screen     *ScreenHandler
	stylesheet styling.Stylesheet
}

// NewView returns a view drawing to the given screen.
func NewView(screen *ScreenHandler, stylesheet styling.Stylesheet) *View {
	return &View{screen: screen, stylesheet: stylesheet}
}

// Draw renders the model and shows it.
func (v *View) Draw(m ViewModel) {
	x, y, w, h := v.screen.Dimensions()
	v.screen.Clear()
	v.screen.DrawBox(x, y, w, h, v.stylesheet.Normal)

	v.screen.DrawBox(x, y, w, 1, v.stylesheet.Status)
	v.screen.DrawText(x+1, y, w-2, v.stylesheet.Status, m.Title)

	row := y + 2
	for _, hat := range m.Hats {
		if row >= h-3 {
			break
		}
		style := v.stylesheet.Normal
		if hat.Recently {
			style = v.stylesheet.Fired
		}
		v.screen.DrawText(x+1, row, w-2, style, fmt.Sprintf("%4d  %s", hat.Fires, hat.Label))
		row++
	}

	row++
	v.screen.DrawText(x+1, row, w-2, v.stylesheet.Normal.DarkenedBG(20), "pressed: "+lastN(m.Buffered, 12))
	row++
	v.screen.DrawText(x+1, row, w-2, v.stylesheet.Normal, "held:    "+strings.Join(m.KeysDown, ", "))
	row += 2

	for _, line := range m.Log {
		if row >= h-1 {
			break
		}
		v.screen.DrawText(x+1, row, w-2, v.stylesheet.Log, line)
		row++
	}

	v.screen.DrawBox(x, h-1, w, 1, v.stylesheet.Status)
	v.screen.DrawText(x+1, h-1, w-2, v.stylesheet.Status, helpLine(m.Help))

	v.screen.Show()
}

func lastN(items []string, n int) string {
	if len(items) > n {
		items = items[len(items)-n:]
	}
	return strings.Join(items, " ")
}

func helpLine(help map[string]string) string {
	keys := make([]string, 0, len(help))
	for k := range help {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + help[k]
	}
	return strings.Join(parts, "  |  ")
}
