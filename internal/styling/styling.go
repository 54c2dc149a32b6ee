// Package styling turns configured colors into styles for the terminal.
package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/makeymakey/internal/config"
)

// DrawStyling is style information used for rendering text.
type DrawStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s DrawStyling) AsTcell() tcell.Style {
	fg := colorfulColorToTcellColor(s.fg)
	bg := colorfulColorToTcellColor(s.bg)

	return tcell.StyleDefault.Foreground(fg).Background(bg).
		Bold(s.bold).Italic(s.italic).Underline(s.underlined)
}

// DarkenedBG returns a copy of this styling with the background color
// darkened by the requested percentage.
func (s DrawStyling) DarkenedBG(percentage int) DrawStyling {
	s.bg = darkenColorfulColor(s.bg, percentage)
	return s
}

// StyleFromHex constructs a style from hexadecimal colors such as '#ff0000'
// or '#fff'.
func StyleFromHex(fg, bg string) (DrawStyling, error) {
	fgColor, err := colorful.Hex(fg)
	if err != nil {
		return DrawStyling{}, fmt.Errorf("invalid foreground color '%s' (%s)", fg, err.Error())
	}
	bgColor, err := colorful.Hex(bg)
	if err != nil {
		return DrawStyling{}, fmt.Errorf("invalid background color '%s' (%s)", bg, err.Error())
	}
	return DrawStyling{fg: fgColor, bg: bgColor}, nil
}

// StyleFromConfig constructs a style from a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	s, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return DrawStyling{}, err
	}
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s, nil
}
