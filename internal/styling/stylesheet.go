package styling

import (
	"fmt"

	"github.com/ja-he/makeymakey/internal/config"
)

// Stylesheet represents all styles used by the interactive view.
type Stylesheet struct {
	Normal DrawStyling
	Fired  DrawStyling
	Status DrawStyling
	Log    DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, s := range []struct {
		name   string
		target *DrawStyling
		from   config.Styling
	}{
		{"normal", &stylesheet.Normal, c.Normal},
		{"fired", &stylesheet.Fired, c.Fired},
		{"status", &stylesheet.Status, c.Status},
		{"log", &stylesheet.Log, c.Log},
	} {
		style, err := StyleFromConfig(s.from)
		if err != nil {
			return nil, fmt.Errorf("stylesheet '%s': %s", s.name, err.Error())
		}
		*s.target = style
	}

	return &stylesheet, nil
}
