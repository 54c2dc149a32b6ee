package styling_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/makeymakey/internal/config"
	"github.com/ja-he/makeymakey/internal/styling"
)

func TestStyleFromConfig(t *testing.T) {
	s, err := styling.StyleFromConfig(config.Styling{Fg: "#ff0000", Bg: "#000", Style: &config.FontStyle{Bold: true}})
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	fg, bg, attrs := s.AsTcell().Decompose()
	if fg != tcell.NewHexColor(0xff0000) {
		t.Error("unexpected foreground:", fg)
	}
	if bg != tcell.NewHexColor(0x000000) {
		t.Error("unexpected background:", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("expected bold")
	}

	if _, err := styling.StyleFromConfig(config.Styling{Fg: "red", Bg: "#000"}); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestNewStylesheetFromConfig(t *testing.T) {
	if _, err := styling.NewStylesheetFromConfig(config.Default().Stylesheet); err != nil {
		t.Error("default stylesheet invalid:", err.Error())
	}
	broken := config.Default().Stylesheet
	broken.Log.Bg = "#zzz"
	if _, err := styling.NewStylesheetFromConfig(broken); err == nil {
		t.Error("expected error for broken stylesheet")
	}
}
