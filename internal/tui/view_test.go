package tui_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/makeymakey/internal/config"
	"github.com/ja-he/makeymakey/internal/styling"
	"github.com/ja-he/makeymakey/internal/tui"
)

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for col := 0; col < w; col++ {
		cell := cells[row*w+col]
		if len(cell.Runes) > 0 {
			b.WriteRune(cell.Runes[0])
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestViewDraw(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	handler, err := tui.NewScreenHandler(sim)
	if err != nil {
		t.Fatal("could not init simulation screen:", err.Error())
	}
	defer handler.Fini()
	sim.SetSize(60, 20)

	stylesheet, err := styling.NewStylesheetFromConfig(config.Default().Stylesheet)
	if err != nil {
		t.Fatal(err.Error())
	}
	view := tui.NewView(handler, *stylesheet)
	view.Draw(tui.ViewModel{
		Title:    "makeymakey",
		Hats:     []tui.HatState{{Label: "when UP DOWN pressed in order", Fires: 3, Recently: true}},
		Buffered: []string{"UP", "DOWN"},
		KeysDown: []string{"down arrow"},
		Log:      []string{"info  keys pressed in order sequence=UP DOWN"},
		Help:     map[string]string{"<esc>": "stop all"},
	})

	if rowText(sim, 0) != " makeymakey" {
		t.Errorf("unexpected title row '%s'", rowText(sim, 0))
	}
	if rowText(sim, 2) != "    3  when UP DOWN pressed in order" {
		t.Errorf("unexpected hat row '%s'", rowText(sim, 2))
	}
	if rowText(sim, 4) != " pressed: UP DOWN" {
		t.Errorf("unexpected buffer row '%s'", rowText(sim, 4))
	}
	if rowText(sim, 5) != " held:    down arrow" {
		t.Errorf("unexpected held row '%s'", rowText(sim, 5))
	}
	if rowText(sim, 19) != " <esc> stop all" {
		t.Errorf("unexpected help row '%s'", rowText(sim, 19))
	}
}
