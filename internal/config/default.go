package config

// Default returns the default configuration.
func Default() Config {
	return Config{
		Runtime: Runtime{
			StepTime: "33ms",
			KeyHold:  "500ms",
		},
		MakeyMakey: MakeyMakey{
			BufferLength:    100,
			SequenceTimeout: "100ms",
			Keys: []Key{
				{ID: "SPACE", Host: "space", Short: "space"},
				{ID: "LEFT", Host: "left arrow", Short: "left"},
				{ID: "UP", Host: "up arrow", Short: "up"},
				{ID: "RIGHT", Host: "right arrow", Short: "right"},
				{ID: "DOWN", Host: "down arrow", Short: "down"},
			},
			Sequences: []string{
				"LEFT UP RIGHT",
				"RIGHT UP LEFT",
				"LEFT RIGHT",
				"RIGHT LEFT",
				"UP DOWN",
				"DOWN UP",
				"UP RIGHT DOWN LEFT",
				"UP LEFT DOWN RIGHT",
				"UP UP DOWN DOWN LEFT RIGHT LEFT RIGHT",
			},
		},
		Scripts: []Script{
			{When: "whenMakeyKeyPressed", Arg: "SPACE", Say: "space!"},
			{When: "whenCodePressed", Arg: "LEFT UP RIGHT", Say: "left, up, right"},
			{When: "whenCodePressed", Arg: "UP DOWN", Say: "up and down"},
			{When: "whenCodePressed", Arg: "UP UP DOWN DOWN LEFT RIGHT LEFT RIGHT", Say: "cheat code accepted"},
		},
		Stylesheet: Stylesheet{
			Normal: Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
			Fired:  Styling{Fg: "#000000", Bg: "#ffcc00", Style: &FontStyle{Bold: true}},
			Status: Styling{Fg: "#f0f0f0", Bg: "#202040", Style: &FontStyle{}},
			Log:    Styling{Fg: "#a0a0a0", Bg: "#000000", Style: &FontStyle{Italic: true}},
		},
	}
}
