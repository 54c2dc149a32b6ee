package makeymakey

import (
	"strings"

	"github.com/ja-he/makeymakey/internal/input"
)

// ExtensionID identifies the extension.
const ExtensionID = "makeymakey"

// The opcodes of the extension's blocks.
const (
	OpcodeWhenMakeyKeyPressed = "whenMakeyKeyPressed"
	OpcodeWhenCodePressed     = "whenCodePressed"
)

// BlockTypeHat is the type of event-style blocks that start scripts.
const BlockTypeHat = "hat"

// ArgumentTypeString is the type of text arguments.
const ArgumentTypeString = "string"

// Info is the extension metadata as shown to the runtime's editor.
type Info struct {
	ID     string                `yaml:"id"`
	Name   string                `yaml:"name"`
	Blocks []BlockInfo           `yaml:"blocks"`
	Menus  map[string][]MenuItem `yaml:"menus"`
}

// BlockInfo describes a block.
type BlockInfo struct {
	Opcode    string                  `yaml:"opcode"`
	Text      string                  `yaml:"text"`
	BlockType string                  `yaml:"blockType"`
	Arguments map[string]ArgumentInfo `yaml:"arguments"`
}

// ArgumentInfo describes a block argument.
type ArgumentInfo struct {
	Type         string `yaml:"type"`
	Menu         string `yaml:"menu,omitempty"`
	DefaultValue string `yaml:"defaultValue"`
}

// MenuItem is an entry of a block argument menu.
type MenuItem struct {
	Text  string `yaml:"text"`
	Value string `yaml:"value"`
}

// DefaultSequences returns the sequences offered in the sequence menu.
func DefaultSequences() []string {
	return []string{
		"LEFT UP RIGHT",
		"RIGHT UP LEFT",
		"LEFT RIGHT",
		"RIGHT LEFT",
		"UP DOWN",
		"DOWN UP",
		"UP RIGHT DOWN LEFT",
		"UP LEFT DOWN RIGHT",
		"UP UP DOWN DOWN LEFT RIGHT LEFT RIGHT",
	}
}

// Info returns the extension's metadata.
func (e *Extension) Info() Info {
	return Info{
		ID:   ExtensionID,
		Name: "Makey Makey",
		Blocks: []BlockInfo{
			{
				Opcode:    OpcodeWhenMakeyKeyPressed,
				Text:      "when [KEY] key pressed",
				BlockType: BlockTypeHat,
				Arguments: map[string]ArgumentInfo{
					"KEY": {Type: ArgumentTypeString, Menu: "KEY", DefaultValue: string(input.KeyIDSpace)},
				},
			},
			{
				Opcode:    OpcodeWhenCodePressed,
				Text:      "when [SEQUENCE] pressed in order",
				BlockType: BlockTypeHat,
				Arguments: map[string]ArgumentInfo{
					"SEQUENCE": {Type: ArgumentTypeString, Menu: "SEQUENCE", DefaultValue: e.sequences[0]},
				},
			},
		},
		Menus: map[string][]MenuItem{
			"KEY":      e.keyMenu(),
			"SEQUENCE": e.sequenceMenu(),
		},
	}
}

func (e *Extension) keyMenu() []MenuItem {
	var items []MenuItem
	for _, entry := range e.keys.Entries() {
		items = append(items, MenuItem{Text: entry.HostName, Value: string(entry.ID)})
	}
	for _, literal := range []string{"w", "a", "s", "d", "f", "g"} {
		items = append(items, MenuItem{Text: literal, Value: literal})
	}
	return items
}

func (e *Extension) sequenceMenu() []MenuItem {
	items := make([]MenuItem, 0, len(e.sequences))
	for _, s := range e.sequences {
		items = append(items, e.sequenceMenuItem(s))
	}
	return items
}

// sequenceMenuItem labels a sequence with the short names of its keys.
func (e *Extension) sequenceMenuItem(seq string) MenuItem {
	ids := input.ParseKeyIDs(seq)
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = e.keys.Short(id)
	}
	return MenuItem{
		Text:  strings.Join(labels, " "),
		Value: input.JoinKeyIDs(ids),
	}
}
