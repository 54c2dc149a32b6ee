package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/makeymakey/internal/control/action"
	"github.com/ja-he/makeymakey/internal/input"
)

func TestConfigKeyspecToKey(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		expectValid := func(s input.Keyspec) []input.Key {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err != nil {
				t.Error("unexpected error on valid spec:", err.Error())
			}
			if keys == nil {
				t.Error("unexpected nil keyspec on valid spec")
			}
			return keys
		}

		t.Run("empty", func(t *testing.T) {
			keys := expectValid("")
			if len(keys) != 0 {
				t.Error("expected empty seq of keys")
			}
		})

		t.Run("single", func(t *testing.T) {
			keys := expectValid("x")
			if len(keys) != 1 {
				t.Fatal("expected single key")
			}
			if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
				t.Error("expected single key to be 'x'")
			}
		})

		t.Run("special", func(t *testing.T) {
			t.Run("<c-c>", func(t *testing.T) {
				keys := expectValid("<c-c>")
				if len(keys) != 1 {
					t.Fatal("expected single key")
				}
				if (keys[0] != input.Key{Key: tcell.KeyCtrlC}) {
					t.Error("expected single key to be <c-c>")
				}
			})
			t.Run("<esc>", func(t *testing.T) {
				keys := expectValid("<ESC>")
				if len(keys) != 1 {
					t.Fatal("expected single key")
				}
				if (keys[0] != input.Key{Key: tcell.KeyESC}) {
					t.Error("expected single key to be <esc>")
				}
			})
		})

		t.Run("sequence with special", func(t *testing.T) {
			keys := expectValid("x<c-l>z")
			if len(keys) != 3 {
				t.Fatal("expected three keys")
			}
			if (keys[0] != input.Key{Key: tcell.KeyRune, Ch: 'x'}) || (keys[1] != input.Key{Key: tcell.KeyCtrlL}) || (keys[2] != input.Key{Key: tcell.KeyRune, Ch: 'z'}) {
				t.Error("expected sequence [x,<c-l>,z], not", keys)
			}
		})
	})

	t.Run("invalid", func(t *testing.T) {
		expectInvalid := func(s input.Keyspec) {
			keys, err := input.ConfigKeyspecToKeys(s)
			if err == nil {
				t.Error("unexpectedly no err on invalid spec", s)
			}
			if keys != nil {
				t.Error("unexpected key seq on invalid spec:", keys)
			}
		}

		t.Run("unopened special", func(t *testing.T) {
			expectInvalid("c-c>")
		})
		t.Run("unclosed special (EOL)", func(t *testing.T) {
			expectInvalid("<c-c")
		})
		t.Run("unclosed special (double open)", func(t *testing.T) {
			expectInvalid("<c-c<c-l>")
		})
		t.Run("wrong delimiter in special", func(t *testing.T) {
			expectInvalid("<c+c>")
		})
		t.Run("unknown special", func(t *testing.T) {
			expectInvalid("<hyper>")
		})
	})

}

func TestConstructInputTree(t *testing.T) {

	t.Run("empty map produces single-node tree", func(t *testing.T) {
		emptyTree, err := input.ConstructInputTree(make(map[input.Keyspec]action.Action))
		if err != nil {
			t.Fatal(err.Error())
		}
		validateNewlyCreatedTree(t, emptyTree)
		if emptyTree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
			t.Error("empty tree claims to apply (non-added) input")
		}
	})

	t.Run("controls", func(t *testing.T) {
		stopped, quit := false, false
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<esc>": &DummyAction{F: func() { stopped = true }},
			"qq":    &DummyAction{F: func() { quit = true }},
		})
		if err != nil {
			t.Fatal(err.Error())
		}
		validateNewlyCreatedTree(t, tree)

		if tree.ProcessInput(input.Key{Key: tcell.KeyLeft}) {
			t.Error("tree processes non-added input")
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyESC}) || !stopped {
			t.Error("tree fails to apply <esc>")
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'q'}) {
			t.Error("tree fails to process added input")
		}
		if !tree.CapturesInput() {
			t.Error("tree fails to capture input in the middle of a sequence")
		}
		if !tree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'q'}) || !quit {
			t.Error("tree fails to apply qq")
		}
		if tree.CapturesInput() {
			t.Error("tree claims to capture input after complete sequence")
		}
	})

	t.Run("invalid keyspec errors", func(t *testing.T) {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{"<asdf": &DummyAction{}})
		if err == nil {
			t.Error("nil error despite invalid keyspec")
		}
		if tree != nil {
			t.Error("non-nil tree despite invalid keyspec")
		}
	})

	t.Run("overlapping keyspecs error", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"q":  &DummyAction{},
			"qq": &DummyAction{},
		})
		if err == nil {
			t.Error("nil error despite overlapping keyspecs")
		}
	})

}

func TestGetHelp(t *testing.T) {
	tree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"a":     &DummyAction{S: "A"},
			"<c-c>": &DummyAction{S: "quit"},
		},
	)
	if err != nil {
		t.Fatal("unexpectedly tree construction failed while testing help")
	}
	help := tree.GetHelp()
	if len(help) != 2 {
		t.Error("got help with unexpected amount of entries:", len(help))
	}
	if help["a"] != "A" {
		t.Errorf("got help string '%s' for 'a'", help["a"])
	}
	if help["<c-c>"] != "quit" {
		t.Errorf("got help string '%s' for '<c-c>'", help["<c-c>"])
	}
}

func TestHostKeyName(t *testing.T) {
	for _, tc := range []struct {
		key  input.Key
		name string
		ok   bool
	}{
		{input.Key{Key: tcell.KeyLeft}, "left arrow", true},
		{input.Key{Key: tcell.KeyDown}, "down arrow", true},
		{input.Key{Key: tcell.KeyRune, Ch: ' '}, "space", true},
		{input.Key{Key: tcell.KeyRune, Ch: 'W'}, "w", true},
		{input.Key{Key: tcell.KeyCtrlC}, "", false},
	} {
		name, ok := input.HostKeyName(tc.key)
		if name != tc.name || ok != tc.ok {
			t.Errorf("expected (%s,%t) for %s, got (%s,%t)", tc.name, tc.ok, tc.key.ToDebugString(), name, ok)
		}
	}
}

func validateNewlyCreatedTree(t *testing.T, newlyCreated *input.Tree) {
	t.Helper()

	if newlyCreated.Root == nil || newlyCreated.Current == nil {
		t.Error("either root or current is nil on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.Root != newlyCreated.Current {
		t.Error("root and current differ on newly created tree:", newlyCreated.Root, ",", newlyCreated.Current)
	}
	if newlyCreated.CapturesInput() {
		t.Error("newly created tree claims to capture input")
	}
}

// to avoid depending on 'action' functions
type DummyAction struct {
	F func()
	S string
}

func (d *DummyAction) Do()             { d.F() }
func (d *DummyAction) Explain() string { return d.S }
