package config_test

import (
	"testing"
	"time"

	"github.com/ja-he/makeymakey/internal/config"
	"github.com/ja-he/makeymakey/internal/input"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty data gives defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		s, err := c.Settings()
		if err != nil {
			t.Fatal("defaults invalid:", err.Error())
		}
		if s.StepTime != 33*time.Millisecond || s.KeyHold != 500*time.Millisecond || s.SequenceTimeout != 100*time.Millisecond {
			t.Error("unexpected default durations:", s.StepTime, s.KeyHold, s.SequenceTimeout)
		}
		if s.BufferLength != 100 {
			t.Error("unexpected default buffer length:", s.BufferLength)
		}
		if s.Keys.Normalize("left arrow") != input.KeyIDLeft {
			t.Error("default key table does not map 'left arrow'")
		}
		if len(c.Scripts) == 0 {
			t.Error("expected default scripts")
		}
	})

	t.Run("values override defaults", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults([]byte(`
runtime:
  step-time: 16ms
makeymakey:
  sequence-timeout: 250ms
  keys:
    - id: enter
      host: enter
  sequences:
    - w a s d
scripts:
  - when: whenCodePressed
    arg: w a s d
    say: wasd
stylesheet:
  fired:
    bg: "#ff0000"
`))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		s, err := c.Settings()
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if s.StepTime != 16*time.Millisecond {
			t.Error("step time not overridden:", s.StepTime)
		}
		if s.KeyHold != 500*time.Millisecond {
			t.Error("key hold not defaulted:", s.KeyHold)
		}
		if s.SequenceTimeout != 250*time.Millisecond {
			t.Error("sequence timeout not overridden:", s.SequenceTimeout)
		}
		if s.Keys.Normalize("enter") != "ENTER" || s.Keys.Normalize("space") != input.KeyIDSpace {
			t.Error("configured key should extend the default table")
		}
		if len(s.Sequences) != 1 || s.Sequences[0] != "w a s d" {
			t.Error("sequences not overridden:", s.Sequences)
		}
		if len(c.Scripts) != 1 || c.Scripts[0].Say != "wasd" {
			t.Error("scripts not overridden:", c.Scripts)
		}
		if c.Stylesheet.Fired.Bg != "#ff0000" || c.Stylesheet.Fired.Fg != "#000000" {
			t.Error("styling not augmented:", c.Stylesheet.Fired)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults([]byte("runtime: [\n"))
		if err == nil {
			t.Error("expected error for malformed yaml")
		}
	})

}

func TestSettingsValidation(t *testing.T) {
	invalid := map[string]string{
		"bad duration":       "runtime:\n  step-time: soon\n",
		"zero step":          "runtime:\n  step-time: 0s\n",
		"negative buffer":    "makeymakey:\n  buffer-length: -1\n",
		"short sequence":     "makeymakey:\n  sequences: [LEFT]\n",
		"duplicate key":      "makeymakey:\n  keys:\n    - {id: SPACE, host: spacebar}\n",
		"bad sequence clear": "makeymakey:\n  sequence-timeout: -1s\n",
	}
	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			c, err := config.ParseConfigAugmentDefaults([]byte(data))
			if err != nil {
				t.Fatal("unexpected parse error:", err.Error())
			}
			if _, err := c.Settings(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
