package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/makeymakey/internal/input"
)

// Config is the configuration data as present in a config file at
// '${MAKEYMAKEY_HOME}/config.yaml'.
type Config struct {
	Runtime    Runtime    `yaml:"runtime"`
	MakeyMakey MakeyMakey `yaml:"makeymakey"`
	Scripts    []Script   `yaml:"scripts"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// Runtime configures the host runtime.
// Durations are in the format of time.ParseDuration.
type Runtime struct {
	StepTime string `yaml:"step-time,omitempty"`
	KeyHold  string `yaml:"key-hold,omitempty"`
}

// MakeyMakey configures the extension.
type MakeyMakey struct {
	BufferLength    int      `yaml:"buffer-length,omitempty"`
	SequenceTimeout string   `yaml:"sequence-timeout,omitempty"`
	Keys            []Key    `yaml:"keys,omitempty"`
	Sequences       []string `yaml:"sequences,omitempty"`
}

// Key is an entry of the key table, e.g. `{id: ENTER, host: enter}`.
type Key struct {
	ID    string `yaml:"id"`
	Host  string `yaml:"host"`
	Short string `yaml:"short,omitempty"`
}

// Script is a hat block with what it says when it fires.
type Script struct {
	When string `yaml:"when"`
	Arg  string `yaml:"arg"`
	Say  string `yaml:"say,omitempty"`
}

// Stylesheet holds the styles of the interactive view.
type Stylesheet struct {
	Normal Styling `yaml:"normal"`
	Fired  Styling `yaml:"fired"`
	Status Styling `yaml:"status"`
	Log    Styling `yaml:"log"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style,omitempty"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Settings are the typed, validated values of a Config.
type Settings struct {
	StepTime        time.Duration
	KeyHold         time.Duration
	BufferLength    int
	SequenceTimeout time.Duration
	Keys            *input.KeyTable
	Sequences       []string
}

// ParseConfigAugmentDefaults parses the given YAML data and returns the
// default configuration augmented by it.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, errors.Wrap(err, "error unmarshaling yaml")
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.Runtime.StepTime != "" {
		result.Runtime.StepTime = augment.Runtime.StepTime
	}
	if augment.Runtime.KeyHold != "" {
		result.Runtime.KeyHold = augment.Runtime.KeyHold
	}

	if augment.MakeyMakey.BufferLength != 0 {
		result.MakeyMakey.BufferLength = augment.MakeyMakey.BufferLength
	}
	if augment.MakeyMakey.SequenceTimeout != "" {
		result.MakeyMakey.SequenceTimeout = augment.MakeyMakey.SequenceTimeout
	}
	// configured keys extend the default table rather than replace it
	if len(augment.MakeyMakey.Keys) > 0 {
		result.MakeyMakey.Keys = append(append([]Key{}, base.MakeyMakey.Keys...), augment.MakeyMakey.Keys...)
	}
	if len(augment.MakeyMakey.Sequences) > 0 {
		result.MakeyMakey.Sequences = augment.MakeyMakey.Sequences
	}

	if len(augment.Scripts) > 0 {
		result.Scripts = augment.Scripts
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base
	result.Normal = base.Normal.augmentWith(augment.Normal)
	result.Fired = base.Fired.augmentWith(augment.Fired)
	result.Status = base.Status.augmentWith(augment.Status)
	result.Log = base.Log.augmentWith(augment.Log)
	return result
}

func (base Styling) augmentWith(augment Styling) Styling {
	result := base
	if augment.Fg != "" {
		result.Fg = augment.Fg
	}
	if augment.Bg != "" {
		result.Bg = augment.Bg
	}
	if augment.Style != nil {
		result.Style = augment.Style
	}
	return result
}

// Settings validates the configuration and returns its typed values.
func (c Config) Settings() (Settings, error) {
	var s Settings
	var err error

	if s.StepTime, err = positiveDuration("runtime.step-time", c.Runtime.StepTime); err != nil {
		return Settings{}, err
	}
	if s.KeyHold, err = time.ParseDuration(c.Runtime.KeyHold); err != nil {
		return Settings{}, errors.Wrapf(err, "invalid runtime.key-hold '%s'", c.Runtime.KeyHold)
	}
	if s.SequenceTimeout, err = positiveDuration("makeymakey.sequence-timeout", c.MakeyMakey.SequenceTimeout); err != nil {
		return Settings{}, err
	}

	if c.MakeyMakey.BufferLength < 0 {
		return Settings{}, errors.Errorf("makeymakey.buffer-length must not be negative, is %d", c.MakeyMakey.BufferLength)
	}
	s.BufferLength = c.MakeyMakey.BufferLength

	entries := make([]input.KeyEntry, len(c.MakeyMakey.Keys))
	for i, k := range c.MakeyMakey.Keys {
		entries[i] = input.KeyEntry{ID: input.KeyID(k.ID), HostName: k.Host, Short: k.Short}
	}
	if s.Keys, err = input.NewKeyTable(entries); err != nil {
		return Settings{}, errors.Wrap(err, "invalid makeymakey.keys")
	}

	for _, seq := range c.MakeyMakey.Sequences {
		if len(strings.Fields(seq)) < 2 {
			return Settings{}, errors.Errorf("makeymakey.sequences entry '%s' has fewer than two keys", seq)
		}
	}
	s.Sequences = c.MakeyMakey.Sequences

	return s, nil
}

func positiveDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s '%s'", field, value)
	}
	if d <= 0 {
		return 0, errors.Errorf("%s must be positive, is '%s'", field, value)
	}
	return d, nil
}
