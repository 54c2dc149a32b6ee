package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/makeymakey/internal/config"
	"github.com/ja-he/makeymakey/internal/control/action"
	"github.com/ja-he/makeymakey/internal/extension/makeymakey"
	"github.com/ja-he/makeymakey/internal/host"
)

// Session is a runtime with the extension loaded and the configured scripts
// attached as hats.
type Session struct {
	ID        string
	Runtime   *host.Runtime
	Extension *makeymakey.Extension
	Scripts   []*Script
	Settings  config.Settings

	log zerolog.Logger
}

// Script is a configured hat with its label and fire count.
type Script struct {
	Label  string
	Say    string
	Hat    *host.Hat
	Action *action.Counted
}

// configPath returns the config file to read: the given path if set, otherwise
// 'config.yaml' in ${MAKEYMAKEY_HOME} (default '~/.config/makeymakey').
func configPath(given string) string {
	if given != "" {
		return given
	}
	home := os.Getenv("MAKEYMAKEY_HOME")
	if home == "" {
		home = filepath.Join(os.Getenv("HOME"), ".config", "makeymakey")
	}
	return filepath.Join(strings.TrimRight(home, "/"), "config.yaml")
}

// loadConfig reads and parses the config file, falling back to the defaults
// if there is none.
func loadConfig(given string) (config.Config, error) {
	path := configPath(given)
	yamlData, err := os.ReadFile(path)
	if err != nil {
		if given != "" {
			return config.Config{}, errors.Wrapf(err, "can't read config file '%s'", path)
		}
		log.Debug().Err(err).Str("file", path).Msg("can't read config file, using defaults")
		yamlData = nil
	}
	c, err := config.ParseConfigAugmentDefaults(yamlData)
	if err != nil {
		return config.Config{}, errors.Wrapf(err, "can't parse config file '%s'", path)
	}
	return c, nil
}

// NewSession sets up a session from the given configuration. say is called
// (if non-nil) whenever a script's hat fires.
func NewSession(c config.Config, logger zerolog.Logger, say func(s *Script)) (*Session, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	id := uuid.NewString()
	logger = logger.With().Str("session", id).Logger()

	rt := host.New(host.Options{
		StepTime: settings.StepTime,
		KeyHold:  settings.KeyHold,
		Logger:   &logger,
	})
	ext := makeymakey.New(rt, makeymakey.Options{
		Keys:             settings.Keys,
		BufferLength:     settings.BufferLength,
		SequenceTimeout:  settings.SequenceTimeout,
		DefaultSequences: settings.Sequences,
		Logger:           &logger,
	})

	session := &Session{
		ID:        id,
		Runtime:   rt,
		Extension: ext,
		Settings:  settings,
		log:       logger,
	}

	texts := map[string]string{}
	for _, b := range ext.Info().Blocks {
		texts[b.Opcode] = b.Text
	}

	for i, sc := range c.Scripts {
		predicate, err := ext.Predicate(sc.When, sc.Arg)
		if err != nil {
			return nil, errors.Wrapf(err, "script %d", i)
		}
		script := &Script{
			Label: strings.NewReplacer("[KEY]", sc.Arg, "[SEQUENCE]", sc.Arg).Replace(texts[sc.When]),
			Say:   sc.Say,
		}
		script.Action = action.NewCounted(action.NewSimple(
			func() string { return script.Say },
			func() {
				logger.Info().Str("hat", script.Label).Msg(script.Say)
				if say != nil {
					say(script)
				}
			},
		))
		script.Hat = &host.Hat{Opcode: sc.When, Arg: sc.Arg, Predicate: predicate, Action: script.Action}
		if err := rt.AddHat(script.Hat); err != nil {
			return nil, errors.Wrapf(err, "script %d", i)
		}
		session.Scripts = append(session.Scripts, script)
	}

	logger.Debug().Int("scripts", len(session.Scripts)).Dur("step-time", rt.CurrentStepTime()).Msg("session ready")
	return session, nil
}

// ScriptFor returns the script of the given hat, or nil.
func (s *Session) ScriptFor(h *host.Hat) *Script {
	for _, sc := range s.Scripts {
		if sc.Hat == h {
			return sc
		}
	}
	return nil
}
