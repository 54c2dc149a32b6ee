package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/makeymakey/internal/config"
	"github.com/ja-he/makeymakey/internal/storage"
)

// stopToken is the replay input that stops the project instead of pressing a
// key.
const stopToken = "stop"

// ReplayCommand presses keys headlessly, one per step.
type ReplayCommand struct {
	Config string `short:"c" long:"config" description:"Specify the config file" value-name:"<file>"`
	Quiet  bool   `short:"q" long:"quiet" description:"Only print steps on which hats fired"`
	File   string `short:"f" long:"file" description:"Read the keys from a key file (as written by 'run --record')" value-name:"<file>"`

	Args struct {
		Keys []string `positional-arg-name:"KEY" description:"key names such as 'left arrow' or 'w', or 'stop' (read from stdin, one per line, if none given)"`
	} `positional-args:"yes"`
}

// Execute replays the keys given as arguments or on stdin.
func (command *ReplayCommand) Execute(args []string) error {
	c, err := loadConfig(command.Config)
	if err != nil {
		return err
	}

	keys := command.Args.Keys
	switch {
	case command.File != "":
		keys, err = storage.NewKeyFileHandler(command.File).Read()
	case len(keys) == 0:
		keys, err = storage.ReadKeys(os.Stdin)
	}
	if err != nil {
		return err
	}

	return command.replay(context.Background(), c, log.Logger, keys, os.Stdout)
}

func (command *ReplayCommand) replay(ctx context.Context, c config.Config, logger zerolog.Logger, keys []string, out io.Writer) error {
	session, err := NewSession(c, logger, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	toggleDone := make(chan error, 1)
	go func() { toggleDone <- session.Extension.Run(ctx) }()

	step := session.Runtime.CurrentStepTime()
	for i, key := range keys {
		if key == stopToken {
			session.Runtime.StopAll()
		} else {
			session.Runtime.PressKey(key)
		}

		var said []string
		for _, h := range session.Runtime.Step() {
			if script := session.ScriptFor(h); script != nil {
				said = append(said, fmt.Sprintf("%s: %s", script.Label, script.Say))
			}
		}
		if len(said) > 0 || !command.Quiet {
			line := fmt.Sprintf("%3d %-12s %s", i+1, key, strings.Join(said, "; "))
			fmt.Fprintln(out, strings.TrimRight(line, " "))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step):
		}
	}

	cancel()
	return <-toggleDone
}
