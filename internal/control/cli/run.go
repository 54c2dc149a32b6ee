package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/makeymakey/internal/potatolog"
	"github.com/ja-he/makeymakey/internal/storage"
	"github.com/ja-he/makeymakey/internal/styling"
	"github.com/ja-he/makeymakey/internal/tui"
)

// logLimit is how many log entries the interactive view keeps in memory.
const logLimit = 256

// RunCommand runs an interactive session in the terminal.
type RunCommand struct {
	Config        string `short:"c" long:"config" description:"Specify the config file" value-name:"<file>"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs are only shown in the view)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	Debug         bool   `short:"d" long:"debug" description:"log at debug level"`
	Record        string `short:"r" long:"record" description:"write the pressed keys to a key file on quit, for replay" value-name:"<file>"`
}

// Execute runs the session until quit.
func (command *RunCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	memoryLog := potatolog.NewMemoryLogReaderWriter(logLimit)
	var logWriter io.Writer = memoryLog
	if command.LogOutputFile != "" {
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Error().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
			return err
		}
		defer file.Close()
		var fileLogger io.Writer = file
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, memoryLog)
	}
	level := zerolog.InfoLevel
	if command.Debug {
		level = zerolog.DebugLevel
	}
	tuiLogger := zerolog.New(logWriter).Level(level).With().Timestamp().Logger()

	c, err := loadConfig(command.Config)
	if err != nil {
		stderrLogger.Error().Err(err).Msg("can't load config")
		return err
	}
	stylesheet, err := styling.NewStylesheetFromConfig(c.Stylesheet)
	if err != nil {
		stderrLogger.Error().Err(err).Msg("invalid stylesheet")
		return err
	}
	session, err := NewSession(c, tuiLogger, nil)
	if err != nil {
		stderrLogger.Error().Err(err).Msg("can't set up session")
		return err
	}

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		stderrLogger.Error().Err(err).Msg("can't set up terminal")
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller, err := NewController(session, screen, *stylesheet, memoryLog)
	if err != nil {
		screen.Fini()
		return err
	}
	if err := controller.Run(context.Background()); err != nil {
		return err
	}

	if command.Record != "" {
		recorder := storage.NewKeyFileHandler(command.Record)
		if err := recorder.Write(controller.Pressed()); err != nil {
			return err
		}
		stderrLogger.Info().Str("file", recorder.Filename()).Int("keys", len(controller.Pressed())).Msg("recorded key presses")
	}
	return nil
}
