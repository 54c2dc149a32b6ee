// Package cli provides the command-line interface for makeymakey.
package cli

// CommandLineOpts are the options and commands of the command line.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	RunCommand     RunCommand     `command:"run" subcommands-optional:"true" description:"Run an interactive session in the terminal"`
	ReplayCommand  ReplayCommand  `command:"replay" subcommands-optional:"true" description:"Press the given keys, one per step, and print the hats that fire"`
	BlocksCommand  BlocksCommand  `command:"blocks" subcommands-optional:"true" description:"Print the extension's blocks and menus"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts
