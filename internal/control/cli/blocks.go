package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// BlocksCommand prints the extension metadata.
type BlocksCommand struct {
	Config string `short:"c" long:"config" description:"Specify the config file" value-name:"<file>"`
}

// Execute prints the blocks and menus as YAML.
func (command *BlocksCommand) Execute(args []string) error {
	return command.print(os.Stdout)
}

func (command *BlocksCommand) print(out io.Writer) error {
	c, err := loadConfig(command.Config)
	if err != nil {
		return err
	}
	session, err := NewSession(c, log.Logger, nil)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(session.Extension.Info()); err != nil {
		return err
	}
	return enc.Close()
}
