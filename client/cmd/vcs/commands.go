package vcs

import (
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
)

type commandsCommand struct {
	logger log.Logger
}

// NewCommandsCommand initializes command to list supported command names
func NewCommandsCommand() *cobra.Command {
	c := &commandsCommand{
		logger: logger.NewClientLogger(),
	}

	return &cobra.Command{
		Use:     "commands",
		Short:   "List the commands the dispatcher supports",
		Example: "gitsim commands",
		Args:    cobra.NoArgs,
		RunE:    c.RunE,
	}
}

func (c *commandsCommand) RunE(_ *cobra.Command, _ []string) error {
	for _, name := range command.SupportedNames() {
		c.logger.Info(name)
	}
	return nil
}
