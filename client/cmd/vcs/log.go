package vcs

import (
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal"
	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
)

type logCommand struct {
	logger   log.Logger
	dispatch *internal.Dispatch
}

// NewLogCommand initializes command to show log entries of paths
func NewLogCommand() *cobra.Command {
	l := &logCommand{
		logger:   logger.NewClientLogger(),
		dispatch: &internal.Dispatch{},
	}

	cmd := &cobra.Command{
		Use:     "log [<path>...]",
		Short:   "Show log entries for the given paths",
		Example: "gitsim log main.go",
		PreRunE: l.dispatch.PreRunE,
		RunE:    l.RunE,
	}

	l.dispatch.InjectFlags(cmd)
	return cmd
}

func (l *logCommand) RunE(_ *cobra.Command, args []string) error {
	_, err := execute(l.logger, l.dispatch.Controller, command.NameLog, args)
	return err
}
