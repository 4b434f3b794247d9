package vcs

import (
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal"
	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
)

type statusCommand struct {
	logger   log.Logger
	dispatch *internal.Dispatch
}

// NewStatusCommand initializes command to show status of paths
func NewStatusCommand() *cobra.Command {
	s := &statusCommand{
		logger:   logger.NewClientLogger(),
		dispatch: &internal.Dispatch{},
	}

	cmd := &cobra.Command{
		Use:     "status [<path>...]",
		Short:   "Show the status for the given paths",
		Example: "gitsim status src docs",
		PreRunE: s.dispatch.PreRunE,
		RunE:    s.RunE,
	}

	s.dispatch.InjectFlags(cmd)
	return cmd
}

func (s *statusCommand) RunE(_ *cobra.Command, args []string) error {
	_, err := execute(s.logger, s.dispatch.Controller, command.NameStatus, args)
	return err
}
