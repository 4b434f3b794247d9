package vcs

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal"
	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
)

type execCommand struct {
	logger   log.Logger
	dispatch *internal.Dispatch

	message string
}

// NewExecCommand initializes command to dispatch any command by name
func NewExecCommand() *cobra.Command {
	e := &execCommand{
		logger:   logger.NewClientLogger(),
		dispatch: &internal.Dispatch{},
	}

	cmd := &cobra.Command{
		Use:   "exec <command> [<arg>...]",
		Short: "Dispatch a command by name",
		Long: heredoc.Doc(`
			Forwards the command name and its arguments to the dispatcher as they are.
			Names the dispatcher does not know are reported as not supported.`),
		Example: heredoc.Doc(`
			gitsim exec status src
			gitsim exec commit -m "msg" a.txt
			gitsim exec push origin`),
		Args:    cobra.MinimumNArgs(1),
		PreRunE: e.dispatch.PreRunE,
		RunE:    e.RunE,
	}

	cmd.Flags().StringVarP(&e.message, "message", "m", "", "Commit message, used by commit")
	e.dispatch.InjectFlags(cmd)
	return cmd
}

func (e *execCommand) RunE(_ *cobra.Command, args []string) error {
	name, paths := args[0], args[1:]

	params := []any{paths}
	if name == command.NameCommit {
		params = append(params, e.message)
	}

	_, err := execute(e.logger, e.dispatch.Controller, name, params...)
	return err
}
