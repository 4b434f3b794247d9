package vcs

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal"
	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
)

type commitCommand struct {
	logger   log.Logger
	dispatch *internal.Dispatch

	message string
}

// NewCommitCommand initializes command to commit files
func NewCommitCommand() *cobra.Command {
	c := &commitCommand{
		logger:   logger.NewClientLogger(),
		dispatch: &internal.Dispatch{},
	}

	cmd := &cobra.Command{
		Use:   "commit -m <message> <path>...",
		Short: "Commit the given files",
		Long: heredoc.Doc(`
			Checks every file exists and reports them as committed.
			Nothing is recorded, a missing file fails the whole commit.`),
		Example: `gitsim commit -m "first commit" a.txt b.txt`,
		PreRunE: c.dispatch.PreRunE,
		RunE:    c.RunE,
	}

	cmd.Flags().StringVarP(&c.message, "message", "m", "", "Commit message")
	c.dispatch.InjectFlags(cmd)
	return cmd
}

func (c *commitCommand) RunE(_ *cobra.Command, args []string) error {
	_, err := execute(c.logger, c.dispatch.Controller, command.NameCommit, args, c.message)
	return err
}
