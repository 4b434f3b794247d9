package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/batch"
	"github.com/goto/gitsim/client/cmd/vcs"
	"github.com/goto/gitsim/client/cmd/version"
)

// New constructs the 'root' command. It houses all other sub commands.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitsim <command> <args> [flags]",
		Short: "Simulated version control command dispatcher",
		Long: heredoc.Doc(`
			gitsim dispatches version control commands by name and reports what
			they would do. Files are only ever read, nothing is recorded.`),
		Example: heredoc.Doc(`
			$ gitsim status src docs
			$ gitsim commit -m "first commit" a.txt b.txt
			$ gitsim diff a.txt b.txt --show
			$ gitsim exec push origin`),
		SilenceUsage: true,
	}

	cmd.AddCommand(
		vcs.NewStatusCommand(),
		vcs.NewCommitCommand(),
		vcs.NewLogCommand(),
		vcs.NewDiffCommand(),
		vcs.NewExecCommand(),
		vcs.NewCommandsCommand(),
		batch.NewBatchCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}
