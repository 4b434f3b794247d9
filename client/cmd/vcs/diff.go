package vcs

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal"
	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
)

const useConfigContextLines = -1

type diffCommand struct {
	logger   log.Logger
	dispatch *internal.Dispatch

	show         bool
	contextLines int
}

// NewDiffCommand initializes command to compare two files
func NewDiffCommand() *cobra.Command {
	d := &diffCommand{
		logger:   logger.NewClientLogger(),
		dispatch: &internal.Dispatch{},
	}

	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare the content of two files",
		Long: heredoc.Doc(`
			Compares two files byte by byte and reports whether they are identical.
			With --show the changed lines of differing files are printed as well.`),
		Example: "gitsim diff a.txt b.txt --show",
		PreRunE: d.dispatch.PreRunE,
		RunE:    d.RunE,
	}

	cmd.Flags().BoolVar(&d.show, "show", false, "Print changed lines when files are different")
	cmd.Flags().IntVar(&d.contextLines, "context", useConfigContextLines, "Unchanged lines shown around a change, defaults to config")
	d.dispatch.InjectFlags(cmd)
	return cmd
}

func (d *diffCommand) RunE(_ *cobra.Command, args []string) error {
	result, err := execute(d.logger, d.dispatch.Controller, command.NameDiff, args)
	if err != nil {
		return err
	}
	if !d.show || result != command.MessageFilesDifferent {
		return nil
	}

	cmd, err := d.dispatch.Factory.Create(command.NameDiff, args)
	if err != nil {
		return err
	}
	diff, ok := cmd.(*command.Diff)
	if !ok {
		return fmt.Errorf("unexpected command type %T for diff", cmd)
	}

	contextLines := d.contextLines
	if contextLines < 0 {
		contextLines = d.dispatch.Config.Diff.ContextLines
	}
	unified, err := diff.Unified(contextLines)
	if err != nil {
		return err
	}
	d.logger.Info(unified)
	return nil
}
