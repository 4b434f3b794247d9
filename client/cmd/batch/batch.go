package batch

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal"
	"github.com/goto/gitsim/client/cmd/internal/logger"
	lerrors "github.com/goto/gitsim/client/local/errors"
	"github.com/goto/gitsim/core/command"
	"github.com/goto/gitsim/internal/errors"
)

type batchCommand struct {
	logger   log.Logger
	dispatch *internal.Dispatch

	specFS afero.Fs
}

// NewBatchCommand initializes command to run requests listed in a file
func NewBatchCommand() *cobra.Command {
	b := &batchCommand{
		logger:   logger.NewClientLogger(),
		dispatch: &internal.Dispatch{},
		specFS:   afero.NewOsFs(),
	}

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Run the requests listed in a yaml file",
		Long: heredoc.Doc(`
			Runs every request of the file in order and prints a table of the outcomes.
			A failing request does not stop the ones after it.

			The file itself is read relative to the current directory, while the
			paths inside the requests are resolved against --workdir.

			File format:
			  version: 1
			  requests:
			    - command: status
			      params: [[src, docs]]
			    - command: commit
			      params: [[a.txt], "first commit"]`),
		Example: "gitsim batch requests.yaml",
		Args:    cobra.ExactArgs(1),
		PreRunE: b.dispatch.PreRunE,
		RunE:    b.RunE,
	}

	b.dispatch.InjectFlags(cmd)
	return cmd
}

func (b *batchCommand) RunE(_ *cobra.Command, args []string) error {
	spec, err := internal.ReadBatchSpec(b.specFS, args[0])
	if err != nil {
		return lerrors.NewCmdError(err, lerrors.ExitCodeValidationError)
	}

	results := b.dispatch.Controller.ExecuteBatch(spec.ToRequests())
	b.logger.Info(stringifyResults(results))

	me := errors.NewMultiError("batch requests failed")
	failed := 0
	for i, result := range results {
		if result.Failed() {
			failed++
			me.Append(fmt.Errorf("request %d [%s]: %w", i+1, result.Request.Command, result.Err))
		}
	}
	if err := errors.MultiToError(me); err != nil {
		return lerrors.NewValidationErrorf("%d of %d requests failed, %w", failed, len(results), err)
	}
	return nil
}

func stringifyResults(results []command.Result) string {
	buff := &bytes.Buffer{}
	table := tablewriter.NewWriter(buff)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Command", "Result"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, result := range results {
		outcome := result.Output
		if result.Failed() {
			outcome = "error: " + result.Err.Error()
		}
		table.Append([]string{strconv.Itoa(i + 1), result.Request.Command, outcome})
	}
	table.Render()
	return buff.String()
}
