package internal

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/core/command"
	"github.com/goto/gitsim/internal/errors"
)

func TestDispatchSkipValidation(t *testing.T) {
	color.NoColor = true

	t.Run("registers skip-validation as a hidden flag", func(t *testing.T) {
		cmd := &cobra.Command{}
		(&Dispatch{}).InjectFlags(cmd)

		flag := cmd.Flags().Lookup("skip-validation")

		assert.NotNil(t, flag)
		assert.True(t, flag.Hidden)
		assert.Equal(t, "false", flag.DefValue)
	})
	t.Run("validates commands by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		d := &Dispatch{}
		d.setup(afero.NewMemMapFs(), logger.NewClientLoggerWithWriter(buf, "info"))

		_, err := d.Controller.Execute(command.NameCommit, "a.txt", "")

		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		assert.Empty(t, buf.String())
	})
	t.Run("executes without validating and warns when skip-validation is set", func(t *testing.T) {
		buf := &bytes.Buffer{}
		d := &Dispatch{skipValidation: true}
		d.setup(afero.NewMemMapFs(), logger.NewClientLoggerWithWriter(buf, "info"))

		result, err := d.Controller.Execute(command.NameCommit, "a.txt", "")

		assert.NoError(t, err)
		assert.Equal(t, command.MessageEmptyCommit, result)
		assert.Contains(t, buf.String(), "command validation is disabled")
	})
}
