package version

import (
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/config"
	"github.com/goto/gitsim/core/command"
)

type versionCommand struct {
	logger log.Logger

	withCommands bool
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "gitsim version [--with-commands]",
		Args:    cobra.NoArgs,
		RunE:    v.RunE,
	}

	cmd.Flags().BoolVar(&v.withCommands, "with-commands", v.withCommands, "Also print the supported commands")
	return cmd
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info("Client: %s-%s", config.BuildVersion, config.BuildCommit)

	if v.withCommands {
		v.logger.Info("\nSupported commands:")
		for i, name := range command.SupportedNames() {
			v.logger.Info("%d. %s", i+1, name)
		}
	}
	return nil
}
