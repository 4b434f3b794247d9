package internal

import (
	"github.com/goto/salt/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/goto/gitsim/client/cmd/internal/logger"
	"github.com/goto/gitsim/config"
	"github.com/goto/gitsim/core/command"
)

// Dispatch holds what every command needs to reach the controller, it is
// filled from flags and config in PreRunE.
type Dispatch struct {
	configFilePath string
	workDir        string
	logLevel       string
	skipValidation bool

	Config     *config.ClientConfig
	Factory    *command.Factory
	Controller *command.Controller
}

func (d *Dispatch) InjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.configFilePath, "config", "c", config.EmptyPath, "File path for client configuration")
	cmd.Flags().StringVar(&d.workDir, "workdir", "", "Directory command paths are resolved against")
	cmd.Flags().StringVar(&d.logLevel, "log-level", "", "Log level for diagnostics [debug|info|warn|error]")
	cmd.Flags().BoolVar(&d.skipValidation, "skip-validation", false, "Execute commands without validating their parameters")
	cmd.Flags().MarkHidden("skip-validation")
}

func (d *Dispatch) PreRunE(_ *cobra.Command, _ []string) error {
	conf, err := config.LoadClientConfig(d.configFilePath)
	if err != nil {
		return err
	}

	if d.workDir != "" {
		conf.WorkDir = d.workDir
	}
	if d.logLevel != "" {
		conf.Log.Level = d.logLevel
		if err := conf.Validate(); err != nil {
			return err
		}
	}

	d.Config = conf
	d.setup(NewFs(conf.WorkDir), logger.NewDiagnosticLogger(conf.Log))
	return nil
}

func (d *Dispatch) setup(fs afero.Fs, l log.Logger) {
	var opts []command.ControllerOption
	if d.skipValidation {
		l.Warn("command validation is disabled")
		opts = append(opts, command.WithoutValidation())
	}

	d.Factory = command.NewFactory(fs, l)
	d.Controller = command.NewController(d.Factory, l, opts...)
}

// NewFs resolves every path against workDir, the current directory needs no wrapping
func NewFs(workDir string) afero.Fs {
	fs := afero.NewOsFs()
	if workDir == "" || workDir == config.DefaultWorkDir {
		return fs
	}
	return afero.NewBasePathFs(fs, workDir)
}

// NewDispatchFs builds a ready Dispatch on top of fs, used where no flags are parsed
func NewDispatchFs(conf *config.ClientConfig, fs afero.Fs, l log.Logger) *Dispatch {
	d := &Dispatch{Config: conf}
	d.setup(fs, l)
	return d
}
