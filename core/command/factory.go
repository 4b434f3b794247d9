package command

import (
	"fmt"

	"github.com/goto/salt/log"
	"github.com/spf13/afero"
)

// Factory binds a command name and its parameters to one of the supported
// commands. Every command reads from the same filesystem.
type Factory struct {
	fs     afero.Fs
	logger log.Logger
}

func NewFactory(fs afero.Fs, logger log.Logger) *Factory {
	return &Factory{
		fs:     fs,
		logger: logger,
	}
}

// Create returns an *UnsupportedError for unknown names
func (f *Factory) Create(name string, params ...any) (Command, error) {
	f.logger.Debug(fmt.Sprintf("creating command [%s] with %d parameter(s)", name, len(params)))

	switch name {
	case NameStatus:
		status, err := NewStatus(params...)
		if err != nil {
			return nil, err
		}
		return status, nil
	case NameCommit:
		commit, err := NewCommit(f.fs, params...)
		if err != nil {
			return nil, err
		}
		return commit, nil
	case NameLog:
		logCmd, err := NewLog(params...)
		if err != nil {
			return nil, err
		}
		return logCmd, nil
	case NameDiff:
		diff, err := NewDiff(f.fs, params...)
		if err != nil {
			return nil, err
		}
		return diff, nil
	default:
		return nil, &UnsupportedError{Name: name}
	}
}
