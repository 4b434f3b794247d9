package vcs

import (
	"github.com/goto/salt/log"

	lerrors "github.com/goto/gitsim/client/local/errors"
	"github.com/goto/gitsim/core/command"
)

// execute prints the outcome of a single command on success
func execute(l log.Logger, controller *command.Controller, name string, params ...any) (string, error) {
	result, err := controller.Execute(name, params...)
	if err != nil {
		return "", lerrors.FromDomainError(err)
	}
	l.Info(result)
	return result, nil
}
