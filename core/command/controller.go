package command

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/goto/salt/log"

	"github.com/goto/gitsim/internal/errors"
)

type CommandFactory interface {
	Create(name string, params ...any) (Command, error)
}

type ControllerOption func(*Controller)

// WithoutValidation skips the validate step, commands are executed as constructed
func WithoutValidation() ControllerOption {
	return func(c *Controller) {
		c.validate = false
	}
}

// Controller runs a single command per call: construct, validate, execute.
type Controller struct {
	factory  CommandFactory
	logger   log.Logger
	validate bool
}

func NewController(factory CommandFactory, logger log.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		factory:  factory,
		logger:   logger,
		validate: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute returns the outcome message of the named command. An unsupported
// name is answered with its message and no error, construction and
// validation errors are returned as they are.
func (c *Controller) Execute(name string, params ...any) (string, error) {
	requestID := uuid.NewString()
	c.logger.Debug(fmt.Sprintf("[%s] dispatching command [%s]", requestID, name))

	cmd, err := c.factory.Create(name, params...)
	if err != nil {
		var unsupported *UnsupportedError
		if errors.As(err, &unsupported) {
			c.logger.Debug(fmt.Sprintf("[%s] command [%s] is not supported", requestID, name))
			return unsupported.Error(), nil
		}
		return "", err
	}

	if c.validate {
		if err := cmd.Validate(); err != nil {
			c.logger.Debug(fmt.Sprintf("[%s] validation failed for [%s]: %s", requestID, name, err))
			return "", err
		}
	}

	result, err := cmd.Execute()
	if err != nil {
		c.logger.Debug(fmt.Sprintf("[%s] execution failed for [%s]: %s", requestID, name, err))
		return "", err
	}

	c.logger.Debug(fmt.Sprintf("[%s] command [%s] finished", requestID, cmd.Name()))
	return result, nil
}
