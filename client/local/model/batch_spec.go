package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goto/gitsim/core/command"
)

// BatchSpec is the file format of the batch command:
//
//	version: 1
//	requests:
//	  - command: status
//	    params: [[src, docs]]
//	  - command: commit
//	    params: [[a.txt], "first commit"]
type BatchSpec struct {
	Version  int            `yaml:"version"`
	Requests []BatchRequest `yaml:"requests"`
}

type BatchRequest struct {
	Command string `yaml:"command"`
	Params  []any  `yaml:"params"`
}

func (s BatchSpec) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Version, validation.In(0, 1)),
		validation.Field(&s.Requests, validation.Required),
	)
}

func (r BatchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Command, validation.Required),
	)
}

func (s BatchSpec) ToRequests() []command.Request {
	requests := make([]command.Request, len(s.Requests))
	for i, r := range s.Requests {
		requests[i] = command.Request{
			Command: r.Command,
			Params:  r.Params,
		}
	}
	return requests
}
