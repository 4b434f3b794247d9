package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goto/gitsim/client/local/model"
	"github.com/goto/gitsim/core/command"
)

func TestBatchSpec(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		t.Run("accepts requests with a command", func(t *testing.T) {
			spec := model.BatchSpec{
				Version:  1,
				Requests: []model.BatchRequest{{Command: "status", Params: []any{[]any{"a"}}}},
			}

			assert.NoError(t, spec.Validate())
		})
		t.Run("rejects an empty request list", func(t *testing.T) {
			spec := model.BatchSpec{Version: 1}

			assert.ErrorContains(t, spec.Validate(), "Requests")
		})
		t.Run("rejects a request without command", func(t *testing.T) {
			spec := model.BatchSpec{
				Requests: []model.BatchRequest{{Command: "log"}, {Params: []any{"a"}}},
			}

			err := spec.Validate()
			assert.ErrorContains(t, err, "Command")
		})
		t.Run("rejects unknown versions", func(t *testing.T) {
			spec := model.BatchSpec{
				Version:  3,
				Requests: []model.BatchRequest{{Command: "log"}},
			}

			assert.ErrorContains(t, spec.Validate(), "Version")
		})
	})

	t.Run("ToRequests", func(t *testing.T) {
		spec := model.BatchSpec{
			Requests: []model.BatchRequest{
				{Command: "commit", Params: []any{[]any{"a.txt"}, "msg"}},
				{Command: "push"},
			},
		}

		assert.Equal(t, []command.Request{
			{Command: "commit", Params: []any{[]any{"a.txt"}, "msg"}},
			{Command: "push"},
		}, spec.ToRequests())
	})
}
