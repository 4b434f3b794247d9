package command_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goto/salt/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goto/gitsim/core/command"
	"github.com/goto/gitsim/internal/errors"
)

func TestController(t *testing.T) {
	logger := log.NewNoop()
	controller := command.NewController(command.NewFactory(newTestFs(t), logger), logger)

	t.Run("Execute", func(t *testing.T) {
		t.Run("returns not supported message for unknown commands", func(t *testing.T) {
			for _, name := range []string{"push", "pull", "", "STATUS"} {
				result, err := controller.Execute(name, []string{"a"})

				assert.NoError(t, err)
				assert.Equal(t, name+" is not supported by git", result)
			}
		})
		t.Run("returns status for the given paths", func(t *testing.T) {
			result, err := controller.Execute("status", []string{"a", "b"})

			assert.NoError(t, err)
			assert.Equal(t, "Status for: a, b", result)
		})
		t.Run("returns log for the given paths", func(t *testing.T) {
			result, err := controller.Execute("log", []string{})

			assert.NoError(t, err)
			assert.Equal(t, "Log for: ", result)
		})
		t.Run("asks for a commit message before checking files", func(t *testing.T) {
			result, err := controller.Execute("commit", []string{"a.txt"}, "")

			assert.NoError(t, err)
			assert.Equal(t, "Please enter a commit message", result)
		})
		t.Run("returns not found error when committing a missing file", func(t *testing.T) {
			result, err := controller.Execute("commit", []string{"invalid_path1.txt", "invalid_path2.txt"}, "test commit message")

			assert.Empty(t, result)
			assert.True(t, errors.IsErrorType(err, errors.ErrNotFound))
			assert.ErrorContains(t, err, "invalid_path1.txt is not a valid file path")
		})
		t.Run("commits existing files", func(t *testing.T) {
			result, err := controller.Execute("commit", []string{testFile1}, "message")

			assert.NoError(t, err)
			assert.Equal(t, "Committed: test-files/test_file1.txt", result)
		})
		t.Run("returns invalid path message when diffing missing files", func(t *testing.T) {
			result, err := controller.Execute("diff", []string{"x.txt", "y.txt"})

			assert.NoError(t, err)
			assert.Equal(t, "file is not a valid file path", result)
		})
		t.Run("returns diff outcome for existing files", func(t *testing.T) {
			result, err := controller.Execute("diff", []string{testFile1, testFile1Copy})
			assert.NoError(t, err)
			assert.Equal(t, "Files are identical", result)

			result, err = controller.Execute("diff", []string{testFile1, testFile2})
			assert.NoError(t, err)
			assert.Equal(t, "Files are different", result)
		})
		t.Run("returns construction error when diff does not get two versions", func(t *testing.T) {
			_, err := controller.Execute("diff", []string{testFile1})
			assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))

			_, err = controller.Execute("diff", []string{testFile1, testFile2, testFile3})
			assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		})
		t.Run("returns validation error when paths is not a list", func(t *testing.T) {
			result, err := controller.Execute("status", "a")

			assert.Empty(t, result)
			assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
		})
	})

	t.Run("ExecuteBatch", func(t *testing.T) {
		t.Run("returns one result per request and keeps going after failures", func(t *testing.T) {
			results := controller.ExecuteBatch([]command.Request{
				{Command: "status", Params: []any{[]any{"a", "b"}}},
				{Command: "commit", Params: []any{[]any{"missing.txt"}, "msg"}},
				{Command: "push", Params: nil},
				{Command: "diff", Params: []any{[]any{testFile1, testFile1Copy}}},
			})

			require.Len(t, results, 4)
			assert.Equal(t, "Status for: a, b", results[0].Output)
			assert.False(t, results[0].Failed())

			assert.True(t, results[1].Failed())
			assert.True(t, errors.IsErrorType(results[1].Err, errors.ErrNotFound))

			assert.Equal(t, "push is not supported by git", results[2].Output)
			assert.False(t, results[2].Failed())

			assert.Equal(t, "Files are identical", results[3].Output)
			assert.Equal(t, "diff", results[3].Request.Command)
		})
		t.Run("returns no results for no requests", func(t *testing.T) {
			assert.Empty(t, controller.ExecuteBatch(nil))
		})
	})
}

func TestControllerPipeline(t *testing.T) {
	logger := log.NewNoop()

	t.Run("does not validate or execute unsupported commands", func(t *testing.T) {
		factory := new(factoryMock)
		defer factory.AssertExpectations(t)
		factory.On("Create", "push", mock.Anything).Return(nil, &command.UnsupportedError{Name: "push"})

		result, err := command.NewController(factory, logger).Execute("push")

		assert.NoError(t, err)
		assert.Equal(t, "push is not supported by git", result)
	})
	t.Run("propagates factory errors", func(t *testing.T) {
		factory := new(factoryMock)
		defer factory.AssertExpectations(t)
		factory.On("Create", "diff", mock.Anything).Return(nil, errors.InvalidArgument(command.NameDiff, "diff command requires exactly 2 versions"))

		_, err := command.NewController(factory, logger).Execute("diff", []string{"a"})

		assert.EqualError(t, err, "invalid argument for entity diff: diff command requires exactly 2 versions")
	})
	t.Run("stops before execute when validation fails", func(t *testing.T) {
		cmd := new(commandMock)
		defer cmd.AssertExpectations(t)
		cmd.On("Validate").Return(errors.InvalidArgument(command.NameStatus, "paths must be a list of strings"))

		factory := new(factoryMock)
		defer factory.AssertExpectations(t)
		factory.On("Create", "status", mock.Anything).Return(cmd, nil)

		_, err := command.NewController(factory, logger).Execute("status", "a")

		assert.ErrorContains(t, err, "paths must be a list of strings")
		cmd.AssertNotCalled(t, "Execute")
	})
	t.Run("skips validation when built without it", func(t *testing.T) {
		cmd := new(commandMock)
		defer cmd.AssertExpectations(t)
		cmd.On("Execute").Return("Status for: a", nil)
		cmd.On("Name").Return("status")

		factory := new(factoryMock)
		defer factory.AssertExpectations(t)
		factory.On("Create", "status", mock.Anything).Return(cmd, nil)

		result, err := command.NewController(factory, logger, command.WithoutValidation()).Execute("status", []string{"a"})

		assert.NoError(t, err)
		assert.Equal(t, "Status for: a", result)
		cmd.AssertNotCalled(t, "Validate")
	})
	t.Run("surfaces type errors from execute when validation is skipped", func(t *testing.T) {
		controller := command.NewController(command.NewFactory(afero.NewMemMapFs(), logger), logger, command.WithoutValidation())

		_, err := controller.Execute("commit", "a.txt", "msg")

		assert.True(t, errors.IsErrorType(err, errors.ErrInvalidArgument))
	})
}

func TestControllerOnDisk(t *testing.T) {
	dir := t.TempDir()
	file1 := filepath.Join(dir, "a.txt")
	file2 := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(file1, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(file2, []byte("same"), 0o600))

	logger := log.NewNoop()
	controller := command.NewController(command.NewFactory(afero.NewOsFs(), logger), logger)

	result, err := controller.Execute("diff", []string{file1, file2})
	assert.NoError(t, err)
	assert.Equal(t, "Files are identical", result)

	result, err = controller.Execute("commit", []string{file1, file2}, "on disk")
	assert.NoError(t, err)
	assert.Equal(t, "Committed: "+file1+", "+file2, result)
}

type factoryMock struct {
	mock.Mock
}

func (f *factoryMock) Create(name string, params ...any) (command.Command, error) {
	args := f.Called(name, params)
	cmd, _ := args.Get(0).(command.Command)
	return cmd, args.Error(1)
}

type commandMock struct {
	mock.Mock
}

func (c *commandMock) Name() string {
	return c.Called().String(0)
}

func (c *commandMock) Validate() error {
	return c.Called().Error(0)
}

func (c *commandMock) Execute() (string, error) {
	args := c.Called()
	return args.String(0), args.Error(1)
}
