package command

import (
	"github.com/spf13/afero"

	"github.com/goto/gitsim/internal/errors"
)

const MessageEmptyCommit = "Please enter a commit message"

// Commit checks the files to commit exist, nothing is recorded.
type Commit struct {
	fs afero.Fs

	rawFilePaths any
	rawMessage   any
}

func NewCommit(fs afero.Fs, params ...any) (*Commit, error) {
	filePaths, err := param(NameCommit, params, 0, "file_paths")
	if err != nil {
		return nil, err
	}
	message, err := param(NameCommit, params, 1, "message")
	if err != nil {
		return nil, err
	}

	return &Commit{
		fs:           fs,
		rawFilePaths: filePaths,
		rawMessage:   message,
	}, nil
}

func (*Commit) Name() string {
	return NameCommit
}

func (c *Commit) Validate() error {
	if _, err := stringList(NameCommit, c.rawFilePaths, "file_paths"); err != nil {
		return err
	}
	_, err := stringValue(NameCommit, c.rawMessage, "message")
	return err
}

// Execute asks for a message before looking at the files, so an empty
// message wins over missing files. The first missing file fails the commit.
func (c *Commit) Execute() (string, error) {
	message, err := stringValue(NameCommit, c.rawMessage, "message")
	if err != nil {
		return "", err
	}
	if message == "" {
		return MessageEmptyCommit, nil
	}

	filePaths, err := stringList(NameCommit, c.rawFilePaths, "file_paths")
	if err != nil {
		return "", err
	}

	for _, path := range filePaths {
		exists, err := afero.Exists(c.fs, path)
		if err != nil {
			return "", errors.InternalError(NameCommit, "unable to check file "+path, err)
		}
		if !exists {
			return "", errors.NotFound(NameCommit, path+" is not a valid file path")
		}
	}

	return "Committed: " + joinPaths(filePaths), nil
}
