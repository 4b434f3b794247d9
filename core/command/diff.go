package command

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/goto/gitsim/internal/errors"
	"github.com/goto/gitsim/internal/textdiff"
)

const (
	MessageInvalidFilePath = "file is not a valid file path"
	MessageFilesIdentical  = "Files are identical"
	MessageFilesDifferent  = "Files are different"

	diffVersionCount = 2
	compareChunkSize = 32 * 1024
)

// Diff compares the content of two files, the versions being compared.
type Diff struct {
	fs afero.Fs

	file1 string
	file2 string
}

// NewDiff fails right away unless exactly two versions are given.
func NewDiff(fs afero.Fs, params ...any) (*Diff, error) {
	raw, err := param(NameDiff, params, 0, "versions")
	if err != nil {
		return nil, err
	}
	versions, err := stringList(NameDiff, raw, "versions")
	if err != nil {
		return nil, err
	}
	if len(versions) != diffVersionCount {
		return nil, errors.InvalidArgument(NameDiff, "diff command requires exactly 2 versions")
	}

	return &Diff{
		fs:    fs,
		file1: versions[0],
		file2: versions[1],
	}, nil
}

func (*Diff) Name() string {
	return NameDiff
}

// Validate has nothing left to check, the version count is enforced on construction.
func (*Diff) Validate() error {
	return nil
}

// Execute reports a missing file as a message instead of an error, unlike Commit.
func (d *Diff) Execute() (string, error) {
	size1, valid, err := d.regularFileSize(d.file1)
	if err != nil {
		return "", err
	}
	if !valid {
		return MessageInvalidFilePath, nil
	}
	size2, valid, err := d.regularFileSize(d.file2)
	if err != nil {
		return "", err
	}
	if !valid {
		return MessageInvalidFilePath, nil
	}

	if size1 != size2 {
		return MessageFilesDifferent, nil
	}

	same, err := d.sameContent()
	if err != nil {
		return "", err
	}
	if same {
		return MessageFilesIdentical, nil
	}
	return MessageFilesDifferent, nil
}

// Unified renders a line based diff of both files, empty when they are identical.
// Unlike Execute it holds both files in memory and stats each of them again,
// it is meant for previewing changes of small files.
func (d *Diff) Unified(contextLines int) (string, error) {
	content1, err := d.readFile(d.file1)
	if err != nil {
		return "", err
	}
	content2, err := d.readFile(d.file2)
	if err != nil {
		return "", err
	}
	if bytes.Equal(content1, content2) {
		return "", nil
	}

	return textdiff.Unified(
		strings.Split(string(content1), "\n"),
		strings.Split(string(content2), "\n"),
		contextLines,
	), nil
}

func (d *Diff) regularFileSize(path string) (int64, bool, error) {
	info, err := d.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(NameDiff, "unable to stat "+path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, false, nil
	}
	return info.Size(), true, nil
}

func (d *Diff) readFile(path string) ([]byte, error) {
	_, valid, err := d.regularFileSize(path)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errors.NotFound(NameDiff, path+" is not a valid file path")
	}

	content, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return nil, errors.Wrap(NameDiff, "unable to read "+path, err)
	}
	return content, nil
}

func (d *Diff) sameContent() (bool, error) {
	f1, err := d.fs.Open(d.file1)
	if err != nil {
		return false, errors.Wrap(NameDiff, "unable to open "+d.file1, err)
	}
	defer f1.Close()

	f2, err := d.fs.Open(d.file2)
	if err != nil {
		return false, errors.Wrap(NameDiff, "unable to open "+d.file2, err)
	}
	defer f2.Close()

	buf1 := make([]byte, compareChunkSize)
	buf2 := make([]byte, compareChunkSize)
	for {
		n1, err1 := io.ReadFull(f1, buf1)
		if err1 != nil && !isEndOfFile(err1) {
			return false, errors.Wrap(NameDiff, "unable to read "+d.file1, err1)
		}
		n2, err2 := io.ReadFull(f2, buf2)
		if err2 != nil && !isEndOfFile(err2) {
			return false, errors.Wrap(NameDiff, "unable to read "+d.file2, err2)
		}

		if !bytes.Equal(buf1[:n1], buf2[:n2]) {
			return false, nil
		}
		if err1 != nil || err2 != nil {
			return err1 != nil && err2 != nil, nil
		}
	}
}

func isEndOfFile(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF //nolint: errorlint
}
