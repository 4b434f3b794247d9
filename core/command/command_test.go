package command_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testFile1     = "test-files/test_file1.txt"
	testFile1Copy = "test-files/test_file1_copy.txt"
	testFile2     = "test-files/test_file2.txt"
	testFile3     = "test-files/test_file3.txt"
)

// newTestFs mirrors the fixture files the commands are exercised against
func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string]string{
		testFile1:     "hello world\nsecond line\n",
		testFile1Copy: "hello world\nsecond line\n",
		testFile2:     "hello earth\nsecond line\n",
		testFile3:     "hello world\nsecond line\nthird line\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	require.NoError(t, fs.MkdirAll("test-files/nested", 0o755))
	return fs
}
