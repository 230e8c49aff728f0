package runner_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cpplongest/pkg/fsutil"
	"github.com/yaklabco/cpplongest/pkg/runner"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.i")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "# 10 \"foo.c\"\nX\n# 3 \"bar.h\" 1\nlonger\n")

	var echo bytes.Buffer
	result, err := runner.Run(context.Background(), runner.Options{
		Path: path,
		Echo: &echo,
	})
	require.NoError(t, err)

	longest := result.Longest()
	assert.Equal(t, "bar.h", longest.File)
	assert.Equal(t, 3, longest.Line)
	assert.Equal(t, "longer", string(longest.Content))

	assert.Equal(t, "# 10 \"foo.c\"\n# 3 \"bar.h\" 1\n", echo.String())

	assert.Equal(t, int64(36), result.Stats.Bytes)
	assert.Equal(t, 4, result.Stats.Lines)
	assert.Equal(t, 2, result.Stats.Markers)
}

func TestRun_LabelsFileInputWithPath(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "one\ntwo\nthree\n")

	result, err := runner.Run(context.Background(), runner.Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, path, result.Longest().File)
	assert.Equal(t, 3, result.Longest().Line)
	assert.Equal(t, path, result.Scan.Input)
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "ab\nabc\n")
	file, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	result, err := runner.Run(context.Background(), runner.Options{Stdin: file})
	require.NoError(t, err)

	assert.Equal(t, fsutil.StdinLabel, result.Longest().File)
	assert.Equal(t, 2, result.Longest().Line)
}

func TestRun_DirectoryFails(t *testing.T) {
	t.Parallel()

	var echo bytes.Buffer
	result, err := runner.Run(context.Background(), runner.Options{
		Path: t.TempDir(),
		Echo: &echo,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, fsutil.ErrNotRegular)
	assert.Empty(t, echo.String())
}

func TestResult_LongestNil(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.Equal(t, 0, result.Longest().Length)
}
