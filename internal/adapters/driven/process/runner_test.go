package process

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faster-beamer/internal/core/ports/driven"
)

func requireShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell required")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestExecRunner_ImplementsInterface(t *testing.T) {
	var _ driven.CommandRunner = NewExecRunner()
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	sh := requireShell(t)

	res, err := NewExecRunner().Run(context.Background(), driven.Command{
		Name: sh,
		Args: []string{"-c", "echo out; echo err >&2"},
	})

	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	sh := requireShell(t)

	res, err := NewExecRunner().Run(context.Background(), driven.Command{
		Name: sh,
		Args: []string{"-c", "exit 3"},
	})

	require.NoError(t, err)
	assert.False(t, res.Success())
	assert.Equal(t, 3, res.ExitCode)
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	sh := requireShell(t)
	dir := t.TempDir()

	res, err := NewExecRunner().Run(context.Background(), driven.Command{
		Name: sh,
		Dir:  dir,
		Args: []string{"-c", "pwd -P"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Stdout)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	res, err := NewExecRunner().Run(context.Background(), driven.Command{
		Name: "faster-beamer-no-such-binary",
	})

	require.Error(t, err)
	assert.Equal(t, 127, res.ExitCode)
}

func TestExecRunner_ArgumentsAreNotInterpolated(t *testing.T) {
	sh := requireShell(t)

	res, err := NewExecRunner().Run(context.Background(), driven.Command{
		Name: sh,
		Args: []string{"-c", `printf '%s' "$0"`, "a b; echo injected"},
	})

	require.NoError(t, err)
	assert.Equal(t, "a b; echo injected", string(res.Stdout))
}
