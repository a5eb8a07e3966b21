package proxmox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Output(t *testing.T) {
	t.Parallel()
	run := NewRunner()

	out, err := run.Output(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecRunner_Output_FailureCarriesStderr(t *testing.T) {
	t.Parallel()
	run := NewRunner()

	_, err := run.Output(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
}

func TestExecRunner_Stream_InterleavesStdoutAndStderr(t *testing.T) {
	t.Parallel()
	run := NewRunner()

	var lines []string
	err := run.Stream(context.Background(), func(l string) { lines = append(lines, l) },
		"sh", "-c", "echo one; echo two >&2; echo three")

	require.NoError(t, err)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines, "two")
}

func TestExecRunner_Stream_NonZeroExit(t *testing.T) {
	t.Parallel()
	run := NewRunner()

	var lines []string
	err := run.Stream(context.Background(), func(l string) { lines = append(lines, l) },
		"sh", "-c", "echo partial; exit 1")

	require.Error(t, err)
	// Output produced before the failure is still delivered
	assert.Equal(t, []string{"partial"}, lines)
}
