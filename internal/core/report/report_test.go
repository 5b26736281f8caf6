package report

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Plain(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Warn("careful")
	r.Error(errors.New("disk on fire"))
	r.Success("proj")

	assert.Equal(t,
		"careful\nFailed to create project. Reason:\ndisk on fire\nCreated project successfully! Name: proj\n",
		buf.String(),
	)
}

func TestReporter_Colored(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := New(&buf, true)

	r.Warn("careful")
	out := buf.String()

	assert.Contains(t, out, "\x1b[33m", "warnings are yellow")
	assert.Contains(t, out, "careful")

	buf.Reset()
	r.Success("proj")
	assert.Contains(t, buf.String(), "\x1b[32m", "success is green")

	buf.Reset()
	r.MissingName()
	assert.Contains(t, buf.String(), "\x1b[31m", "missing name is red")
}

func TestReporter_Usage(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, true).Usage()

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "usage is never colored")
	for _, flag := range []string{"--no-opt", "--no-config", "--lib-not-main", "--template-dir=path/to/directory"} {
		assert.Contains(t, out, flag)
	}
}

func TestColorEnabled_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.False(t, ColorEnabled(f), "a regular file is not a terminal")
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(os.Stdin))
}
