package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinnBaltazar1111/kitsune/internal/domain/sequence"
)

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	seq := sequence.NewBuilder().Left(3).Wait(2).Action(1).Build()
	require.NoError(t, sequence.SaveFile(path, seq))

	cmd := NewInspectCommand(&RootOptions{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "6 frames")
	assert.Contains(t, out.String(), "idle frames: 2")
	assert.Contains(t, out.String(), "Left")
	assert.Contains(t, out.String(), "Action")
}

func TestInspectCommand_MissingFile(t *testing.T) {
	cmd := NewInspectCommand(&RootOptions{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.json")})

	assert.Error(t, cmd.Execute())
}
