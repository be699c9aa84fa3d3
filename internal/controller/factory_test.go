package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	tests := []struct {
		name   string
		useTTY bool
		want   UI
	}{
		{name: "terminal gets the styled UI", useTTY: true, want: &TUI{}},
		{name: "plain output gets the simple UI", useTTY: false, want: &SimpleUI{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})

			assert.IsType(t, tt.want, NewUI(cmd, tt.useTTY))
		})
	}
}

func TestNewUI_WritesToCommandOutput(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewUI(cmd, true)
	require.NoError(t, ui.Start(WithEscalatingMode()))

	assert.Contains(t, buf.String(), "Escalating mode")
}

// openRegularFile returns an open file that is not a terminal.
func openRegularFile(t *testing.T) *os.File {
	t.Helper()

	file, err := os.Create(filepath.Join(t.TempDir(), "transcript.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	return file
}

func TestIsTTY(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		assert.False(t, IsTTY(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		assert.False(t, IsTTY(openRegularFile(t)))
	})

	t.Run("closed file", func(t *testing.T) {
		file := openRegularFile(t)
		require.NoError(t, file.Close())

		assert.False(t, IsTTY(file))
	})

	t.Run("null device", func(t *testing.T) {
		file, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			t.Skipf("%s not available: %v", os.DevNull, err)
		}
		defer file.Close()

		assert.False(t, IsTTY(file), "a character device that is not a terminal")
	})
}

func TestTerminalSize(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		width, height, ok := terminalSize(&bytes.Buffer{})
		assert.False(t, ok)
		assert.Zero(t, width)
		assert.Zero(t, height)
	})

	t.Run("regular file", func(t *testing.T) {
		width, height, ok := terminalSize(openRegularFile(t))
		assert.False(t, ok)
		assert.Zero(t, width)
		assert.Zero(t, height)
	})
}

func TestTUI_DisplayPreview_RegularFileIsPrintedDirectly(t *testing.T) {
	file := openRegularFile(t)

	require.NoError(t, NewTUI(file).DisplayPreview(previewRows(3)))

	data, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "line ___ 3")
}
