package main

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandBlock(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "--no-color", "render",
		"-m", "System check completed successfully",
		"-r", "Plenty of space left",
		"-l", "info",
		"-w", "80")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 1)
	require.Equal(t, 80, ansi.PrintableRuneWidth(lines[0]))
	require.Contains(t, lines[0], "System check completed successfully")
	require.Contains(t, lines[0], "(Plenty of space left)")
	require.Contains(t, lines[0], "✅")
	require.NotContains(t, stdout, "\x1b[")
}

func TestRenderCommandWrapsLongMessage(t *testing.T) {
	t.Parallel()

	message := "The quick brown fox jumps over the lazy dog while the cat watches from afar"
	stdout, _, err := executeCommand(t, "--no-color", "render",
		"-m", message,
		"-l", "warning",
		"-w", "80")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		require.Equal(t, 80, ansi.PrintableRuneWidth(line))
	}
}

func TestRenderCommandExplicitStatus(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "--no-color", "render",
		"-m", "deploy finished",
		"-s", "done",
		"-w", "60")
	require.NoError(t, err)
	require.Contains(t, stdout, "done")
	require.NotContains(t, stdout, "✅")
}

func TestRenderCommandBasicTemplateWidth(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "--no-color", "render",
		"-m", "short",
		"-r", "why",
		"-t", "basic",
		"-w", "40")
	require.NoError(t, err)

	line := strings.TrimRight(stdout, "\n")
	require.Len(t, line, 40)
}

func TestRenderCommandUnknownLevel(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "render", "-m", "x", "-l", "verbose")
	require.Error(t, err)
}

func TestRenderCommandRequiresMessage(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, "render")
	require.Error(t, err)
}

func TestRenderCommandUnknownTemplateFallsBack(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(t, "--no-color", "render",
		"-m", "hello",
		"-t", "missing",
		"-w", "50")
	require.NoError(t, err)
	require.Contains(t, stdout, "hello")
}
