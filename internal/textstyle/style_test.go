package textstyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyColorWrapsWithReset(t *testing.T) {
	t.Parallel()

	out := Apply("ready", "green", "")
	require.Equal(t, "\x1b[32mready\x1b[0m", out)
}

func TestApplyStyleListConcatenatesCodes(t *testing.T) {
	t.Parallel()

	out := Apply("alert", "", "bold,blink")
	require.Equal(t, "\x1b[1m\x1b[5malert\x1b[0m", out)
}

func TestApplyColorThenStyleNests(t *testing.T) {
	t.Parallel()

	out := Apply("x", "red", "bold")
	require.Equal(t, "\x1b[1m\x1b[31mx\x1b[0m\x1b[0m", out)
}

func TestApplyUnknownNamesAreNoOps(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain", Apply("plain", "chartreuse", ""))
	require.Equal(t, "plain", Apply("plain", "", "wiggly"))
	require.Equal(t, "plain", Apply("plain", "", ""))
}

func TestApplyTrimsNameWhitespace(t *testing.T) {
	t.Parallel()

	out := Apply("x", " blue ", " bold , italic ")
	require.Equal(t, "\x1b[1m\x1b[3m\x1b[34mx\x1b[0m\x1b[0m", out)
}

func TestKnownColor(t *testing.T) {
	t.Parallel()

	require.True(t, KnownColor("light_orange"))
	require.True(t, KnownColor(" grey "))
	require.False(t, KnownColor("mauve"))
}

func TestKnownStyle(t *testing.T) {
	t.Parallel()

	require.True(t, KnownStyle("bold"))
	require.True(t, KnownStyle("bold, italic"))
	require.True(t, KnownStyle("default"))
	require.False(t, KnownStyle("bold,sparkle"))
}
