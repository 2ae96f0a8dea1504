package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: " warning ", want: LevelWarning},
		{input: "warn", want: LevelWarning},
		{input: "Error", want: LevelError},
		{input: "CRITICAL", want: LevelCritical},
	}

	for _, tt := range tests {
		lvl, err := ParseLevel(tt.input)
		require.NoError(t, err)
		require.Equal(t, tt.want, lvl)
	}
}

func TestParseLevelUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseLevel("verbose")
	require.Error(t, err)
	require.False(t, KnownLevel("verbose"))
	require.True(t, KnownLevel("critical"))
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	levels := Levels()
	for i := 1; i < len(levels); i++ {
		require.Less(t, levels[i-1], levels[i])
	}
}
