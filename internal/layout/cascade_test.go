package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	klogerrors "github.com/klogd/klog/pkg/errors"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }
func boolp(v bool) *bool    { return &v }

func TestResolveDefaultsOnly(t *testing.T) {
	t.Parallel()

	cfg, diags := Resolve(DefaultConfig(), nil, LevelInfo, nil)
	require.Empty(t, diags)
	require.Equal(t, 80, cfg.TotalWidth)

	// Level styles land on the status field.
	require.Equal(t, "green", cfg.Fields[FieldStatus].Color)
	require.Equal(t, "bold", cfg.Fields[FieldStatus].Style)
}

func TestResolveLayerPrecedence(t *testing.T) {
	t.Parallel()

	tmpl := &Override{
		TotalWidth: intp(100),
		Fields: map[string]FieldOverride{
			FieldMessage: {MaxWidth: intp(40), Color: strp("blue")},
			FieldStatus:  {Color: strp("white")},
		},
	}
	call := &Override{
		Fields: map[string]FieldOverride{
			FieldMessage: {MaxWidth: intp(30)},
		},
	}

	cfg, diags := Resolve(DefaultConfig(), tmpl, LevelError, call)
	require.Empty(t, diags)

	// Per-call beats template.
	require.Equal(t, 30, cfg.Fields[FieldMessage].MaxWidth)
	// Template beats defaults where the call is silent.
	require.Equal(t, 100, cfg.TotalWidth)
	require.Equal(t, "blue", cfg.Fields[FieldMessage].Color)
	// Level styles beat the template's status color.
	require.Equal(t, "red", cfg.Fields[FieldStatus].Color)
	// Untouched attributes survive from the defaults.
	require.True(t, cfg.Fields[FieldMessage].WordWrap)
	require.Equal(t, 20, cfg.Fields[FieldMessage].MinWidth)
}

func TestResolveNeverMutatesInputs(t *testing.T) {
	t.Parallel()

	defaults := DefaultConfig()
	tmpl := &Override{
		TotalWidth: intp(120),
		Fields: map[string]FieldOverride{
			FieldReason: {Wrap: boolp(true), LeadingChar: strp("[")},
		},
	}

	_, _ = Resolve(defaults, tmpl, LevelCritical, nil)

	require.Equal(t, DefaultConfig(), defaults)
	require.Equal(t, 120, *tmpl.TotalWidth)
	require.Equal(t, "[", *tmpl.Fields[FieldReason].LeadingChar)
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	tmpl := &Override{Fields: map[string]FieldOverride{FieldMessage: {MaxWidth: intp(44)}}}

	first, _ := Resolve(DefaultConfig(), tmpl, LevelWarning, nil)
	second, _ := Resolve(DefaultConfig(), tmpl, LevelWarning, nil)
	require.Equal(t, first, second)
}

func TestResolveDropsUnknownFieldWithDiagnostic(t *testing.T) {
	t.Parallel()

	tmpl := &Override{Fields: map[string]FieldOverride{"banner": {MinWidth: intp(4)}}}

	cfg, diags := Resolve(DefaultConfig(), tmpl, LevelInfo, nil)
	require.Len(t, diags, 1)

	var configErr *klogerrors.ConfigError
	require.ErrorAs(t, diags[0], &configErr)
	require.Equal(t, "banner", configErr.Field)

	_, exists := cfg.Fields["banner"]
	require.False(t, exists)
}

func TestResolveDropsNegativeWidthsButKeepsRest(t *testing.T) {
	t.Parallel()

	tmpl := &Override{Fields: map[string]FieldOverride{
		FieldMessage: {MinWidth: intp(-5), Color: strp("purple")},
	}}

	cfg, diags := Resolve(DefaultConfig(), tmpl, LevelInfo, nil)
	require.Len(t, diags, 1)
	require.Contains(t, diags[0].Error(), "min_width")

	// The valid attribute of the same entry still applies.
	require.Equal(t, "purple", cfg.Fields[FieldMessage].Color)
	require.Equal(t, 20, cfg.Fields[FieldMessage].MinWidth)
}

func TestResolveRejectsNonPositiveTotalWidth(t *testing.T) {
	t.Parallel()

	cfg, diags := Resolve(DefaultConfig(), &Override{TotalWidth: intp(0)}, LevelInfo, nil)
	require.Len(t, diags, 1)
	require.Equal(t, 80, cfg.TotalWidth)
}

func TestResolveTemplateLevelStylesFeedLevelLayer(t *testing.T) {
	t.Parallel()

	tmpl := &Override{LevelStyles: map[string]map[string]StyleOverride{
		LevelDebug.String(): {FieldMessage: {Color: strp("grey")}},
	}}

	cfg, diags := Resolve(DefaultConfig(), tmpl, LevelDebug, nil)
	require.Empty(t, diags)
	require.Equal(t, "grey", cfg.Fields[FieldMessage].Color)
	// Default DEBUG status styling still applies.
	require.Equal(t, "blue", cfg.Fields[FieldStatus].Color)
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	original := DefaultConfig()
	copied := original.Clone()

	spec := copied.Fields[FieldMessage]
	spec.Color = "red"
	copied.Fields[FieldMessage] = spec
	*copied.LevelStyles[LevelInfo.String()][FieldStatus].Color = "black"

	require.Equal(t, "", original.Fields[FieldMessage].Color)
	require.Equal(t, "green", *original.LevelStyles[LevelInfo.String()][FieldStatus].Color)
}
