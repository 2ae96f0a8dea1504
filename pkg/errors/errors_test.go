package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("default.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "default.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "default.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("fields.message.max_width", "must be at least min_width", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "fields.message.max_width", validationErr.Field)
	require.Contains(t, validationErr.Message, "min_width")
}

func TestConfigErrorNamesFieldAndAttribute(t *testing.T) {
	t.Parallel()

	err := NewConfigError("message", "min_width", "must not be negative")

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "message", configErr.Field)
	require.Equal(t, "min_width", configErr.Attr)
	require.Contains(t, err.Error(), `field "message"`)
	require.Contains(t, err.Error(), "must not be negative")
}

func TestConfigErrorWithoutAttribute(t *testing.T) {
	t.Parallel()

	err := NewConfigError("banner", "", "unknown field")
	require.Contains(t, err.Error(), `field "banner"`)
	require.NotContains(t, err.Error(), "attribute")
}
