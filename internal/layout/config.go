// Package layout renders one log event into a fixed-width block of terminal
// lines: a message column, a derived padding column that fills the block to a
// target total width, and optional reason and status columns. Field widths
// are measured in display columns, each field wraps or truncates under its
// own budget, and the wrapped fragments of all fields are recombined line by
// line so the block stays aligned.
package layout

// Field names of the four logical columns. The set is fixed: overrides naming
// anything else are dropped with a diagnostic.
const (
	FieldMessage = "message"
	FieldPadding = "padding"
	FieldReason  = "reason"
	FieldStatus  = "status"
)

// FieldNames lists the four column names in render order.
func FieldNames() []string {
	return []string{FieldMessage, FieldPadding, FieldReason, FieldStatus}
}

// KnownField reports whether name is one of the four column names.
func KnownField(name string) bool {
	switch name {
	case FieldMessage, FieldPadding, FieldReason, FieldStatus:
		return true
	}
	return false
}

// FieldSpec is the resolved configuration of one column.
type FieldSpec struct {
	// MinWidth is the smallest content width the column may take. Only the
	// padding column enforces it today; it must not be negative.
	MinWidth int
	// MaxWidth caps the column's rendered width including decoration.
	// Zero means uncapped. A cap below MinWidth is a caller error and is
	// not corrected here.
	MaxWidth int
	// LeadingChar and ClosingChar bracket the column's wrapped block,
	// e.g. "(" and ")" around the reason.
	LeadingChar string
	ClosingChar string
	// PaddingChar fills the padding column.
	PaddingChar string
	Color       string
	Style       string
	// Wrap selects wrapping over truncation when content exceeds the width.
	Wrap bool
	// WordWrap prefers whitespace break points while wrapping.
	WordWrap bool
}

// StyleOverride adjusts only the color and style of a field, as level styles do.
type StyleOverride struct {
	Color *string `yaml:"color" validate:"omitempty,color_name"`
	Style *string `yaml:"style" validate:"omitempty,style_list"`
}

// LayoutConfig is the effective configuration of one render: the block's
// target total width, the four field specs, and per-level style overrides.
type LayoutConfig struct {
	TotalWidth  int
	Fields      map[string]FieldSpec
	LevelStyles map[string]map[string]StyleOverride
}

// DefaultConfig returns the system defaults: an 80-column block with a
// word-wrapped message, a dot-filled padding column, a parenthesised reason,
// a short status badge, and status coloring per level.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		TotalWidth: 80,
		Fields: map[string]FieldSpec{
			FieldMessage: {MinWidth: 20, MaxWidth: 55, Wrap: true, WordWrap: true},
			FieldPadding: {MinWidth: 1, PaddingChar: ".", LeadingChar: " ", ClosingChar: " "},
			FieldReason:  {MaxWidth: 22, LeadingChar: "(", ClosingChar: ")", WordWrap: true},
			FieldStatus:  {MaxWidth: 10},
		},
		LevelStyles: map[string]map[string]StyleOverride{
			LevelDebug.String():    {FieldStatus: styleOf("blue", "bold")},
			LevelInfo.String():     {FieldStatus: styleOf("green", "bold")},
			LevelWarning.String():  {FieldStatus: styleOf("yellow", "bold")},
			LevelError.String():    {FieldStatus: styleOf("red", "bold")},
			LevelCritical.String(): {FieldStatus: styleOf("red", "bold,blink")},
		},
	}
}

func styleOf(color, style string) StyleOverride {
	return StyleOverride{Color: &color, Style: &style}
}

// Clone returns a deep copy; mutating the copy never touches the receiver.
func (c LayoutConfig) Clone() LayoutConfig {
	out := LayoutConfig{TotalWidth: c.TotalWidth}

	if c.Fields != nil {
		out.Fields = make(map[string]FieldSpec, len(c.Fields))
		for name, spec := range c.Fields {
			out.Fields[name] = spec
		}
	}

	if c.LevelStyles != nil {
		out.LevelStyles = make(map[string]map[string]StyleOverride, len(c.LevelStyles))
		for level, fields := range c.LevelStyles {
			copied := make(map[string]StyleOverride, len(fields))
			for name, so := range fields {
				copied[name] = so.clone()
			}
			out.LevelStyles[level] = copied
		}
	}

	return out
}

func (s StyleOverride) clone() StyleOverride {
	var out StyleOverride
	if s.Color != nil {
		v := *s.Color
		out.Color = &v
	}
	if s.Style != nil {
		v := *s.Style
		out.Style = &v
	}
	return out
}

// StripStyles clears every field's color and style, for callers writing to
// destinations that must not receive escape sequences. Widths are unaffected.
func (c *LayoutConfig) StripStyles() {
	for name, spec := range c.Fields {
		spec.Color = ""
		spec.Style = ""
		c.Fields[name] = spec
	}
}
