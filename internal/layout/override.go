package layout

// FieldOverride patches individual FieldSpec attributes. Only set (non-nil)
// attributes replace the base value; everything else is kept.
type FieldOverride struct {
	MinWidth    *int    `yaml:"min_width" validate:"omitempty,gte=0"`
	MaxWidth    *int    `yaml:"max_width" validate:"omitempty,gte=0"`
	LeadingChar *string `yaml:"leading_char"`
	ClosingChar *string `yaml:"closing_char"`
	PaddingChar *string `yaml:"padding_char"`
	Color       *string `yaml:"color" validate:"omitempty,color_name"`
	Style       *string `yaml:"style" validate:"omitempty,style_list"`
	Wrap        *bool   `yaml:"wrap"`
	WordWrap    *bool   `yaml:"word_wrap"`
}

// Override is one cascade layer: a partial LayoutConfig supplied by a
// template or by a single call. Absent sections leave the base untouched.
type Override struct {
	TotalWidth  *int                                `yaml:"total_width" validate:"omitempty,gt=0"`
	Fields      map[string]FieldOverride            `yaml:"fields" validate:"omitempty,dive"`
	LevelStyles map[string]map[string]StyleOverride `yaml:"level_styles" validate:"omitempty,dive,dive"`
}

// apply patches spec attribute-by-attribute from the override.
func (o FieldOverride) apply(spec FieldSpec) FieldSpec {
	if o.MinWidth != nil {
		spec.MinWidth = *o.MinWidth
	}
	if o.MaxWidth != nil {
		spec.MaxWidth = *o.MaxWidth
	}
	if o.LeadingChar != nil {
		spec.LeadingChar = *o.LeadingChar
	}
	if o.ClosingChar != nil {
		spec.ClosingChar = *o.ClosingChar
	}
	if o.PaddingChar != nil {
		spec.PaddingChar = *o.PaddingChar
	}
	if o.Color != nil {
		spec.Color = *o.Color
	}
	if o.Style != nil {
		spec.Style = *o.Style
	}
	if o.Wrap != nil {
		spec.Wrap = *o.Wrap
	}
	if o.WordWrap != nil {
		spec.WordWrap = *o.WordWrap
	}
	return spec
}

// apply patches only color and style.
func (s StyleOverride) apply(spec FieldSpec) FieldSpec {
	if s.Color != nil {
		spec.Color = *s.Color
	}
	if s.Style != nil {
		spec.Style = *s.Style
	}
	return spec
}
