package layout

import (
	"fmt"

	klogerrors "github.com/klogd/klog/pkg/errors"
)

// Resolve folds the cascade layers into the effective configuration of one
// render: system defaults, then the template override, then the level's style
// overrides, then the per-call override. Later layers win attribute by
// attribute; no input is ever mutated and every call returns an independent
// value.
//
// Malformed override entries (unknown field names, negative widths) are
// skipped rather than fatal: the returned diagnostics describe everything
// that was dropped, and the configuration is always usable.
func Resolve(defaults LayoutConfig, templateOverride *Override, level Level, callOverride *Override) (LayoutConfig, []error) {
	cfg := defaults.Clone()
	var diags []error

	diags = append(diags, cfg.merge(templateOverride)...)

	if styles, ok := cfg.LevelStyles[level.String()]; ok {
		for name, so := range styles {
			spec, known := cfg.Fields[name]
			if !known {
				diags = append(diags, klogerrors.NewConfigError(name, "",
					fmt.Sprintf("level %s styles an unknown field", level)))
				continue
			}
			cfg.Fields[name] = so.apply(spec)
		}
	}

	diags = append(diags, cfg.merge(callOverride)...)

	return cfg, diags
}

// merge folds one override layer into the receiver in place. The receiver is
// always a private clone; callers' inputs stay untouched.
func (c *LayoutConfig) merge(o *Override) []error {
	if o == nil {
		return nil
	}

	var diags []error

	if o.TotalWidth != nil {
		if *o.TotalWidth <= 0 {
			diags = append(diags, klogerrors.NewConfigError("", "total_width", "must be positive"))
		} else {
			c.TotalWidth = *o.TotalWidth
		}
	}

	for name, fo := range o.Fields {
		spec, known := c.Fields[name]
		if !known {
			diags = append(diags, klogerrors.NewConfigError(name, "", "unknown field"))
			continue
		}
		fo, fieldDiags := fo.sanitize(name)
		diags = append(diags, fieldDiags...)
		c.Fields[name] = fo.apply(spec)
	}

	for level, fields := range o.LevelStyles {
		if c.LevelStyles == nil {
			c.LevelStyles = make(map[string]map[string]StyleOverride)
		}
		merged, ok := c.LevelStyles[level]
		if !ok {
			merged = make(map[string]StyleOverride, len(fields))
			c.LevelStyles[level] = merged
		}
		for name, so := range fields {
			if !KnownField(name) {
				diags = append(diags, klogerrors.NewConfigError(name, "",
					fmt.Sprintf("level %s styles an unknown field", level)))
				continue
			}
			merged[name] = so.clone()
		}
	}

	return diags
}

// sanitize drops negative width attributes from the override, reporting each.
func (o FieldOverride) sanitize(field string) (FieldOverride, []error) {
	var diags []error
	if o.MinWidth != nil && *o.MinWidth < 0 {
		diags = append(diags, klogerrors.NewConfigError(field, "min_width", "must not be negative"))
		o.MinWidth = nil
	}
	if o.MaxWidth != nil && *o.MaxWidth < 0 {
		diags = append(diags, klogerrors.NewConfigError(field, "max_width", "must not be negative"))
		o.MaxWidth = nil
	}
	return o, diags
}
