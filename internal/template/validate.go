package template

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/klogd/klog/internal/layout"
	klogerrors "github.com/klogd/klog/pkg/errors"
)

// validateDocument performs structural and cross-field validation on a parsed
// template document. Template files are authored configuration, so unlike the
// render-time cascade this boundary is strict: a bad document is rejected.
func validateDocument(doc *Document) error {
	if doc == nil {
		return klogerrors.NewValidationError("template", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for name, field := range doc.Fields {
		if !layout.KnownField(name) {
			return klogerrors.NewValidationError(fieldPath(name, ""), "unknown field name", nil)
		}
		if field.MinWidth != nil && field.MaxWidth != nil && *field.MaxWidth < *field.MinWidth {
			return klogerrors.NewValidationError(fieldPath(name, "max_width"),
				fmt.Sprintf("must be at least min_width (%d)", *field.MinWidth), nil)
		}
	}

	for level, fields := range doc.LevelStyles {
		if !layout.KnownLevel(level) {
			return klogerrors.NewValidationError("level_styles."+level, "unknown level name", nil)
		}
		for name := range fields {
			if !layout.KnownField(name) {
				return klogerrors.NewValidationError(
					fmt.Sprintf("level_styles.%s.%s", level, name), "unknown field name", nil)
			}
		}
	}

	for level := range doc.Defaults {
		if !layout.KnownLevel(level) {
			return klogerrors.NewValidationError("defaults."+level, "unknown level name", nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into klog validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return klogerrors.NewValidationError(field, msg, err)
	}

	return klogerrors.NewValidationError("template", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldPath(field, attr string) string {
	if attr == "" {
		return "fields." + field
	}
	return fmt.Sprintf("fields.%s.%s", field, attr)
}
