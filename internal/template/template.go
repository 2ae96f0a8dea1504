// Package template loads named layout templates from YAML documents. A
// template carries a partial layout override plus per-level default status
// badges; the engine folds it into the configuration cascade at render time.
package template

import (
	"gopkg.in/yaml.v3"

	"github.com/klogd/klog/internal/layout"
)

// Document is the YAML shape of a template file: the override sections plus
// a defaults section assigning a status badge per level.
type Document struct {
	layout.Override `yaml:",inline"`
	Defaults        map[string]LevelDefault `yaml:"defaults"`
}

// LevelDefault holds per-level fallbacks applied when a call omits the value.
type LevelDefault struct {
	Status string `yaml:"status"`
}

// Template is a named, validated layout template.
type Template struct {
	Name     string
	Override layout.Override
	Defaults map[string]LevelDefault
}

// DefaultStatus returns the template's status badge for the level, or empty.
func (t *Template) DefaultStatus(level layout.Level) string {
	if t == nil || t.Defaults == nil {
		return ""
	}
	return t.Defaults[level.String()].Status
}

// decode parses and validates one YAML document into a Template.
func decode(name string, data []byte) (*Template, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return &Template{Name: name, Override: doc.Override, Defaults: doc.Defaults}, nil
}
