package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/klogd/klog/internal/layout"
	klogerrors "github.com/klogd/klog/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Registry holds named templates. Lookups for unknown names fall back to the
// "default" template when one is registered.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Add registers a template, replacing any previous one with the same name.
func (r *Registry) Add(t *Template) {
	if t == nil || t.Name == "" {
		return
	}
	r.templates[t.Name] = t
}

// Get returns the named template, the "default" template when the name is
// unknown, or nil when neither exists.
func (r *Registry) Get(name string) *Template {
	if r == nil {
		return nil
	}
	if t, ok := r.templates[name]; ok {
		return t
	}
	return r.templates["default"]
}

// Names lists the registered template names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load parses and validates a single template file. The template's name is
// the file's base name without its extension.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, klogerrors.NewParseError(path, 0, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := decode(name, data)
	if err != nil {
		var validationErr *klogerrors.ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		return nil, klogerrors.NewParseError(path, extractLine(err), err)
	}

	return t, nil
}

// LoadDir loads every .yaml/.yml file in dir into the registry.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return klogerrors.NewParseError(dir, 0, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		r.Add(t)
	}

	return nil
}

// Builtin returns a registry preloaded with the shipped templates: "default"
// (level-colored status badges with emoji defaults), "basic" (no badge
// defaults, muted reason), and "none" (undecorated plain columns).
func Builtin() *Registry {
	r := NewRegistry()

	r.Add(&Template{
		Name: "default",
		Defaults: map[string]LevelDefault{
			layout.LevelDebug.String():    {Status: "🐛"},
			layout.LevelInfo.String():     {Status: "✅"},
			layout.LevelWarning.String():  {Status: "⚠️"},
			layout.LevelError.String():    {Status: "❌"},
			layout.LevelCritical.String(): {Status: "🛑"},
		},
	})

	grey := "grey"
	r.Add(&Template{
		Name: "basic",
		Override: layout.Override{
			Fields: map[string]layout.FieldOverride{
				layout.FieldReason: {Color: &grey},
			},
		},
	})

	empty := ""
	space := " "
	r.Add(&Template{
		Name: "none",
		Override: layout.Override{
			Fields: map[string]layout.FieldOverride{
				layout.FieldPadding: {PaddingChar: &space, LeadingChar: &empty, ClosingChar: &empty},
				layout.FieldReason:  {LeadingChar: &empty, ClosingChar: &empty},
			},
		},
	})

	return r
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
