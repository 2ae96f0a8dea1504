// Package logger is the leveled front-end over the layout engine: it
// resolves the template for each event, fills in per-level default status
// badges, renders the line block, and writes it out. Configuration problems
// are reported on a separate diagnostics channel and never block an event.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/klogd/klog/internal/layout"
	"github.com/klogd/klog/internal/template"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	// Level is the minimum severity to emit ("debug" … "critical").
	// Empty means "info".
	Level string
	// Template names the default template; per-call options can override it.
	Template string
	// Registry resolves template names. Nil means the built-in templates.
	Registry *template.Registry
	// Writer receives rendered blocks. Nil means os.Stdout.
	Writer io.Writer
	// Defaults replaces the system default layout when set.
	Defaults *layout.LayoutConfig
	// NoColor disables styling regardless of the writer. Styling is also
	// disabled automatically when the writer is a non-terminal file.
	NoColor bool
	// Diagnostics receives dropped-override reports. Nil means os.Stderr.
	Diagnostics io.Writer
}

// Logger renders events into columnar line blocks. It holds no per-event
// state, so a single Logger is safe for concurrent use.
type Logger struct {
	writer    io.Writer
	threshold layout.Level
	template  string
	registry  *template.Registry
	defaults  layout.LayoutConfig
	color     bool
	diag      zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	threshold := layout.LevelInfo
	if opts.Level != "" {
		parsed, err := layout.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		threshold = parsed
	}

	registry := opts.Registry
	if registry == nil {
		registry = template.Builtin()
	}

	name := opts.Template
	if name == "" {
		name = "default"
	}

	defaults := layout.DefaultConfig()
	if opts.Defaults != nil {
		defaults = opts.Defaults.Clone()
	}

	diagnostics := opts.Diagnostics
	if diagnostics == nil {
		diagnostics = os.Stderr
	}
	diag := zerolog.New(diagnostics).With().Timestamp().Str("component", "klog").Logger()

	return &Logger{
		writer:    writer,
		threshold: threshold,
		template:  name,
		registry:  registry,
		defaults:  defaults,
		color:     !opts.NoColor && writerSupportsColor(writer),
		diag:      diag,
	}, nil
}

// Option adjusts a single event.
type Option func(*event)

type event struct {
	reason   string
	status   string
	template string
	override *layout.Override
}

// WithReason attaches the secondary reason column to the event.
func WithReason(reason string) Option {
	return func(ev *event) { ev.reason = reason }
}

// WithStatus attaches the status badge, replacing the template's per-level default.
func WithStatus(status string) Option {
	return func(ev *event) { ev.status = status }
}

// WithTemplate renders this one event with another template.
func WithTemplate(name string) Option {
	return func(ev *event) { ev.template = name }
}

// WithOverride applies a per-call layout override, the final cascade layer.
func WithOverride(o layout.Override) Option {
	return func(ev *event) { ev.override = &o }
}

// Debug renders and writes a DEBUG event.
func (l *Logger) Debug(message string, opts ...Option) { l.log(layout.LevelDebug, message, opts...) }

// Info renders and writes an INFO event.
func (l *Logger) Info(message string, opts ...Option) { l.log(layout.LevelInfo, message, opts...) }

// Warning renders and writes a WARNING event.
func (l *Logger) Warning(message string, opts ...Option) {
	l.log(layout.LevelWarning, message, opts...)
}

// Error renders and writes an ERROR event.
func (l *Logger) Error(message string, opts ...Option) { l.log(layout.LevelError, message, opts...) }

// Critical renders and writes a CRITICAL event.
func (l *Logger) Critical(message string, opts ...Option) {
	l.log(layout.LevelCritical, message, opts...)
}

func (l *Logger) log(level layout.Level, message string, opts ...Option) {
	if level < l.threshold {
		return
	}
	fmt.Fprintln(l.writer, l.Render(level, message, opts...))
}

// Render produces the event's line block without writing it. It always
// returns a rendered string; invalid override entries are dropped and
// reported on the diagnostics channel.
func (l *Logger) Render(level layout.Level, message string, opts ...Option) string {
	var ev event
	for _, opt := range opts {
		opt(&ev)
	}

	name := ev.template
	if name == "" {
		name = l.template
	}
	tmpl := l.registry.Get(name)

	var templateOverride *layout.Override
	if tmpl != nil {
		templateOverride = &tmpl.Override
		if ev.status == "" {
			ev.status = tmpl.DefaultStatus(level)
		}
	}

	cfg, diags := layout.Resolve(l.defaults, templateOverride, level, ev.override)
	if !l.color {
		cfg.StripStyles()
	}

	for _, diag := range diags {
		l.diag.Warn().Err(diag).Str("template", name).Str("event_level", level.String()).
			Msg("dropped invalid layout override")
	}

	return layout.Compose(cfg, message, ev.reason, ev.status)
}

// writerSupportsColor reports whether styling should default on for w.
// Non-file writers (buffers, pipes wrapped by the caller) keep styling; a
// real file only gets escape sequences when it is a terminal.
func writerSupportsColor(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return true
}
