package layout

// Render resolves the configuration cascade for one event and composes its
// line block. It always returns a usable string; the diagnostics report any
// override entries that were dropped along the way.
func Render(defaults LayoutConfig, templateOverride *Override, level Level, callOverride *Override, message, reason, status string) (string, []error) {
	cfg, diags := Resolve(defaults, templateOverride, level, callOverride)
	return Compose(cfg, message, reason, status), diags
}
