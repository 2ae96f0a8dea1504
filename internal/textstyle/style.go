// Package textstyle decorates text fragments with ANSI color and style
// escape sequences. Decoration happens after all width arithmetic: callers
// must measure the undecorated fragment.
package textstyle

import "strings"

// Apply wraps text with the escape sequences for the named color and the
// comma-separated style list. Unknown names are ignored. An empty color and
// style returns text unchanged.
func Apply(text, color, style string) string {
	if color != "" {
		if code := colorCodes[strings.TrimSpace(color)]; code != "" {
			text = code + text + reset
		}
	}

	if style != "" {
		var codes strings.Builder
		for _, name := range strings.Split(style, ",") {
			codes.WriteString(styleCodes[strings.TrimSpace(name)])
		}
		if codes.Len() > 0 {
			text = codes.String() + text + reset
		}
	}

	return text
}

// KnownColor reports whether name resolves to a color code.
func KnownColor(name string) bool {
	_, ok := colorCodes[strings.TrimSpace(name)]
	return ok
}

// KnownStyle reports whether every comma-separated entry in list is a style name.
func KnownStyle(list string) bool {
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if _, ok := styleCodes[name]; !ok {
			return false
		}
	}
	return true
}
