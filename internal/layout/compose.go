package layout

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/klogd/klog/internal/textstyle"
	"github.com/klogd/klog/internal/textwidth"
	"github.com/klogd/klog/internal/wrap"
)

// Compose renders one event under an already-resolved configuration. Each
// field wraps or truncates within its computed width, ragged fields are
// blank-padded to the tallest field's line count, and the per-line fragments
// are joined into one newline-separated block with no trailing newline.
//
// Column rules: the message is left-aligned and wraps downward; the padding
// column repeats its fill character identically on every line; the reason is
// right-aligned; the status is a badge on the first line only. Leading and
// closing decoration brackets a field's whole wrapped block, not each line.
// Styling is applied after all width arithmetic.
func Compose(cfg LayoutConfig, message, reason, status string) string {
	widths := computeWidths(cfg, message, reason, status)

	messageLines := formatField(message, FieldMessage, widths[FieldMessage], cfg.Fields[FieldMessage])
	paddingLine := formatField("", FieldPadding, widths[FieldPadding], cfg.Fields[FieldPadding])[0]

	var reasonLines []string
	if reason != "" && widths[FieldReason] > 0 {
		reasonLines = formatField(reason, FieldReason, widths[FieldReason], cfg.Fields[FieldReason])
	}

	var statusLines []string
	if status != "" && widths[FieldStatus] > 0 {
		statusLines = formatField(status, FieldStatus, widths[FieldStatus], cfg.Fields[FieldStatus])
	}

	lineCount := len(messageLines)
	if len(reasonLines) > lineCount {
		lineCount = len(reasonLines)
	}
	if len(statusLines) > lineCount {
		lineCount = len(statusLines)
	}
	if lineCount < 1 {
		lineCount = 1
	}

	styled := func(name, text string) string {
		spec := cfg.Fields[name]
		return textstyle.Apply(text, spec.Color, spec.Style)
	}

	lines := make([]string, 0, lineCount)
	for i := 0; i < lineCount; i++ {
		var parts []string

		msg := strings.Repeat(" ", widths[FieldMessage])
		if i < len(messageLines) {
			msg = messageLines[i]
		}
		parts = append(parts, styled(FieldMessage, msg))

		parts = append(parts, styled(FieldPadding, paddingLine))

		if reasonLines != nil {
			rsn := strings.Repeat(" ", widths[FieldReason])
			if i < len(reasonLines) {
				rsn = reasonLines[i]
			}
			parts = append(parts, styled(FieldReason, rsn))
		}

		if statusLines != nil {
			if i == 0 {
				parts = append(parts, styled(FieldStatus, statusLines[0]))
			} else {
				parts = append(parts, strings.Repeat(" ", widths[FieldStatus]))
			}
		}

		lines = append(lines, strings.Join(parts, ""))
	}

	return strings.Join(lines, "\n")
}

// formatField produces the undecorated-width-aligned lines of one column.
func formatField(content, name string, width int, spec FieldSpec) []string {
	innerWidth := width - decorationWidth(spec)
	if innerWidth < 0 {
		innerWidth = 0
	}

	if name == FieldPadding {
		fill := spec.PaddingChar
		if fill == "" {
			fill = " "
		}
		return []string{spec.LeadingChar + strings.Repeat(fill, innerWidth) + spec.ClosingChar}
	}

	if !spec.Wrap {
		if textwidth.String(content) > innerWidth {
			content = truncate.String(content, uint(innerWidth))
		}
		raw := spec.LeadingChar + content + spec.ClosingChar
		return []string{alignField(raw, name, width)}
	}

	wrapped := wrap.Lines(content, innerWidth, spec.WordWrap)
	if len(wrapped) == 0 {
		return []string{strings.Repeat(" ", width)}
	}

	formatted := make([]string, 0, len(wrapped))
	for i, line := range wrapped {
		raw := line
		if i == 0 {
			raw = spec.LeadingChar + raw
		}
		if i == len(wrapped)-1 {
			raw += spec.ClosingChar
		}
		formatted = append(formatted, alignField(raw, name, width))
	}

	return formatted
}

// alignField pads raw with spaces to the column width: message text hugs the
// left edge, the status badge is left as-is, everything else hugs the right.
func alignField(raw, name string, width int) string {
	gap := width - textwidth.String(raw)
	if gap <= 0 {
		return raw
	}

	switch name {
	case FieldMessage:
		return raw + strings.Repeat(" ", gap)
	case FieldStatus:
		return raw
	default:
		return strings.Repeat(" ", gap) + raw
	}
}
