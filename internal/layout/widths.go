package layout

import (
	"github.com/klogd/klog/internal/textwidth"
)

// computeWidths determines the rendered width of every column, decoration
// included. Absent reason/status columns get zero. The padding column absorbs
// whatever is left of TotalWidth but never drops below its configured
// minimum, so the block can legitimately exceed TotalWidth when the other
// columns already fill it.
func computeWidths(cfg LayoutConfig, message, reason, status string) map[string]int {
	widths := map[string]int{
		FieldMessage: fieldWidth(cfg.Fields[FieldMessage], message),
	}

	widths[FieldReason] = 0
	if reason != "" {
		widths[FieldReason] = fieldWidth(cfg.Fields[FieldReason], reason)
	}

	widths[FieldStatus] = 0
	if status != "" {
		widths[FieldStatus] = fieldWidth(cfg.Fields[FieldStatus], status)
	}

	used := widths[FieldMessage] + widths[FieldReason] + widths[FieldStatus]

	padding := cfg.Fields[FieldPadding]
	minPadding := padding.MinWidth + decorationWidth(padding)
	widths[FieldPadding] = max(minPadding, cfg.TotalWidth-used)

	return widths
}

// fieldWidth is the column's natural width (content plus decoration), capped
// at MaxWidth when configured. Content beyond the cap is wrapped or truncated
// later, not here.
func fieldWidth(spec FieldSpec, content string) int {
	width := textwidth.String(content) + decorationWidth(spec)
	if spec.MaxWidth > 0 && width > spec.MaxWidth {
		width = spec.MaxWidth
	}
	return width
}

func decorationWidth(spec FieldSpec) int {
	return textwidth.String(spec.LeadingChar) + textwidth.String(spec.ClosingChar)
}
