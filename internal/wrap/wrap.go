// Package wrap splits text into lines that fit a display-width budget.
package wrap

import (
	"strings"
	"unicode/utf8"

	"github.com/klogd/klog/internal/textwidth"
)

// Lines wraps text so no line exceeds maxWidth display columns. With wordWrap
// set, breaks happen at whitespace where possible; a single word wider than
// maxWidth is sliced at column boundaries and its final fragment seeds the
// next line. Without wordWrap the text is sliced into column-budget chunks.
// Empty text or a non-positive budget yields no lines.
func Lines(text string, maxWidth int, wordWrap bool) []string {
	if text == "" || maxWidth <= 0 {
		return nil
	}

	if !wordWrap {
		return slice(text, maxWidth)
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range strings.Fields(text) {
		wordWidth := textwidth.String(word)

		gap := 0
		if current.Len() > 0 {
			gap = 1
		}

		if currentWidth+gap+wordWidth <= maxWidth {
			if gap == 1 {
				current.WriteByte(' ')
				currentWidth++
			}
			current.WriteString(word)
			currentWidth += wordWidth
			continue
		}

		if current.Len() > 0 {
			flush()
		}

		if wordWidth > maxWidth {
			chunks := slice(word, maxWidth)
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			current.WriteString(last)
			currentWidth = textwidth.String(last)
		} else {
			current.WriteString(word)
			currentWidth = wordWidth
		}
	}

	if current.Len() > 0 {
		flush()
	}

	return lines
}

// slice cuts text into chunks of at most maxWidth display columns without
// splitting runes. A rune wider than the whole budget occupies a chunk alone.
func slice(text string, maxWidth int) []string {
	var chunks []string
	var current strings.Builder
	currentWidth := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		width := textwidth.Rune(r)
		if r == utf8.RuneError && size == 1 {
			width = 0
		}

		if currentWidth+width > maxWidth && current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentWidth = 0
		}

		current.WriteString(text[i : i+size])
		currentWidth += width
		i += size
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
