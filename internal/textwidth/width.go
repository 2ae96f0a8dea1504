// Package textwidth measures the terminal display width of text. Wide
// (East-Asian, most emoji) runes count as two columns, combining and other
// zero-width runes as none. Layout and wrapping must both measure through
// this package so wrap points and column alignment agree.
package textwidth

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Rune returns the display width of a single rune.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}

// String returns the display width of s. Malformed UTF-8 bytes contribute
// zero columns; width computation never fails.
func String(s string) int {
	width := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		width += runewidth.RuneWidth(r)
		i += size
	}
	return width
}
