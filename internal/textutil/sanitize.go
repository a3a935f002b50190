package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder stands in for anything that cannot be drawn as a single
// visible cell. The decoded band uses it for non-printable bytes.
const Placeholder = "."

const zeroWidthJoiner = '\u200d'

// BarText prepares a file title, a typed or pasted search pattern or a status
// line for one row of the grid. Whitespace breaks become a space. Control
// runes (C0, DEL and C1), invalid UTF-8 bytes and invisible formatting runes
// such as bidi overrides become Placeholder, so nothing drawn can start an
// escape sequence or reorder the row.
func BarText(text string) string {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return rewriteBarText(text)
			}
			continue
		}
		if !needsRewrite(r) {
			continue
		}
		return rewriteBarText(text)
	}
	return text
}

func rewriteBarText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(Placeholder)
		case r == '\t', r == '\n', r == '\r', r == '\u2028', r == '\u2029':
			b.WriteByte(' ')
		case needsRewrite(r):
			b.WriteString(Placeholder)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsRewrite(r rune) bool {
	if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
		return true
	}
	if r == '\u2028' || r == '\u2029' {
		return true
	}
	// Formatting runes, except ZWJ inside emoji sequences.
	return r != zeroWidthJoiner && unicode.Is(unicode.Cf, r)
}
