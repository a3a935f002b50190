package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// DisplayWidth reports the printable width of text, counting each grapheme
// cluster once.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// TruncateToWidth shortens text to at most maxWidth cells, ending with an
// ellipsis when anything was cut.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var b strings.Builder
	width := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > available {
			break
		}
		b.WriteString(cluster)
		width += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

// DropLastGrapheme removes the final user-perceived character of text, so a
// backspace never splits a combining sequence or an emoji.
func DropLastGrapheme(text string) string {
	last := 0
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		last = pos
		pos += len(cluster)
	}
	return text[:last]
}
