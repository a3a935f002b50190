// Package search finds byte patterns in a source by scanning it in
// overlapping chunks. Chunks are read on the caller's goroutine and compared
// anywhere; results are committed back in ascending order under a
// generation token so stale scans can be discarded.
package search

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Options tune how text patterns match.
type Options struct {
	// CaseSensitive disables ASCII case folding of the source.
	CaseSensitive bool
	// WholeWords rejects text matches adjacent to an ASCII word byte.
	WholeWords bool
	// FromTop focuses the first match of the source. When false the first
	// match at or after the top of the viewport is focused.
	FromTop bool
}

func DefaultOptions() Options {
	return Options{FromTop: true}
}

// Pattern is a compiled search pattern.
type Pattern struct {
	Bytes   []byte
	IsHex   bool
	Options Options
}

func (p Pattern) Len() int {
	return len(p.Bytes)
}

func (p Pattern) folds() bool {
	return !p.IsHex && !p.Options.CaseSensitive
}

func (p Pattern) wholeWords() bool {
	return !p.IsHex && p.Options.WholeWords
}

// Compile turns user input into a pattern. Input of two or more characters
// made only of hex digits and spaces is read as space-separated hex bytes.
// A single token too large for one byte ("abc", "cafe") is read as text, as
// is anything else. ok is false when nothing can be searched for or a
// multi-token hex pattern has a bad token.
func Compile(text string, opts Options) (Pattern, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Pattern{}, false
	}

	if len(trimmed) >= 2 && looksLikeHex(trimmed) {
		fields := strings.Fields(trimmed)
		if buf, ok := parseHexBytes(fields); ok {
			return Pattern{Bytes: buf, IsHex: true, Options: opts}, true
		}
		if len(fields) > 1 {
			return Pattern{}, false
		}
	}

	normalized := norm.NFC.String(trimmed)
	if !opts.CaseSensitive {
		normalized = strings.ToLower(normalized)
	}
	return Pattern{Bytes: []byte(normalized), Options: opts}, true
}

func parseHexBytes(fields []string) ([]byte, bool) {
	buf := make([]byte, 0, len(fields))
	for _, field := range fields {
		b, ok := parseHexByte(field)
		if !ok {
			return nil, false
		}
		buf = append(buf, b)
	}
	return buf, len(buf) > 0
}

func looksLikeHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		if _, ok := hexNibble(s[i]); !ok {
			return false
		}
	}
	return true
}

// parseHexByte reads a base-16 token such as "41", "A" or "041" into one
// byte. Values above 0xFF are rejected.
func parseHexByte(token string) (byte, bool) {
	var v uint
	for i := 0; i < len(token); i++ {
		n, ok := hexNibble(token[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint(n)
		if v > 0xFF {
			return 0, false
		}
	}
	return byte(v), true
}

func hexNibble(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}

func foldASCIIBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, ch := range b {
		if ch >= 'A' && ch <= 'Z' {
			out[i] = ch + 32
		} else {
			out[i] = ch
		}
	}
	return out
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
