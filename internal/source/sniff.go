package source

import (
	"bytes"
	"unicode/utf8"
)

const (
	sniffSampleSize              = 4096
	nonPrintableThresholdPercent = 30
)

// Kind is a coarse classification of a source's leading bytes, shown in
// the status line.
type Kind int

const (
	KindEmpty Kind = iota
	KindBinary
	KindText
	KindUTF8BOM
	KindUTF16LE
	KindUTF16BE
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindUTF8BOM:
		return "utf-8 bom"
	case KindUTF16LE:
		return "utf-16le"
	case KindUTF16BE:
		return "utf-16be"
	default:
		return "binary"
	}
}

// Sniff classifies src from its first few KiB.
func Sniff(src ByteSource) Kind {
	if src == nil || src.Len() == 0 {
		return KindEmpty
	}
	sample := src.ReadRange(0, sniffSampleSize)
	if len(sample) == 0 {
		return KindEmpty
	}

	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return KindUTF8BOM
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}):
		return KindUTF16LE
	case bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return KindUTF16BE
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return KindBinary
	}
	if utf8.Valid(sample) {
		return KindText
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	if nonPrintable*100/len(sample) < nonPrintableThresholdPercent {
		return KindText
	}
	return KindBinary
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}
