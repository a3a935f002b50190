package render

import (
	"fmt"
	"strings"
)

// Status is the state summarised in the status line.
type Status struct {
	TopOffset int64
	Length    int64

	HasSelection bool
	SelStart     int64
	SelEnd       int64
	SelDecoded   bool

	Pattern  string
	IsHex    bool
	Matches  int
	Current  int // -1 when no match is focused
	Scanning bool

	Message string
}

func formatStatusLine(s Status) string {
	parts := []string{fmt.Sprintf("@%08X", s.TopOffset)}
	if s.Length > 0 {
		pct := float64(s.TopOffset) * 100 / float64(s.Length)
		parts = append(parts, trimTrailingZero(fmt.Sprintf("%.1f%%", pct)))
	}
	if s.HasSelection {
		band := "hex"
		if s.SelDecoded {
			band = "text"
		}
		n := s.SelEnd - s.SelStart + 1
		parts = append(parts, fmt.Sprintf("sel %08X-%08X (%s, %s)", s.SelStart, s.SelEnd, formatByteCount(n), band))
	}
	if search := formatSearchStatus(s); search != "" {
		parts = append(parts, search)
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	return " " + strings.Join(parts, " · ")
}

func formatSearchStatus(s Status) string {
	if s.Pattern == "" {
		return ""
	}
	kind := "text"
	if s.IsHex {
		kind = "hex"
	}
	switch {
	case s.Scanning:
		return fmt.Sprintf("%s %q: searching… %s", kind, s.Pattern, formatCompactNumber(s.Matches))
	case s.Matches == 0:
		return fmt.Sprintf("%s %q: no matches", kind, s.Pattern)
	case s.Current >= 0:
		return fmt.Sprintf("%s %q: %d/%s", kind, s.Pattern, s.Current+1, formatCompactNumber(s.Matches))
	default:
		return fmt.Sprintf("%s %q: %s matches", kind, s.Pattern, formatCompactNumber(s.Matches))
	}
}

func formatCompactNumber(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000.0)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000.0)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000.0)
	default:
		return fmt.Sprintf("%d", n)
	}
}

func formatByteCount(n int64) string {
	if n == 1 {
		return "1 byte"
	}
	if n < 1024 {
		return fmt.Sprintf("%d bytes", n)
	}
	return FormatSize(n)
}

// FormatSize renders a byte length with a binary unit suffix.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/float64(div))) + " " + string("KMGTPE"[exp]) + "iB"
}

func trimTrailingZero(s string) string {
	suffix := ""
	if strings.HasSuffix(s, "%") {
		s, suffix = strings.TrimSuffix(s, "%"), "%"
	}
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimSuffix(s, "0"), ".")
	}
	return s + suffix
}
