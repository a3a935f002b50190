package render

import "strings"

// FooterContext selects which hints the footer shows.
type FooterContext struct {
	SearchActive bool
	Selecting    bool
	HasSelection bool
	HasMatches   bool
	Clipboard    bool
}

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(ctx FooterContext) string {
	parts := buildFooterHelpSegments(ctx)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

func buildFooterHelpSegments(ctx FooterContext) []string {
	switch {
	case ctx.SearchActive:
		return []string{
			"type: pattern",
			"↵: search/next",
			"Alt+C/W/T: options",
			"Esc: close",
		}
	case ctx.Selecting:
		return []string{"drag: extend", "release: finish"}
	}

	segments := []string{
		"↑↓/Pg: scroll",
		"^F: search",
		"^A: select all",
	}
	if ctx.HasMatches {
		segments = append(segments, "n: next match")
	}
	if ctx.HasSelection && ctx.Clipboard {
		segments = append(segments, "^C: copy")
	}
	if ctx.HasSelection || ctx.HasMatches {
		segments = append(segments, "Esc: clear")
	}
	return append(segments, "?: help", "q: quit")
}
