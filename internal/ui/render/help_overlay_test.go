package render

import (
	"strings"
	"testing"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	lines := buildHelpOverlayLines(HelpOptions{FromTop: true})

	assertContains := func(substr string) {
		for _, line := range lines {
			if strings.Contains(line, substr) {
				return
			}
		}
		t.Fatalf("expected lines to contain %q, got %v", substr, lines)
	}

	assertContains("Navigation")
	assertContains("Selection")
	assertContains("Search")
	assertContains("Exit")
	assertContains("Ctrl+C")
	assertContains("Hex bytes")
}

func TestBuildHelpOverlayLinesReflectsOptions(t *testing.T) {
	lines := buildHelpOverlayLines(HelpOptions{CaseSensitive: true, FromTop: false})

	var caseLine, topLine string
	for _, line := range lines {
		switch {
		case strings.Contains(line, "Case sensitive"):
			caseLine = line
		case strings.Contains(line, "Start from top"):
			topLine = line
		}
	}
	if !strings.HasSuffix(caseLine, "on") {
		t.Fatalf("case toggle should read on, got %q", caseLine)
	}
	if !strings.HasSuffix(topLine, "off") {
		t.Fatalf("from-top toggle should read off, got %q", topLine)
	}
}

func TestFormatPromptFlags(t *testing.T) {
	if got := formatPromptFlags(HelpOptions{FromTop: true}); got != " Aa  W  ↧ " {
		t.Fatalf("default flags %q", got)
	}
	if got := formatPromptFlags(HelpOptions{CaseSensitive: true, WholeWords: true}); got != "[Aa][W][↧]" {
		t.Fatalf("all flags %q", got)
	}
}
