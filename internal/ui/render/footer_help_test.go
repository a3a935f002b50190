package render

import (
	"slices"
	"strings"
	"testing"
)

func TestBuildFooterHelpSegments_DefaultMode(t *testing.T) {
	got := buildFooterHelpSegments(FooterContext{})
	want := []string{
		"↑↓/Pg: scroll",
		"^F: search",
		"^A: select all",
		"?: help",
		"q: quit",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("default help mismatch\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpSegments_WithSelectionAndMatches(t *testing.T) {
	got := buildFooterHelpSegments(FooterContext{HasSelection: true, HasMatches: true, Clipboard: true})
	for _, hint := range []string{"n: next match", "^C: copy", "Esc: clear"} {
		if !slices.Contains(got, hint) {
			t.Fatalf("expected %q in %v", hint, got)
		}
	}
}

func TestBuildFooterHelpSegments_CopyNeedsClipboard(t *testing.T) {
	got := buildFooterHelpSegments(FooterContext{HasSelection: true})
	if slices.Contains(got, "^C: copy") {
		t.Fatalf("copy hint shown without a clipboard: %v", got)
	}
}

func TestBuildFooterHelpSegments_SearchMode(t *testing.T) {
	got := buildFooterHelpSegments(FooterContext{SearchActive: true, HasMatches: true})
	want := []string{
		"type: pattern",
		"↵: search/next",
		"Alt+C/W/T: options",
		"Esc: close",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("search help should only include contextual hints\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpText_Padding(t *testing.T) {
	text := buildFooterHelpText(FooterContext{Selecting: true})
	if !strings.HasPrefix(text, " drag: extend") || !strings.HasSuffix(text, "release: finish ") {
		t.Fatalf("unexpected footer text %q", text)
	}
}
