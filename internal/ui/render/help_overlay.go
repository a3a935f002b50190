package render

import "fmt"

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

// HelpOptions is the search option state shown in the help overlay.
type HelpOptions struct {
	CaseSensitive bool
	WholeWords    bool
	FromTop       bool
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func buildHelpOverlayLines(opts HelpOptions) []string {
	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓", desc: "Scroll one line"},
				{keys: "PgUp/PgDn", desc: "Scroll one page"},
				{keys: "Home/End", desc: "Jump to start / end"},
				{keys: "wheel", desc: "Scroll"},
			},
		},
		{
			title: "Selection",
			entries: []helpOverlayEntry{
				{keys: "drag", desc: "Select bytes (hex or text band)"},
				{keys: "Ctrl+A", desc: "Select everything"},
				{keys: "Ctrl+C", desc: "Copy selection as hex or text"},
				{keys: "Esc", desc: "Clear selection and matches"},
			},
		},
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "Ctrl+F or /", desc: "Open search prompt"},
				{keys: "↵", desc: "Search, or jump to next match"},
				{keys: "n", desc: "Next match"},
				{keys: "41 42 43", desc: "Hex bytes; anything else is text"},
				{keys: "Alt+C", desc: "Case sensitive: " + onOff(opts.CaseSensitive)},
				{keys: "Alt+W", desc: "Whole words: " + onOff(opts.WholeWords)},
				{keys: "Alt+T", desc: "Start from top: " + onOff(opts.FromTop)},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q, Ctrl+Q", desc: "Quit"},
				{keys: "Ctrl+Z", desc: "Suspend to shell"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	return fmt.Sprintf("  %-14s %s", entry.keys, entry.desc)
}
