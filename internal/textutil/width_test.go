package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "00000010", 8},
		{"wide cjk", "你好", 4},
		{"combining accent", "é", 1},
		{"flag regional indicators", "\U0001F1F5\U0001F1F1", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{name: "fits without truncation", text: "file.bin", width: 20, expect: "file.bin"},
		{name: "adds ellipsis when needed", text: "verylongname", width: 6, expect: "veryl…"},
		{name: "only ellipsis when width too small", text: "example", width: 1, expect: "…"},
		{name: "multi-byte characters respected", text: "你好世界", width: 5, expect: "你好…"},
		{name: "returns empty when width is zero", text: "anything", width: 0, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateToWidth(tt.text, tt.width); got != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, got, tt.width)
			}
		})
	}
}

func TestDropLastGrapheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "ab"},
		{"", ""},
		{"caf" + "é", "caf"},
		{"x\U0001F1F5\U0001F1F1", "x"},
		{"41 4", "41 "},
	}
	for _, tt := range tests {
		if got := DropLastGrapheme(tt.in); got != tt.want {
			t.Fatalf("DropLastGrapheme(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}
