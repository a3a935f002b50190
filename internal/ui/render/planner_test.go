package render

import (
	"testing"

	"github.com/kk-code-lab/rhex/internal/layout"
	"github.com/kk-code-lab/rhex/internal/selection"
	"github.com/kk-code-lab/rhex/internal/source"
)

type countingSource struct {
	source.ByteSource
	length int64
	reads  []int64
	maxLen []int
}

func (c *countingSource) Len() int64 { return c.length }

func (c *countingSource) ReadRange(offset int64, maxLen int) []byte {
	c.reads = append(c.reads, offset)
	c.maxLen = append(c.maxLen, maxLen)
	n := int64(maxLen)
	if offset+n > c.length {
		n = c.length - offset
	}
	if n < 0 {
		n = 0
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(offset + int64(i))
	}
	return out
}

type fakeHits struct {
	hits    map[int64]bool
	current map[int64]bool
}

func (f fakeHits) Highlighted(o int64) bool { return f.hits[o] }
func (f fakeHits) InCurrent(o int64) bool   { return f.current[o] }

func sequentialSource(n int) *source.Memory {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return source.NewMemory(data)
}

func TestPlanPositionsRoundTripThroughLayout(t *testing.T) {
	layouts := map[string]layout.Layout{
		"pixel":    layout.Pixel(8.43),
		"terminal": layout.Terminal(),
	}
	for name, l := range layouts {
		t.Run(name, func(t *testing.T) {
			src := sequentialSource(16*9 + 7)
			canvas := l.CanvasSize(src.Len())
			scroll := layout.Point{X: 0, Y: 2 * l.LineHeight}
			frame := Frame{
				Layout:   l,
				Scroll:   scroll,
				Viewport: layout.Size{W: canvas.W, H: 4 * l.LineHeight},
				Source:   src,
			}

			seen := 0
			for _, op := range Plan(frame) {
				if op.Kind != OpText || op.Offset < 0 {
					continue
				}
				seen++
				pt := layout.Point{X: op.At.X - scroll.X, Y: op.At.Y - scroll.Y}
				got, ok := l.OffsetForPoint(pt, scroll, src.Len(), true)
				if !ok || got != op.Offset {
					t.Fatalf("%s glyph of offset %d hit-tests to %d", op.Band, op.Offset, got)
				}
				if band := l.BandAt(pt, scroll); band != op.Band {
					t.Fatalf("offset %d drawn in %s band, hit-tests as %s", op.Offset, op.Band, band)
				}
			}
			if seen == 0 {
				t.Fatalf("no byte glyphs planned")
			}
		})
	}
}

func TestPlanOnlyReadsVisibleLines(t *testing.T) {
	l := layout.Terminal()
	src := &countingSource{length: 1 << 40}
	frame := Frame{
		Layout:   l,
		Scroll:   layout.Point{Y: 1_000_000},
		Viewport: layout.Size{W: 80, H: 10},
		Source:   src,
	}
	Plan(frame)

	first, last := l.VisibleLineRange(frame.Scroll.Y, frame.Viewport.H)
	if want := int(last - first + 1); len(src.reads) != want {
		t.Fatalf("reads=%d want %d", len(src.reads), want)
	}
	for i, off := range src.reads {
		if off != (first+int64(i))*16 || src.maxLen[i] != 16 {
			t.Fatalf("read %d at %d (len %d), want line-aligned 16-byte reads", i, off, src.maxLen[i])
		}
	}
}

func TestPlanStructureAndAddresses(t *testing.T) {
	l := layout.Terminal()
	frame := Frame{
		Layout:   l,
		Scroll:   layout.Point{Y: 1},
		Viewport: layout.Size{W: 80, H: 1},
		Source:   sequentialSource(40),
	}
	ops := Plan(frame)

	if ops[0].Kind != OpPushClip || ops[1].Kind != OpPushTranslate {
		t.Fatalf("plan must open with clip then translate, got %v %v", ops[0].Kind, ops[1].Kind)
	}
	if ops[1].Delta != (layout.Point{X: 0, Y: -1}) {
		t.Fatalf("translate delta=%+v want scroll negated", ops[1].Delta)
	}
	n := len(ops)
	if ops[n-2].Kind != OpPopTranslate || ops[n-1].Kind != OpPopClip {
		t.Fatalf("plan must close with pop translate then pop clip")
	}

	var addresses []string
	maxOffset := int64(-1)
	for _, op := range ops {
		if op.Kind == OpText && op.Role == RoleAddress {
			addresses = append(addresses, op.Text)
		}
		if op.Offset > maxOffset {
			maxOffset = op.Offset
		}
	}
	// Lines 1 and 2 are visible; line 3 would be past the end of a 40-byte source.
	if len(addresses) != 2 || addresses[0] != "00000010" || addresses[1] != "00000020" {
		t.Fatalf("addresses=%v", addresses)
	}
	if maxOffset != 39 {
		t.Fatalf("planned offsets up to %d, want 39", maxOffset)
	}
}

func TestPlanWithoutSourceIsStructuralOnly(t *testing.T) {
	ops := Plan(Frame{Layout: layout.Terminal(), Viewport: layout.Size{W: 10, H: 10}})
	if len(ops) != 4 {
		t.Fatalf("ops=%d want 4", len(ops))
	}
	ops = Plan(Frame{Layout: layout.Terminal(), Viewport: layout.Size{W: 10, H: 10}, Source: source.NewMemory(nil)})
	if len(ops) != 4 {
		t.Fatalf("empty source ops=%d want 4", len(ops))
	}
}

func TestPlanHighlights(t *testing.T) {
	l := layout.Terminal()
	var sel selection.Selection
	sel.Begin(5, true)
	sel.Extend(3)
	sel.End()

	frame := Frame{
		Layout:    l,
		Viewport:  layout.Size{W: 80, H: 2},
		Source:    sequentialSource(16),
		Selection: &sel,
		Hits:      fakeHits{hits: map[int64]bool{4: true, 9: true}, current: map[int64]bool{9: true}},
	}

	type fill struct {
		role    Role
		opacity float64
	}
	fills := map[int64][]fill{}
	for _, op := range Plan(frame) {
		if op.Kind == OpFillRect && op.Band == layout.BandHex {
			fills[op.Offset] = append(fills[op.Offset], fill{op.Role, op.Opacity})
		}
	}

	for _, o := range []int64{3, 5} {
		if len(fills[o]) != 1 || fills[o][0] != (fill{RoleSelectionDecoded, selectionOpacity}) {
			t.Fatalf("offset %d fills=%v", o, fills[o])
		}
	}
	got := fills[4]
	if len(got) != 2 || got[0].role != RoleSelectionDecoded || got[1] != (fill{RoleSearchHit, searchOpacity}) {
		t.Fatalf("search tint must follow selection tint, got %v", got)
	}
	if f := fills[9]; len(f) != 1 || f[0].role != RoleFocusHit {
		t.Fatalf("focused match fills=%v", f)
	}
	if len(fills[6]) != 0 || len(fills[2]) != 0 {
		t.Fatalf("unexpected fills outside selection")
	}
}

func TestPlanHexSelectionTint(t *testing.T) {
	var sel selection.Selection
	sel.Begin(0, false)
	frame := Frame{Layout: layout.Terminal(), Viewport: layout.Size{W: 80, H: 1}, Source: sequentialSource(4), Selection: &sel}
	for _, op := range Plan(frame) {
		if op.Kind == OpFillRect && op.Role != RoleSelectionHex {
			t.Fatalf("hex-origin selection drawn with %v", op.Role)
		}
	}
}

func TestDecodedGlyph(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0x41, "A"},
		{0x20, " "},
		{0x7E, "~"},
		{0x7F, "."},
		{0x1F, "."},
		{0x00, "."},
		{0xE9, "."},
	}
	for _, tt := range tests {
		if got := DecodedGlyph(tt.b); got != tt.want {
			t.Fatalf("DecodedGlyph(%#x)=%q want %q", tt.b, got, tt.want)
		}
	}
}
