package render

import (
	"fmt"

	"github.com/kk-code-lab/rhex/internal/layout"
	"github.com/kk-code-lab/rhex/internal/selection"
	"github.com/kk-code-lab/rhex/internal/source"
	"github.com/kk-code-lab/rhex/internal/textutil"
)

const (
	selectionOpacity = 0.4
	searchOpacity    = 0.6
	placeholderGlyph = textutil.Placeholder
)

// Role is the semantic colour of a draw op. Surfaces map roles to concrete
// colours.
type Role int

const (
	RoleAddress Role = iota
	RoleByte
	RoleSelectionHex
	RoleSelectionDecoded
	RoleSearchHit
	RoleFocusHit
)

func (r Role) String() string {
	switch r {
	case RoleAddress:
		return "address"
	case RoleByte:
		return "byte"
	case RoleSelectionHex:
		return "selection-hex"
	case RoleSelectionDecoded:
		return "selection-decoded"
	case RoleSearchHit:
		return "search-hit"
	case RoleFocusHit:
		return "focus-hit"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// FontSpec names the monospace font of a pixel surface. Cell surfaces
// ignore it.
type FontSpec struct {
	Family string
	Size   float64
}

func DefaultFont() FontSpec {
	return FontSpec{Family: "monospace", Size: 14}
}

type OpKind int

const (
	OpPushClip OpKind = iota
	OpPopClip
	OpPushTranslate
	OpPopTranslate
	OpFillRect
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpPushClip:
		return "push-clip"
	case OpPopClip:
		return "pop-clip"
	case OpPushTranslate:
		return "push-translate"
	case OpPopTranslate:
		return "pop-translate"
	case OpFillRect:
		return "fill"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one drawing instruction. Which fields apply depends on Kind. Offset
// is the source byte an op draws, or -1 for address labels and structural
// ops.
type Op struct {
	Kind    OpKind
	Rect    layout.Rect
	Delta   layout.Point
	At      layout.Point
	Text    string
	Font    FontSpec
	Role    Role
	Opacity float64
	Offset  int64
	Band    layout.Band
}

// HitSet answers search highlight queries for the planner.
type HitSet interface {
	Highlighted(offset int64) bool
	InCurrent(offset int64) bool
}

// Frame is everything needed to plan one frame of the grid.
type Frame struct {
	Layout    layout.Layout
	Scroll    layout.Point
	Viewport  layout.Size
	Source    source.ByteSource
	Selection *selection.Selection
	Hits      HitSet
	Font      FontSpec
}

var hexByteText [256]string

func init() {
	for i := range hexByteText {
		hexByteText[i] = fmt.Sprintf("%02X", i)
	}
}

// Plan returns the draw ops for the lines visible in f. The cost depends on
// the viewport size only, never on the source length.
func Plan(f Frame) []Op {
	l := f.Layout
	ops := []Op{
		{Kind: OpPushClip, Rect: layout.Rect{W: f.Viewport.W, H: f.Viewport.H}, Offset: -1},
		{Kind: OpPushTranslate, Delta: layout.Point{X: -f.Scroll.X, Y: -f.Scroll.Y}, Offset: -1},
	}

	if f.Source != nil && f.Source.Len() > 0 {
		length := f.Source.Len()
		first, last := l.VisibleLineRange(f.Scroll.Y, f.Viewport.H)
		if lines := l.LineCount(length); last > lines-1 {
			last = lines - 1
		}
		bpl := int64(l.BytesPerLine)
		for line := first; line <= last; line++ {
			ops = planLine(ops, f, line, f.Source.ReadRange(line*bpl, l.BytesPerLine))
		}
	}

	return append(ops,
		Op{Kind: OpPopTranslate, Offset: -1},
		Op{Kind: OpPopClip, Offset: -1},
	)
}

func planLine(ops []Op, f Frame, line int64, data []byte) []Op {
	l := f.Layout
	start := line * int64(l.BytesPerLine)
	y := l.LineY(line)

	ops = append(ops, Op{
		Kind:   OpText,
		At:     layout.Point{X: l.AddressX(), Y: y},
		Text:   fmt.Sprintf("%08X", start),
		Font:   f.Font,
		Role:   RoleAddress,
		Offset: -1,
	})

	selRole := RoleSelectionHex
	if f.Selection != nil && f.Selection.InDecoded() {
		selRole = RoleSelectionDecoded
	}

	for col, b := range data {
		offset := start + int64(col)

		if f.Selection != nil && f.Selection.Contains(offset) {
			ops = appendHighlight(ops, l, offset, selRole, selectionOpacity)
		}
		if f.Hits != nil && f.Hits.Highlighted(offset) {
			role := RoleSearchHit
			if f.Hits.InCurrent(offset) {
				role = RoleFocusHit
			}
			ops = appendHighlight(ops, l, offset, role, searchOpacity)
		}

		ops = append(ops,
			Op{
				Kind:   OpText,
				At:     layout.Point{X: l.HexCellX(col), Y: y},
				Text:   hexByteText[b],
				Font:   f.Font,
				Role:   RoleByte,
				Offset: offset,
				Band:   layout.BandHex,
			},
			Op{
				Kind:   OpText,
				At:     layout.Point{X: l.DecodedCellX(col), Y: y},
				Text:   DecodedGlyph(b),
				Font:   f.Font,
				Role:   RoleByte,
				Offset: offset,
				Band:   layout.BandDecoded,
			},
		)
	}
	return ops
}

func appendHighlight(ops []Op, l layout.Layout, offset int64, role Role, opacity float64) []Op {
	return append(ops,
		Op{Kind: OpFillRect, Rect: l.HexHighlightRect(offset), Role: role, Opacity: opacity, Offset: offset, Band: layout.BandHex},
		Op{Kind: OpFillRect, Rect: l.DecodedHighlightRect(offset), Role: role, Opacity: opacity, Offset: offset, Band: layout.BandDecoded},
	)
}

// DecodedGlyph is the decoded-band rendering of b: printable ASCII as
// itself, anything else as a placeholder.
func DecodedGlyph(b byte) string {
	if b >= 32 && b <= 126 {
		return string(rune(b))
	}
	return placeholderGlyph
}
