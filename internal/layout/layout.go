// Package layout holds the pure geometry of the hex grid: which lines are
// visible for a scroll position, how large the virtual canvas is, and how a
// point maps to a byte offset and back.
//
// All coordinates are in the surface's units (pixels for a GUI surface,
// cells for a terminal). The canvas is laid out as fixed horizontal bands:
//
//	Padding | address (AddressChars glyphs) | hex (BytesPerLine*3 glyphs) | BandGap | decoded (BytesPerLine glyphs) | RightPadding
package layout

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultBytesPerLine = 16
	addressChars        = 10 // "XXXXXXXX" plus two spaces
	hexGlyphsPerByte    = 3  // two digits and a separator

	// epsilon absorbs float error when a glyph origin is divided back into
	// a column or line index.
	epsilon = 1e-9
)

// ErrInvalid is returned by Validate for unusable geometry.
var ErrInvalid = errors.New("layout: invalid geometry")

// Band identifies a horizontal region of the grid.
type Band int

const (
	BandHex Band = iota
	BandDecoded
)

func (b Band) String() string {
	if b == BandDecoded {
		return "decoded"
	}
	return "hex"
}

// Point is a position in surface units.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in surface units.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y, W, H float64
}

// Layout is the fixed geometry of the grid.
type Layout struct {
	BytesPerLine int
	LineHeight   float64
	CharWidth    float64

	Padding      float64
	AddressChars int
	BandGap      float64
	DeadZone     float64
	RightPadding float64

	// HighlightInset shifts the hex highlight rectangle left of the glyph pair;
	// HexHighlightWidth is its width in glyphs.
	HighlightInset    float64
	HexHighlightWidth float64
}

// Pixel returns the geometry of a proportional-pixel surface with the given
// measured glyph width.
func Pixel(charWidth float64) Layout {
	return Layout{
		BytesPerLine:      DefaultBytesPerLine,
		LineHeight:        22,
		CharWidth:         charWidth,
		Padding:           10,
		AddressChars:      addressChars,
		BandGap:           20,
		DeadZone:          10,
		RightPadding:      2 * charWidth,
		HighlightInset:    2,
		HexHighlightWidth: 2.5,
	}
}

// Terminal returns the geometry of a character-cell surface.
func Terminal() Layout {
	return Layout{
		BytesPerLine:      DefaultBytesPerLine,
		LineHeight:        1,
		CharWidth:         1,
		Padding:           1,
		AddressChars:      addressChars,
		BandGap:           2,
		DeadZone:          1,
		RightPadding:      1,
		HighlightInset:    0,
		HexHighlightWidth: 2,
	}
}

// Validate reports whether l can be used for layout math.
func (l Layout) Validate() error {
	switch {
	case l.BytesPerLine <= 0:
		return fmt.Errorf("%w: bytes per line %d", ErrInvalid, l.BytesPerLine)
	case l.LineHeight <= 0:
		return fmt.Errorf("%w: line height %v", ErrInvalid, l.LineHeight)
	case l.CharWidth <= 0:
		return fmt.Errorf("%w: char width %v", ErrInvalid, l.CharWidth)
	case l.AddressChars < 8:
		return fmt.Errorf("%w: address column of %d glyphs cannot hold an offset", ErrInvalid, l.AddressChars)
	case l.DeadZone < 0 || l.DeadZone > l.BandGap:
		return fmt.Errorf("%w: dead zone %v outside band gap %v", ErrInvalid, l.DeadZone, l.BandGap)
	}
	return nil
}

func (l Layout) AddressX() float64 {
	return l.Padding
}

func (l Layout) HexX() float64 {
	return l.Padding + float64(l.AddressChars)*l.CharWidth
}

func (l Layout) hexBandWidth() float64 {
	return float64(l.BytesPerLine*hexGlyphsPerByte) * l.CharWidth
}

func (l Layout) DecodedX() float64 {
	return l.HexX() + l.hexBandWidth() + l.BandGap
}

// HexCellX is the x of the first hex digit of column col.
func (l Layout) HexCellX(col int) float64 {
	return l.HexX() + float64(col*hexGlyphsPerByte)*l.CharWidth
}

// DecodedCellX is the x of the decoded glyph of column col.
func (l Layout) DecodedCellX(col int) float64 {
	return l.DecodedX() + float64(col)*l.CharWidth
}

// LineY is the top of line.
func (l Layout) LineY(line int64) float64 {
	return float64(line) * l.LineHeight
}

// LineCount is the number of lines needed for length bytes.
func (l Layout) LineCount(length int64) int64 {
	if length <= 0 {
		return 0
	}
	bpl := int64(l.BytesPerLine)
	return (length + bpl - 1) / bpl
}

// VisibleLineRange returns the first and last line to draw for a viewport
// starting at scrollY. One extra line of slack covers a partially visible
// line at the bottom.
func (l Layout) VisibleLineRange(scrollY, viewportHeight float64) (first, last int64) {
	if scrollY < 0 {
		scrollY = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	first = int64(floor(scrollY / l.LineHeight))
	last = first + int64(math.Ceil(viewportHeight/l.LineHeight)) + 1
	return first, last
}

// CanvasSize is the size of the virtual (unscrolled) canvas for length bytes.
func (l Layout) CanvasSize(length int64) Size {
	width := l.DecodedX() + float64(l.BytesPerLine)*l.CharWidth + l.RightPadding
	height := float64(l.LineCount(length)) * l.LineHeight
	if height < 1 {
		height = 1
	}
	return Size{W: width, H: height}
}

// BandAt reports which band a point falls in once scroll is applied.
// Points left of the decoded band's dead zone count as hex.
func (l Layout) BandAt(pt, scroll Point) Band {
	if pt.X+scroll.X >= l.DecodedX()-l.DeadZone {
		return BandDecoded
	}
	return BandHex
}

// OffsetForPoint maps a viewport point to the byte under it. ok is false
// when there is no source or the source is empty.
func (l Layout) OffsetForPoint(pt, scroll Point, length int64, hasSource bool) (offset int64, ok bool) {
	if !hasSource || length <= 0 {
		return 0, false
	}
	v := pt.Add(scroll)

	line := int64(floor(v.Y / l.LineHeight))
	var col float64
	if l.BandAt(pt, scroll) == BandDecoded {
		col = floor((v.X - l.DecodedX()) / l.CharWidth)
	} else {
		col = floor((v.X - l.HexX()) / (hexGlyphsPerByte * l.CharWidth))
	}
	column := int64(clampFloat(col, 0, float64(l.BytesPerLine-1)))

	offset = line*int64(l.BytesPerLine) + column
	return clampInt64(offset, 0, length-1), true
}

// PointForOffset is the virtual-canvas position of offset's glyph in band.
// It is the inverse of OffsetForPoint for positions inside the glyph cell.
func (l Layout) PointForOffset(offset int64, band Band) Point {
	bpl := int64(l.BytesPerLine)
	line := offset / bpl
	col := int(offset % bpl)
	x := l.HexCellX(col)
	if band == BandDecoded {
		x = l.DecodedCellX(col)
	}
	return Point{X: x, Y: l.LineY(line)}
}

// LineForOffset is the line holding offset.
func (l Layout) LineForOffset(offset int64) int64 {
	if offset < 0 {
		return 0
	}
	return offset / int64(l.BytesPerLine)
}

// ScrollYForOffset is the scroll position that puts offset's line at the top.
func (l Layout) ScrollYForOffset(offset int64) float64 {
	return l.LineY(l.LineForOffset(offset))
}

// ClampScroll keeps scroll inside the canvas for a viewport of the given size.
func (l Layout) ClampScroll(scroll Point, viewport Size, length int64) Point {
	canvas := l.CanvasSize(length)
	return Point{
		X: clampFloat(scroll.X, 0, math.Max(0, canvas.W-viewport.W)),
		Y: clampFloat(scroll.Y, 0, math.Max(0, canvas.H-viewport.H)),
	}
}

// HexHighlightRect is the rectangle behind the hex digits of offset.
func (l Layout) HexHighlightRect(offset int64) Rect {
	p := l.PointForOffset(offset, BandHex)
	return Rect{X: p.X - l.HighlightInset, Y: p.Y, W: l.HexHighlightWidth * l.CharWidth, H: l.LineHeight}
}

// DecodedHighlightRect is the rectangle behind the decoded glyph of offset.
func (l Layout) DecodedHighlightRect(offset int64) Rect {
	p := l.PointForOffset(offset, BandDecoded)
	return Rect{X: p.X, Y: p.Y, W: l.CharWidth, H: l.LineHeight}
}

func floor(v float64) float64 {
	return math.Floor(v + epsilon)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
