package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/rhex/internal/layout"
)

const cellEpsilon = 1e-9

type cellRect struct {
	x0, y0, x1, y1 int // half-open
}

func (c cellRect) contains(x, y int) bool {
	return x >= c.x0 && x < c.x1 && y >= c.y0 && y < c.y1
}

func (c cellRect) intersect(o cellRect) cellRect {
	r := cellRect{
		x0: max(c.x0, o.x0),
		y0: max(c.y0, o.y0),
		x1: min(c.x1, o.x1),
		y1: min(c.y1, o.y1),
	}
	if r.x1 < r.x0 {
		r.x1 = r.x0
	}
	if r.y1 < r.y0 {
		r.y1 = r.y0
	}
	return r
}

// TcellSurface draws planned ops onto a region of a tcell screen, one unit
// per cell.
type TcellSurface struct {
	screen tcell.Screen
	theme  ColorTheme
	bounds layout.Rect

	clips   []cellRect
	offsets []layout.Point
	widths  runeWidthCache
}

// NewTcellSurface returns a surface whose origin is the top-left cell of
// bounds. Nothing is drawn outside bounds.
func NewTcellSurface(screen tcell.Screen, theme ColorTheme, bounds layout.Rect) *TcellSurface {
	return &TcellSurface{screen: screen, theme: theme, bounds: bounds}
}

// Reset drops any clip or translate left over from a previous frame and
// moves the surface to bounds.
func (s *TcellSurface) Reset(bounds layout.Rect) {
	s.bounds = bounds
	s.clips = s.clips[:0]
	s.offsets = s.offsets[:0]
}

// MeasureText is the width of text in cells.
func (s *TcellSurface) MeasureText(text string) float64 {
	w := 0
	for _, ru := range text {
		w += s.widths.width(ru)
	}
	return float64(w)
}

func (s *TcellSurface) origin() layout.Point {
	p := layout.Point{X: s.bounds.X, Y: s.bounds.Y}
	for _, d := range s.offsets {
		p = p.Add(d)
	}
	return p
}

func (s *TcellSurface) clip() cellRect {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return toCells(s.bounds)
}

func toCells(r layout.Rect) cellRect {
	return cellRect{
		x0: int(math.Floor(r.X + cellEpsilon)),
		y0: int(math.Floor(r.Y + cellEpsilon)),
		x1: int(math.Ceil(r.X + r.W - cellEpsilon)),
		y1: int(math.Ceil(r.Y + r.H - cellEpsilon)),
	}
}

func (s *TcellSurface) PushClip(r layout.Rect) {
	o := s.origin()
	r.X += o.X
	r.Y += o.Y
	s.clips = append(s.clips, s.clip().intersect(toCells(r)))
}

func (s *TcellSurface) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

func (s *TcellSurface) PushTranslate(delta layout.Point) {
	s.offsets = append(s.offsets, delta)
}

func (s *TcellSurface) PopTranslate() {
	if n := len(s.offsets); n > 0 {
		s.offsets = s.offsets[:n-1]
	}
}

// FillRect tints the background of every cell r touches, blending over
// whatever background the cell already has.
func (s *TcellSurface) FillRect(r layout.Rect, role Role, opacity float64) {
	if s.screen == nil {
		return
	}
	o := s.origin()
	r.X += o.X
	r.Y += o.Y
	area := toCells(r).intersect(s.clip())
	tint := s.theme.RoleColor(role)

	for y := area.y0; y < area.y1; y++ {
		for x := area.x0; x < area.x1; x++ {
			mainc, combc, style, _ := s.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			if bg == tcell.ColorDefault {
				bg = s.theme.Canvas
			}
			if mainc == 0 {
				mainc = ' '
			}
			s.screen.SetContent(x, y, mainc, combc, style.Background(blend(bg, tint, opacity)))
		}
	}
}

// DrawText writes text starting at the cell holding at, keeping each cell's
// background so earlier fills stay visible.
func (s *TcellSurface) DrawText(text string, at layout.Point, _ FontSpec, role Role) {
	if s.screen == nil {
		return
	}
	o := s.origin()
	x := int(math.Floor(at.X + o.X + cellEpsilon))
	y := int(math.Floor(at.Y + o.Y + cellEpsilon))
	clip := s.clip()
	fg := s.theme.RoleColor(role)

	for _, ru := range text {
		w := s.widths.width(ru)
		if w == 0 {
			continue
		}
		if clip.contains(x, y) {
			_, _, style, _ := s.screen.GetContent(x, y)
			_, bg, _ := style.Decompose()
			if bg == tcell.ColorDefault {
				bg = s.theme.Background
			}
			s.screen.SetContent(x, y, ru, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		x += w
	}
}

// runeWidthCache memoises go-runewidth lookups for ASCII.
type runeWidthCache struct {
	ascii [128]int8
}

func (c *runeWidthCache) width(ru rune) int {
	if ru >= 0 && ru < 128 {
		if w := c.ascii[ru]; w != 0 {
			return int(w) - 1
		}
		w := runewidth.RuneWidth(ru)
		c.ascii[ru] = int8(w) + 1
		return w
	}
	return runewidth.RuneWidth(ru)
}
