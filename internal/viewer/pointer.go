package viewer

import "github.com/kk-code-lab/rhex/internal/layout"

// HandlePointer applies a pointer event. It reports whether anything visible
// changed.
func (c *Controller) HandlePointer(ev PointerEvent) bool {
	pt := layout.Point{X: ev.X, Y: ev.Y}

	switch ev.Kind {
	case WheelUp:
		return c.ScrollLines(-c.cfg.WheelLines)
	case WheelDown:
		return c.ScrollLines(c.cfg.WheelLines)

	case PointerDown:
		if ev.Button != ButtonPrimary || !c.inViewport(pt) {
			return false
		}
		offset, ok := c.offsetAt(pt)
		if !ok {
			return false
		}
		c.pointer = pt
		c.message = ""
		c.searchFocused = false
		c.sel.Begin(offset, c.layout.BandAt(pt, c.scroll) == layout.BandDecoded)
		return true

	case PointerMove:
		c.pointer = pt
		if !c.sel.Selecting() {
			return false
		}
		return c.extendToPointer()

	case PointerUp:
		if !c.sel.Selecting() {
			return false
		}
		c.sel.End()
		return true
	}
	return false
}

// Tick advances auto-scroll. While a drag is held within the margin of the
// top or bottom edge the view moves one step and the selection cursor is
// re-derived from the last pointer position. Outside a drag it does
// nothing.
func (c *Controller) Tick() bool {
	if !c.sel.Selecting() {
		return false
	}

	as := c.cfg.AutoScroll
	moved := false
	switch {
	case c.pointer.Y > c.viewport.H-as.Margin:
		moved = c.ScrollBy(0, as.Step)
	case c.pointer.Y < as.Margin:
		moved = c.ScrollBy(0, -as.Step)
	}
	extended := c.extendToPointer()
	return moved || extended
}

func (c *Controller) inViewport(pt layout.Point) bool {
	return pt.X >= 0 && pt.Y >= 0 && pt.X < c.viewport.W && pt.Y < c.viewport.H
}

func (c *Controller) offsetAt(pt layout.Point) (int64, bool) {
	return c.layout.OffsetForPoint(pt, c.scroll, c.length(), c.src != nil)
}

func (c *Controller) extendToPointer() bool {
	offset, ok := c.offsetAt(c.pointer)
	if !ok {
		return false
	}
	before := c.sel.Cursor()
	c.sel.Extend(offset)
	return c.sel.Cursor() != before
}
