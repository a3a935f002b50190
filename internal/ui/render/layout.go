package render

import "github.com/kk-code-lab/rhex/internal/layout"

const (
	headerRows = 1
	footerRows = 2 // status line + hints or search prompt
)

type layoutMetrics struct {
	width, height int
	headerY       int
	gridTop       int
	gridHeight    int
	statusY       int
	footerY       int
}

func computeLayout(w, h int) layoutMetrics {
	m := layoutMetrics{width: w, height: h}
	if w <= 0 || h <= 0 {
		return m
	}
	m.headerY = 0
	m.gridTop = headerRows
	m.gridHeight = h - headerRows - footerRows
	if m.gridHeight < 0 {
		m.gridHeight = 0
	}
	m.statusY = h - 2
	m.footerY = h - 1
	if m.statusY < m.gridTop {
		m.statusY = -1
	}
	return m
}

func (m layoutMetrics) gridRect() layout.Rect {
	return layout.Rect{X: 0, Y: float64(m.gridTop), W: float64(m.width), H: float64(m.gridHeight)}
}

// GridViewport is the size of the hex grid on a w×h cell screen.
func GridViewport(w, h int) layout.Size {
	r := computeLayout(w, h).gridRect()
	return layout.Size{W: r.W, H: r.H}
}

// GridOrigin is the screen cell of the grid's top-left corner.
func GridOrigin(w, h int) (x, y int) {
	return 0, computeLayout(w, h).gridTop
}
