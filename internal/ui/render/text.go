package render

import "github.com/gdamore/tcell/v2"

func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && r.widths.width(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := r.widths.width(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

func (r *Renderer) fillRow(startX, y, endX int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawBar draws text as a full-width bar on row y.
func (r *Renderer) drawBar(y, w int, text string, style tcell.Style) {
	x := r.drawTextLine(0, y, w, text, style)
	r.fillRow(x, y, w, style)
}
