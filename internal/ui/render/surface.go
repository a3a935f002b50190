package render

import "github.com/kk-code-lab/rhex/internal/layout"

// Surface is a drawing backend for planned ops. Coordinates are in the
// surface's own units and are affected by the current translate and clip.
type Surface interface {
	FillRect(r layout.Rect, role Role, opacity float64)
	DrawText(text string, at layout.Point, font FontSpec, role Role)
	PushClip(r layout.Rect)
	PopClip()
	PushTranslate(delta layout.Point)
	PopTranslate()
}

// Execute replays ops on s in order.
func Execute(s Surface, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpPushClip:
			s.PushClip(op.Rect)
		case OpPopClip:
			s.PopClip()
		case OpPushTranslate:
			s.PushTranslate(op.Delta)
		case OpPopTranslate:
			s.PopTranslate()
		case OpFillRect:
			s.FillRect(op.Rect, op.Role, op.Opacity)
		case OpText:
			s.DrawText(op.Text, op.At, op.Font, op.Role)
		}
	}
}
