package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rhex/internal/viewer"
)

// Action is an input-derived request for the app loop.
type Action interface{}

// KeyAction forwards a key press to the viewer.
type KeyAction struct {
	Event viewer.KeyEvent
}

// PointerAction forwards a pointer event to the viewer.
type PointerAction struct {
	Event viewer.PointerEvent
}

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}
type QuitAction struct{}

// SuspendAction hands the terminal back to the shell (Ctrl+Z).
type SuspendAction struct{}

// Mode is the app state that decides how keys are routed.
type Mode struct {
	HelpVisible  bool
	PromptActive bool
}

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan Action
	mode       Mode

	originX, originY int
	buttons          tcell.ButtonMask
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetMode updates the routing state. The app calls it before every event.
func (ih *InputHandler) SetMode(mode Mode) {
	ih.mode = mode
}

// SetOrigin sets the screen cell of the grid's top-left corner. Pointer
// positions are reported relative to it.
func (ih *InputHandler) SetOrigin(x, y int) {
	ih.originX, ih.originY = x, y
}

// ProcessEvent converts a tcell event into Actions. It returns false when
// the event asks the app to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventMouse:
		ih.processMouseEvent(ev)
		return true
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	ctrlQ := ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers()&tcell.ModCtrl != 0
	if ev.Key() == tcell.KeyCtrlQ || ctrlQ {
		ih.actionChan <- QuitAction{}
		return false
	}
	if ev.Key() == tcell.KeyCtrlZ || (ev.Key() == tcell.KeyRune && ev.Rune() == 'z' && ev.Modifiers()&tcell.ModCtrl != 0) {
		ih.actionChan <- SuspendAction{}
		return true
	}

	if ih.mode.HelpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- HelpHideAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- HelpHideAction{}
			}
		}
		return true
	}

	if !ih.mode.PromptActive && ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- QuitAction{}
			return false
		case '?':
			ih.actionChan <- HelpToggleAction{}
			return true
		}
	}

	if key, ok := translateKey(ev); ok {
		ih.actionChan <- KeyAction{Event: key}
	}
	return true
}

func translateKey(ev *tcell.EventKey) (viewer.KeyEvent, bool) {
	mods := translateMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return viewer.KeyEvent{Key: viewer.KeyRune, Rune: ev.Rune(), Mods: mods}, true
	case tcell.KeyUp:
		return viewer.KeyEvent{Key: viewer.KeyUp, Mods: mods}, true
	case tcell.KeyDown:
		return viewer.KeyEvent{Key: viewer.KeyDown, Mods: mods}, true
	case tcell.KeyLeft:
		return viewer.KeyEvent{Key: viewer.KeyLeft, Mods: mods}, true
	case tcell.KeyRight:
		return viewer.KeyEvent{Key: viewer.KeyRight, Mods: mods}, true
	case tcell.KeyPgUp:
		return viewer.KeyEvent{Key: viewer.KeyPageUp, Mods: mods}, true
	case tcell.KeyPgDn:
		return viewer.KeyEvent{Key: viewer.KeyPageDown, Mods: mods}, true
	case tcell.KeyHome:
		return viewer.KeyEvent{Key: viewer.KeyHome, Mods: mods}, true
	case tcell.KeyEnd:
		return viewer.KeyEvent{Key: viewer.KeyEnd, Mods: mods}, true
	case tcell.KeyEnter:
		return viewer.KeyEvent{Key: viewer.KeyEnter, Mods: mods}, true
	case tcell.KeyEscape:
		return viewer.KeyEvent{Key: viewer.KeyEscape, Mods: mods}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return viewer.KeyEvent{Key: viewer.KeyBackspace, Mods: mods}, true
	case tcell.KeyTab:
		return viewer.KeyEvent{Key: viewer.KeyTab, Mods: mods}, true
	}

	// Control chords arrive as their own key codes.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return viewer.KeyEvent{Key: viewer.KeyRune, Rune: r, Mods: mods | viewer.ModCtrl}, true
	}
	return viewer.KeyEvent{}, false
}

func translateMods(m tcell.ModMask) viewer.Mod {
	var mods viewer.Mod
	if m&tcell.ModShift != 0 {
		mods |= viewer.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= viewer.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= viewer.ModAlt
	}
	return mods
}

// processMouseEvent turns tcell's button-state reports into press, move and
// release transitions for the primary button, plus wheel steps.
func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pe := viewer.PointerEvent{
		X:    float64(x-ih.originX) + 0.5,
		Y:    float64(y-ih.originY) + 0.5,
		Mods: translateMods(ev.Modifiers()),
	}

	switch {
	case buttons&tcell.WheelUp != 0:
		pe.Kind = viewer.WheelUp
		ih.actionChan <- PointerAction{Event: pe}
		return
	case buttons&tcell.WheelDown != 0:
		pe.Kind = viewer.WheelDown
		ih.actionChan <- PointerAction{Event: pe}
		return
	}

	const tracked = tcell.Button1 | tcell.Button2 | tcell.Button3
	pressed := buttons & tracked
	prev := ih.buttons
	ih.buttons = pressed

	switch {
	case pressed&^prev != 0:
		pe.Kind = viewer.PointerDown
		pe.Button = translateButton(pressed &^ prev)
	case prev&^pressed != 0:
		pe.Kind = viewer.PointerUp
		pe.Button = translateButton(prev &^ pressed)
	default:
		pe.Kind = viewer.PointerMove
	}
	ih.actionChan <- PointerAction{Event: pe}
}

func translateButton(b tcell.ButtonMask) viewer.Button {
	switch {
	case b&tcell.Button1 != 0:
		return viewer.ButtonPrimary
	case b&tcell.Button2 != 0:
		return viewer.ButtonSecondary
	case b&tcell.Button3 != 0:
		return viewer.ButtonMiddle
	default:
		return viewer.ButtonNone
	}
}
