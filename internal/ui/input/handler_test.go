package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rhex/internal/viewer"
)

func nextAction(t *testing.T, ch chan Action) Action {
	t.Helper()
	select {
	case action := <-ch:
		return action
	default:
		t.Fatal("Expected an action to be emitted")
		return nil
	}
}

func expectNoAction(t *testing.T, ch chan Action) {
	t.Helper()
	select {
	case action := <-ch:
		t.Fatalf("Expected no action, got %T", action)
	default:
	}
}

func TestQuestionMarkTogglesHelpInNormalMode(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, '?', 0))

	if _, ok := nextAction(t, actionChan).(HelpToggleAction); !ok {
		t.Fatalf("Expected HelpToggleAction for '?'")
	}
}

func TestQQuitsOutsidePrompt(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)

	if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("Expected ProcessEvent to report quit")
	}
	if _, ok := nextAction(t, actionChan).(QuitAction); !ok {
		t.Fatalf("Expected QuitAction")
	}
}

func TestQIsTextInsidePrompt(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetMode(Mode{PromptActive: true})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("typing q in the prompt must not quit")
	}
	act, ok := nextAction(t, actionChan).(KeyAction)
	if !ok || act.Event != (viewer.KeyEvent{Key: viewer.KeyRune, Rune: 'q'}) {
		t.Fatalf("Expected rune key action, got %#v", act)
	}
}

func TestCtrlQQuitsEverywhere(t *testing.T) {
	for _, mode := range []Mode{{}, {PromptActive: true}, {HelpVisible: true}} {
		actionChan := make(chan Action, 1)
		handler := NewInputHandler(actionChan)
		handler.SetMode(mode)

		if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, 0)) {
			t.Fatalf("mode %+v: Ctrl+Q should quit", mode)
		}
		if _, ok := nextAction(t, actionChan).(QuitAction); !ok {
			t.Fatalf("mode %+v: expected QuitAction", mode)
		}
	}
}

func TestCtrlZSuspends(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetMode(Mode{PromptActive: true})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, 0)) {
		t.Fatalf("suspend is not a quit")
	}
	if _, ok := nextAction(t, actionChan).(SuspendAction); !ok {
		t.Fatalf("Expected SuspendAction")
	}
}

func TestQClosesHelpWithoutQuitting(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetMode(Mode{HelpVisible: true})

	if !handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0)) {
		t.Fatalf("q over help should not quit")
	}
	if _, ok := nextAction(t, actionChan).(HelpHideAction); !ok {
		t.Fatalf("Expected HelpHideAction")
	}

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyDown, 0, 0))
	expectNoAction(t, actionChan)
}

func TestControlChordsBecomeRuneEvents(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want viewer.KeyEvent
	}{
		{tcell.KeyCtrlC, viewer.KeyEvent{Key: viewer.KeyRune, Rune: 'c', Mods: viewer.ModCtrl}},
		{tcell.KeyCtrlA, viewer.KeyEvent{Key: viewer.KeyRune, Rune: 'a', Mods: viewer.ModCtrl}},
		{tcell.KeyCtrlF, viewer.KeyEvent{Key: viewer.KeyRune, Rune: 'f', Mods: viewer.ModCtrl}},
		{tcell.KeyEnter, viewer.KeyEvent{Key: viewer.KeyEnter}},
		{tcell.KeyTab, viewer.KeyEvent{Key: viewer.KeyTab}},
		{tcell.KeyBackspace2, viewer.KeyEvent{Key: viewer.KeyBackspace}},
		{tcell.KeyEscape, viewer.KeyEvent{Key: viewer.KeyEscape}},
		{tcell.KeyPgDn, viewer.KeyEvent{Key: viewer.KeyPageDown}},
	}

	for _, tt := range tests {
		actionChan := make(chan Action, 1)
		handler := NewInputHandler(actionChan)
		handler.ProcessEvent(tcell.NewEventKey(tt.key, 0, 0))

		act, ok := nextAction(t, actionChan).(KeyAction)
		if !ok {
			t.Fatalf("key %v: expected KeyAction", tt.key)
		}
		// Terminals may or may not report the modifier alongside the code.
		got := act.Event
		if got.Key != tt.want.Key || got.Rune != tt.want.Rune || got.Mods&tt.want.Mods != tt.want.Mods {
			t.Fatalf("key %v: got %#v want %#v", tt.key, got, tt.want)
		}
	}
}

func TestAltRuneCarriesModifier(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModAlt))

	act, ok := nextAction(t, actionChan).(KeyAction)
	if !ok || act.Event.Mods&viewer.ModAlt == 0 || act.Event.Rune != 'c' {
		t.Fatalf("Expected Alt+C key action, got %#v", act)
	}
}

func TestMouseTransitions(t *testing.T) {
	actionChan := make(chan Action, 4)
	handler := NewInputHandler(actionChan)
	handler.SetOrigin(0, 1)

	steps := []struct {
		x, y    int
		buttons tcell.ButtonMask
		kind    viewer.PointerKind
		button  viewer.Button
	}{
		{11, 1, tcell.Button1, viewer.PointerDown, viewer.ButtonPrimary},
		{14, 2, tcell.Button1, viewer.PointerMove, viewer.ButtonNone},
		{14, 2, tcell.ButtonNone, viewer.PointerUp, viewer.ButtonPrimary},
		{20, 3, tcell.ButtonNone, viewer.PointerMove, viewer.ButtonNone},
	}

	for i, s := range steps {
		handler.ProcessEvent(tcell.NewEventMouse(s.x, s.y, s.buttons, tcell.ModNone))
		act, ok := nextAction(t, actionChan).(PointerAction)
		if !ok {
			t.Fatalf("step %d: expected PointerAction", i)
		}
		if act.Event.Kind != s.kind || act.Event.Button != s.button {
			t.Fatalf("step %d: kind=%v button=%v want %v %v", i, act.Event.Kind, act.Event.Button, s.kind, s.button)
		}
		wantX, wantY := float64(s.x)+0.5, float64(s.y-1)+0.5
		if act.Event.X != wantX || act.Event.Y != wantY {
			t.Fatalf("step %d: position (%v,%v) want (%v,%v)", i, act.Event.X, act.Event.Y, wantX, wantY)
		}
	}
}

func TestMouseWheel(t *testing.T) {
	actionChan := make(chan Action, 2)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	if act, ok := nextAction(t, actionChan).(PointerAction); !ok || act.Event.Kind != viewer.WheelDown {
		t.Fatalf("Expected wheel-down pointer action")
	}
	handler.ProcessEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	if act, ok := nextAction(t, actionChan).(PointerAction); !ok || act.Event.Kind != viewer.WheelUp {
		t.Fatalf("Expected wheel-up pointer action")
	}
}

func TestResizeEmitsAction(t *testing.T) {
	actionChan := make(chan Action, 1)
	handler := NewInputHandler(actionChan)
	handler.ProcessEvent(tcell.NewEventResize(100, 30))

	act, ok := nextAction(t, actionChan).(ResizeAction)
	if !ok || act.Width != 100 || act.Height != 30 {
		t.Fatalf("Expected ResizeAction 100x30, got %#v", act)
	}
}
