package viewer

// Key identifies a non-printable key, or KeyRune for a printable one.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

// Mod is a set of held modifier keys.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is one key press. Control chords are reported as KeyRune with
// ModCtrl and the lower-case letter, so Ctrl+C is {KeyRune, 'c', ModCtrl}.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Mod
}

func (e KeyEvent) ctrl(r rune) bool {
	return e.Key == KeyRune && e.Mods&ModCtrl != 0 && e.Rune == r
}

func (e KeyEvent) alt(r rune) bool {
	return e.Key == KeyRune && e.Mods&ModAlt != 0 && e.Rune == r
}

// PointerKind is what happened to the pointer.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	WheelUp
	WheelDown
)

// Button is the pointer button involved in a PointerDown or PointerUp.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer action at (X, Y) in viewport coordinates, that
// is relative to the top-left corner of the grid, before scrolling.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   float64
	Button Button
	Mods   Mod
}
