package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background tcell.Color
	Foreground tcell.Color
	// Canvas is the colour highlights are blended over when a cell has no
	// concrete background.
	Canvas           tcell.Color
	Address          tcell.Color
	Byte             tcell.Color
	SelectionHex     tcell.Color
	SelectionDecoded tcell.Color
	SearchHit        tcell.Color
	FocusHit         tcell.Color
	HeaderBg         tcell.Color
	HeaderFg         tcell.Color
	FooterBg         tcell.Color
	FooterFg         tcell.Color
	PromptFg         tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:       tcell.ColorDefault,
		Foreground:       tcell.ColorDefault,
		Canvas:           tcell.ColorBlack,
		Address:          tcell.Color244,
		Byte:             tcell.ColorDefault,
		SelectionHex:     tcell.ColorDodgerBlue,
		SelectionDecoded: tcell.ColorSeaGreen,
		SearchHit:        tcell.ColorOrange,
		FocusHit:         tcell.ColorOrangeRed,
		HeaderBg:         tcell.Color33,
		HeaderFg:         tcell.ColorWhite,
		FooterBg:         tcell.ColorDefault,
		FooterFg:         tcell.ColorDefault,
		PromptFg:         tcell.ColorYellow,
	}
}

// RoleColor maps a draw role to its colour.
func (t ColorTheme) RoleColor(role Role) tcell.Color {
	switch role {
	case RoleAddress:
		return t.Address
	case RoleSelectionHex:
		return t.SelectionHex
	case RoleSelectionDecoded:
		return t.SelectionDecoded
	case RoleSearchHit:
		return t.SearchHit
	case RoleFocusHit:
		return t.FocusHit
	default:
		return t.Byte
	}
}

// Set assigns the colour called name, using the keys of the [theme] config
// section. It reports false for unknown names.
func (t *ColorTheme) Set(name string, c tcell.Color) bool {
	slot := map[string]*tcell.Color{
		"background":        &t.Background,
		"foreground":        &t.Foreground,
		"canvas":            &t.Canvas,
		"address":           &t.Address,
		"byte":              &t.Byte,
		"selection_hex":     &t.SelectionHex,
		"selection_decoded": &t.SelectionDecoded,
		"search_hit":        &t.SearchHit,
		"focus_hit":         &t.FocusHit,
		"header_bg":         &t.HeaderBg,
		"header_fg":         &t.HeaderFg,
		"footer_bg":         &t.FooterBg,
		"footer_fg":         &t.FooterFg,
		"prompt_fg":         &t.PromptFg,
	}[name]
	if slot == nil {
		return false
	}
	*slot = c
	return true
}

// blend mixes tint over base at the given opacity. Colours without an RGB
// value (such as tcell.ColorDefault) fall back to the other operand.
func blend(base, tint tcell.Color, opacity float64) tcell.Color {
	tc, ok := toColorful(tint)
	if !ok {
		return base
	}
	bc, ok := toColorful(base)
	if !ok {
		return tint
	}
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return tint
	}
	r, g, b := bc.BlendRgb(tc, opacity).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	if c == tcell.ColorDefault || !c.Valid() {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
