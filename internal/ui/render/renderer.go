package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rhex/internal/layout"
	textutil "github.com/kk-code-lab/rhex/internal/textutil"
)

// Prompt is the search input line.
type Prompt struct {
	Active  bool
	Text    string
	Options HelpOptions
}

// View is one full screen: header, hex grid, status line and footer.
type View struct {
	Title    string
	Kind     string
	Frame    Frame
	Status   Status
	Footer   FooterContext
	Prompt   Prompt
	ShowHelp bool
}

// Renderer handles all UI rendering
type Renderer struct {
	screen  tcell.Screen
	theme   ColorTheme
	surface *TcellSurface
	widths  runeWidthCache
}

func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen:  screen,
		theme:   theme,
		surface: NewTcellSurface(screen, theme, layout.Rect{}),
	}
}

func (r *Renderer) Theme() ColorTheme {
	return r.theme
}

// CharWidth is the measured width of a hex digit on this renderer's screen.
func (r *Renderer) CharWidth() float64 {
	return r.surface.MeasureText("0")
}

// Render draws v and shows the screen.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	r.screen.HideCursor()
	w, h := r.screen.Size()
	m := computeLayout(w, h)
	if m.width == 0 || m.height == 0 {
		r.screen.Show()
		return
	}

	if v.ShowHelp {
		r.drawHelpOverlay(v.Prompt.Options, w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(v, m)
	if m.gridHeight > 0 {
		r.surface.Reset(m.gridRect())
		Execute(r.surface, Plan(v.Frame))
	}
	r.drawStatusLine(v, m)
	r.drawFooter(v, m)
	r.screen.Show()
}

func (r *Renderer) drawHeader(v View, m layoutMetrics) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	title := textutil.BarText(v.Title)
	if title == "" {
		title = "no source"
	}

	var info []string
	if v.Frame.Source != nil {
		info = append(info, FormatSize(v.Frame.Source.Len()))
	}
	if v.Kind != "" {
		info = append(info, v.Kind)
	}
	suffix := ""
	if len(info) > 0 {
		suffix = " (" + strings.Join(info, ", ") + ")"
	}

	text := " rhex · " + textutil.TruncateToWidth(title, m.width-textutil.DisplayWidth(suffix)-8) + suffix
	r.drawBar(m.headerY, m.width, text, style)
}

func (r *Renderer) drawStatusLine(v View, m layoutMetrics) {
	if m.statusY < 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Reverse(true)
	text := textutil.TruncateToWidth(textutil.BarText(formatStatusLine(v.Status)), m.width)
	r.drawBar(m.statusY, m.width, text, style)
}

func (r *Renderer) drawFooter(v View, m layoutMetrics) {
	base := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	if !v.Prompt.Active {
		text := textutil.TruncateToWidth(buildFooterHelpText(v.Footer), m.width)
		r.drawBar(m.footerY, m.width, text, base)
		return
	}

	label := "search: "
	flags := formatPromptFlags(v.Prompt.Options)
	promptStyle := base.Foreground(r.theme.PromptFg).Bold(true)
	x := r.drawTextLine(0, m.footerY, m.width, label, promptStyle)

	input := textutil.BarText(v.Prompt.Text)
	room := m.width - x - textutil.DisplayWidth(flags) - 1
	x = r.drawTextLine(x, m.footerY, room, input, base)
	r.screen.ShowCursor(x, m.footerY)
	r.fillRow(x, m.footerY, m.width, base)

	if fx := m.width - textutil.DisplayWidth(flags); fx > x {
		r.drawTextLine(fx, m.footerY, m.width-fx, flags, base.Dim(true))
	}
}

func formatPromptFlags(opts HelpOptions) string {
	flag := func(on bool, name string) string {
		if on {
			return "[" + name + "]"
		}
		return " " + name + " "
	}
	return fmt.Sprintf("%s%s%s", flag(opts.CaseSensitive, "Aa"), flag(opts.WholeWords, "W"), flag(!opts.FromTop, "↧"))
}

func (r *Renderer) drawHelpOverlay(opts HelpOptions, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillRow(0, y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	if titleWidth := textutil.DisplayWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines(opts) {
		if row >= h-1 {
			break
		}
		text := textutil.TruncateToWidth(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 1 {
		r.drawBar(h-1, w, textutil.TruncateToWidth("? toggle · Esc/q close", w), headerStyle)
	}
}
