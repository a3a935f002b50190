// Package app hosts the hex viewer on a tcell screen.
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rhex/internal/clipboard"
	"github.com/kk-code-lab/rhex/internal/logging"
	"github.com/kk-code-lab/rhex/internal/search"
	"github.com/kk-code-lab/rhex/internal/source"
	"github.com/kk-code-lab/rhex/internal/ui/input"
	renderui "github.com/kk-code-lab/rhex/internal/ui/render"
	"github.com/kk-code-lab/rhex/internal/viewer"
)

// Options configure NewApplication. A nil Screen opens the terminal.
type Options struct {
	Screen    tcell.Screen
	Viewer    viewer.Config
	Theme     renderui.ColorTheme
	Clipboard clipboard.Sink
	Logger    *logging.Logger
	Tickers   TickerFactory
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	ctrl     *viewer.Controller
	renderer *renderui.Renderer
	input    *input.InputHandler
	actionCh chan input.Action
	results  chan search.ChunkResult
	logger   *logging.Logger
	scroller autoScroller

	title      string
	kind       string
	showHelp   bool
	shouldQuit bool
	closed     bool
}

func NewApplication(opts Options) (*Application, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	// Parse mouse sequences so drags reach the viewer instead of leaking as keys.
	screen.EnableMouse()

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	cfg := opts.Viewer
	cfg.Logger = logger.With("component", "viewer")

	results := make(chan search.ChunkResult, 4)
	ctrl := viewer.New(cfg)
	ctrl.SetSpawner(viewer.AsyncSpawner(results))
	if opts.Clipboard != nil {
		ctrl.SetClipboard(opts.Clipboard)
		logger.Debug("clipboard sink ready", "sink", opts.Clipboard.Name())
	}

	tickers := opts.Tickers
	if tickers == nil {
		tickers = NewTimeTicker
	}

	theme := opts.Theme
	if theme == (renderui.ColorTheme{}) {
		theme = renderui.GetColorTheme()
	}

	actionCh := make(chan input.Action, 16)
	app := &Application{
		screen:   screen,
		ctrl:     ctrl,
		renderer: renderui.NewRenderer(screen, theme),
		input:    input.NewInputHandler(actionCh),
		actionCh: actionCh,
		results:  results,
		logger:   logger,
		scroller: autoScroller{factory: tickers},
	}
	app.resize(screen.Size())
	return app, nil
}

// SetSource replaces the active source; the previous one is closed.
func (app *Application) SetSource(src source.ByteSource, title string) {
	app.ctrl.SetSource(src)
	app.title = title
	app.kind = source.Sniff(src).String()
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.closed {
		return nil
	}
	app.closed = true
	app.scroller.stop()
	err := app.ctrl.Close()
	app.screen.Fini()
	return err
}
