package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rhex/internal/ui/input"
	renderui "github.com/kk-code-lab/rhex/internal/ui/render"
)

// Run processes events until the user quits.
func (app *Application) Run() {
	app.render()
	renderPending := false

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		app.scroller.sync(app.ctrl.AutoScrolling(), app.ctrl.TickInterval())

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-app.scroller.C():
			if app.ctrl.Tick() {
				renderPending = true
			}
		case res := <-app.results:
			if app.ctrl.HandleSearchResult(res) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.scroller.stop()
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	app.input.SetMode(input.Mode{
		HelpVisible:  app.showHelp,
		PromptActive: app.ctrl.SearchFocused(),
	})

	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventMouse, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return false
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action input.Action) bool {
	switch a := action.(type) {
	case input.QuitAction:
		app.shouldQuit = true
		return false
	case input.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case input.ResizeAction:
		app.resize(a.Width, a.Height)
		app.screen.Sync()
		return true
	case input.HelpToggleAction:
		app.showHelp = !app.showHelp
		return true
	case input.HelpHideAction:
		if !app.showHelp {
			return false
		}
		app.showHelp = false
		return true
	case input.KeyAction:
		return app.ctrl.HandleKey(a.Event)
	case input.PointerAction:
		return app.ctrl.HandlePointer(a.Event)
	}
	return false
}

func (app *Application) resize(w, h int) {
	app.ctrl.SetViewport(renderui.GridViewport(w, h))
	app.input.SetOrigin(renderui.GridOrigin(w, h))
}

func (app *Application) view() renderui.View {
	return renderui.View{
		Title:    app.title,
		Kind:     app.kind,
		Frame:    app.ctrl.Frame(),
		Status:   app.ctrl.Status(),
		Footer:   app.ctrl.Footer(),
		Prompt:   app.ctrl.Prompt(),
		ShowHelp: app.showHelp,
	}
}

func (app *Application) render() {
	app.renderer.Render(app.view())
}
