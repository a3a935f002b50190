package viewer

import "github.com/kk-code-lab/rhex/internal/ui/render"

// Frame describes the grid for the render planner.
func (c *Controller) Frame() render.Frame {
	f := render.Frame{
		Layout:    c.layout,
		Scroll:    c.scroll,
		Viewport:  c.viewport,
		Selection: &c.sel,
		Font:      render.DefaultFont(),
	}
	if c.src != nil {
		f.Source = c.src
	}
	if c.engine.MatchCount() > 0 {
		f.Hits = c.engine
	}
	return f
}

// Status summarises position, selection and search for the status line.
func (c *Controller) Status() render.Status {
	s := render.Status{
		TopOffset: c.TopOffset(),
		Length:    c.length(),
		Pattern:   c.engine.Text(),
		IsHex:     c.engine.Pattern().IsHex,
		Matches:   c.engine.MatchCount(),
		Current:   c.engine.Cursor(),
		Scanning:  c.Searching(),
		Message:   c.message,
	}
	if start, end, ok := c.sel.Normalized(); ok {
		s.HasSelection = true
		s.SelStart, s.SelEnd = start, end
		s.SelDecoded = c.sel.InDecoded()
	}
	return s
}

// Footer selects the footer hints for the current state.
func (c *Controller) Footer() render.FooterContext {
	return render.FooterContext{
		SearchActive: c.searchFocused,
		Selecting:    c.sel.Selecting(),
		HasSelection: c.sel.Active(),
		HasMatches:   c.engine.MatchCount() > 0,
		Clipboard:    c.clipboard != nil,
	}
}

// Prompt is the search prompt state.
func (c *Controller) Prompt() render.Prompt {
	return render.Prompt{
		Active: c.searchFocused,
		Text:   c.query,
		Options: render.HelpOptions{
			CaseSensitive: c.opts.CaseSensitive,
			WholeWords:    c.opts.WholeWords,
			FromTop:       c.opts.FromTop,
		},
	}
}
