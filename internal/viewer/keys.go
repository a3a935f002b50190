package viewer

import textutil "github.com/kk-code-lab/rhex/internal/textutil"

// HandleKey applies a key press. It reports whether anything visible
// changed.
func (c *Controller) HandleKey(ev KeyEvent) bool {
	c.message = ""

	switch {
	case ev.ctrl('c'):
		c.Copy()
		return true
	case ev.ctrl('a'):
		return c.SelectAll()
	case ev.ctrl('f'):
		return c.FocusSearch()
	case ev.alt('c'):
		opts := c.opts
		opts.CaseSensitive = !opts.CaseSensitive
		return c.SetOptions(opts)
	case ev.alt('w'):
		opts := c.opts
		opts.WholeWords = !opts.WholeWords
		return c.SetOptions(opts)
	case ev.alt('t'):
		opts := c.opts
		opts.FromTop = !opts.FromTop
		return c.SetOptions(opts)
	}

	if c.searchFocused {
		return c.handlePromptKey(ev)
	}

	switch ev.Key {
	case KeyUp:
		return c.ScrollLines(-1)
	case KeyDown:
		return c.ScrollLines(1)
	case KeyPageUp:
		return c.ScrollLines(-c.pageLines())
	case KeyPageDown:
		return c.ScrollLines(c.pageLines())
	case KeyLeft:
		return c.ScrollBy(-c.layout.CharWidth, 0)
	case KeyRight:
		return c.ScrollBy(c.layout.CharWidth, 0)
	case KeyHome:
		return c.ScrollToOffset(0)
	case KeyEnd:
		return c.ScrollToOffset(c.length())
	case KeyEnter:
		return c.FindNext()
	case KeyEscape:
		return c.clearAll()
	case KeyRune:
		if ev.Mods&(ModCtrl|ModAlt) != 0 {
			return false
		}
		switch ev.Rune {
		case '/':
			return c.FocusSearch()
		case 'n':
			return c.FindNext()
		}
	}
	return false
}

func (c *Controller) handlePromptKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEnter:
		return c.SubmitSearch(c.query)
	case KeyEscape:
		c.searchFocused = false
		return true
	case KeyBackspace:
		if c.query == "" {
			return false
		}
		c.query = textutil.DropLastGrapheme(c.query)
		return true
	case KeyRune:
		if ev.ctrl('u') {
			c.query = ""
			return true
		}
		if ev.Mods&(ModCtrl|ModAlt) != 0 {
			return false
		}
		c.query += string(ev.Rune)
		return true
	}
	return false
}

// FocusSearch opens the search prompt.
func (c *Controller) FocusSearch() bool {
	if c.searchFocused {
		return false
	}
	c.searchFocused = true
	return true
}

func (c *Controller) clearAll() bool {
	had := c.sel.Active() || c.engine.Text() != ""
	c.sel.Clear()
	c.ClearSearch()
	return had
}
