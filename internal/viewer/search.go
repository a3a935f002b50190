package viewer

import (
	"strings"

	"github.com/kk-code-lab/rhex/internal/search"
)

// SubmitSearch runs the search for text, or moves to the next match when
// text and options repeat the previous search. Blank text is ignored.
func (c *Controller) SubmitSearch(text string) bool {
	if c.src == nil || strings.TrimSpace(text) == "" {
		return false
	}
	c.query = text
	c.message = ""

	out := c.engine.Submit(text, c.opts, c.TopOffset())
	switch out.Kind {
	case search.OutcomeNoop:
		c.scan = nil
		c.logger.Debug("search pattern rejected", "text", text)
		return true
	case search.OutcomeFindNext:
		c.scrollToMatch(out.Target)
		return true
	}

	c.scan = out.Scan
	p := out.Scan.Pattern()
	c.logger.Debug("search started",
		"gen", out.Scan.Gen(),
		"hex", p.IsHex,
		"pattern_len", p.Len(),
		"chunk_size", out.Scan.ChunkSize(),
	)
	c.pump()
	return true
}

// FindNext repeats the last submitted search.
func (c *Controller) FindNext() bool {
	if c.query == "" {
		return false
	}
	return c.SubmitSearch(c.query)
}

// HandleSearchResult commits a chunk result and schedules the next chunk.
// Results of an older generation are dropped and reported as no change.
func (c *Controller) HandleSearchResult(res search.ChunkResult) bool {
	commit, ok := c.engine.Commit(res)
	if !ok {
		c.logger.Debug("dropped stale search result", "gen", res.Gen, "current", c.engine.Gen())
		return false
	}
	c.applyCommit(commit)
	if !commit.Done {
		c.pump()
	}
	return true
}

// pump reads the next chunk and hands it to the spawner. Without a spawner
// it compares inline until the scan finishes.
func (c *Controller) pump() {
	for c.scan != nil {
		chunk, ok := c.scan.Next(c.src)
		if !ok {
			c.applyCommit(c.engine.Abort())
			return
		}
		if c.spawn != nil {
			c.spawn(c.scan.Pattern(), chunk)
			return
		}
		commit, _ := c.engine.Commit(search.Compare(c.scan.Pattern(), chunk))
		c.applyCommit(commit)
	}
}

func (c *Controller) applyCommit(commit search.Commit) {
	if !commit.Done {
		return
	}
	c.scan = nil
	c.logger.Debug("search finished", "matches", c.engine.MatchCount(), "gen", c.engine.Gen())
	if commit.HasTarget {
		c.ScrollToOffset(commit.Target)
	}
}

func (c *Controller) scrollToMatch(offset int64) {
	target := offset - c.cfg.Search.LookBehind
	if target < 0 {
		target = 0
	}
	c.ScrollToOffset(target)
}

// ClearSearch drops matches and highlights, cancels a running scan and
// empties the query.
func (c *Controller) ClearSearch() {
	c.engine.Clear()
	c.scan = nil
	c.query = ""
}

// SetOptions changes the search options. A search on screen is re-run with
// the new options.
func (c *Controller) SetOptions(opts search.Options) bool {
	if opts == c.opts {
		return false
	}
	c.opts = opts
	if text := c.engine.Text(); text != "" && c.src != nil {
		c.SubmitSearch(text)
	}
	return true
}

// Searching reports whether a scan is in flight.
func (c *Controller) Searching() bool {
	return c.scan != nil
}
