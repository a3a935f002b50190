package search

import (
	"context"
	"errors"
	"strings"

	"github.com/kk-code-lab/rhex/internal/source"
)

// DefaultLookBehind is how many bytes before the first match stay visible
// when a finished scan scrolls to it.
const DefaultLookBehind = 20

// ErrSuperseded is returned by Run when another submit replaced its scan.
var ErrSuperseded = errors.New("search: scan superseded")

// Config tunes an Engine.
type Config struct {
	ChunkSize  int
	LookBehind int64
}

func DefaultConfig() Config {
	return Config{ChunkSize: DefaultChunkSize, LookBehind: DefaultLookBehind}
}

// OutcomeKind says what Submit decided to do.
type OutcomeKind int

const (
	// OutcomeNoop means the input could not be compiled.
	OutcomeNoop OutcomeKind = iota
	// OutcomeFindNext means the cursor moved to the next existing match.
	OutcomeFindNext
	// OutcomeStarted means a fresh scan was started.
	OutcomeStarted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFindNext:
		return "find-next"
	case OutcomeStarted:
		return "started"
	default:
		return "noop"
	}
}

// Outcome is the result of Submit. Target is set for OutcomeFindNext and
// Scan for OutcomeStarted.
type Outcome struct {
	Kind   OutcomeKind
	Target int64
	Scan   *Scan
}

// Commit reports what a committed ChunkResult changed. Target is only
// meaningful when HasTarget is set, which happens once a scan that found
// something finishes.
type Commit struct {
	Added     int
	Done      bool
	HasTarget bool
	Target    int64
}

// Engine owns the match list, highlight set and find-next cursor of one
// source. It is not safe for concurrent use; only Compare may run on another
// goroutine.
type Engine struct {
	cfg Config

	gen      uint64
	text     string
	opts     Options
	pattern  Pattern
	scan     *Scan
	viewTop  int64
	matches  []int64
	covered  map[int64]struct{}
	cursor   int
	scanning bool
}

func NewEngine(cfg Config) *Engine {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.LookBehind < 0 {
		cfg.LookBehind = 0
	}
	return &Engine{cfg: cfg, covered: make(map[int64]struct{}), cursor: -1}
}

// Gen is the current generation. Chunks and results from any other
// generation are stale.
func (e *Engine) Gen() uint64 { return e.gen }

// Clear drops every match and cancels the running scan.
func (e *Engine) Clear() {
	e.gen++
	e.text = ""
	e.opts = Options{}
	e.pattern = Pattern{}
	e.scan = nil
	e.viewTop = 0
	e.matches = nil
	e.covered = make(map[int64]struct{})
	e.cursor = -1
	e.scanning = false
}

// Submit handles a search request. Repeating the previous text (ignoring
// surrounding whitespace) and options while matches exist moves to the next
// match, also while the scan is still running; anything else resets and
// starts a new scan. viewTop is the offset at the top of the viewport.
func (e *Engine) Submit(text string, opts Options, viewTop int64) Outcome {
	text = strings.TrimSpace(text)
	if text == e.text && opts == e.opts && len(e.matches) > 0 {
		e.cursor = (e.cursor + 1) % len(e.matches)
		return Outcome{Kind: OutcomeFindNext, Target: e.matches[e.cursor]}
	}

	e.Clear()
	e.text = text
	e.opts = opts
	pattern, ok := Compile(text, opts)
	if !ok {
		return Outcome{Kind: OutcomeNoop}
	}
	e.pattern = pattern
	e.viewTop = viewTop
	e.scan = newScan(e.gen, pattern, e.cfg.ChunkSize)
	e.scanning = true
	return Outcome{Kind: OutcomeStarted, Scan: e.scan}
}

// Commit folds a chunk result into the match list. ok is false when res
// belongs to a stale generation or no scan is running.
func (e *Engine) Commit(res ChunkResult) (Commit, bool) {
	if !e.scanning || res.Gen != e.gen {
		return Commit{}, false
	}

	var c Commit
	n := int64(e.pattern.Len())
	for _, hit := range res.Hits {
		// Chunks arrive in ascending order, so a hit no greater than the last
		// match was already seen in the previous chunk's overlap.
		if len(e.matches) > 0 && hit <= e.matches[len(e.matches)-1] {
			continue
		}
		e.matches = append(e.matches, hit)
		for o := hit; o < hit+n; o++ {
			e.covered[o] = struct{}{}
		}
		c.Added++
	}

	if res.Last {
		e.finish(&c)
	}
	return c, true
}

// Abort ends the running scan early, keeping the matches found so far. The
// returned commit is the one a final chunk would have produced.
func (e *Engine) Abort() Commit {
	var c Commit
	if e.scanning {
		e.finish(&c)
	}
	return c
}

func (e *Engine) finish(c *Commit) {
	e.scanning = false
	e.scan = nil
	c.Done = true
	if len(e.matches) == 0 {
		return
	}

	// A find-next during the scan already moved the view; keep it there.
	if e.cursor >= 0 {
		return
	}

	e.cursor = 0
	if !e.opts.FromTop {
		e.cursor = e.firstAtOrAfter(e.viewTop)
	}
	c.HasTarget = true
	c.Target = e.matches[e.cursor] - e.cfg.LookBehind
	if c.Target < 0 {
		c.Target = 0
	}
}

func (e *Engine) firstAtOrAfter(offset int64) int {
	for i, m := range e.matches {
		if m >= offset {
			return i
		}
	}
	return 0
}

// Run drives a whole search synchronously, comparing chunks on a worker
// goroutine. It returns the final commit, or the find-next target as a
// finished commit.
func (e *Engine) Run(ctx context.Context, src source.ByteSource, text string, opts Options, viewTop int64) (Commit, error) {
	out := e.Submit(text, opts, viewTop)
	switch out.Kind {
	case OutcomeNoop:
		return Commit{Done: true}, nil
	case OutcomeFindNext:
		return Commit{Done: true, HasTarget: true, Target: out.Target}, nil
	}

	scan := out.Scan
	results := make(chan ChunkResult, 1)
	var total Commit
	for {
		chunk, ok, err := scan.NextContext(ctx, src)
		if err != nil {
			e.Abort()
			return total, err
		}
		if !ok {
			c := e.Abort()
			total.Done = true
			total.HasTarget, total.Target = c.HasTarget, c.Target
			return total, nil
		}

		go func(p Pattern, c Chunk) {
			results <- Compare(p, c)
		}(scan.Pattern(), chunk)

		var res ChunkResult
		select {
		case <-ctx.Done():
			e.Abort()
			return total, ctx.Err()
		case res = <-results:
		}

		c, ok := e.Commit(res)
		if !ok {
			return total, ErrSuperseded
		}
		total.Added += c.Added
		if c.Done {
			total.Done = true
			total.HasTarget, total.Target = c.HasTarget, c.Target
			return total, nil
		}
	}
}

func (e *Engine) Scanning() bool   { return e.scanning }
func (e *Engine) Text() string     { return e.text }
func (e *Engine) Pattern() Pattern { return e.pattern }
func (e *Engine) MatchCount() int  { return len(e.matches) }
func (e *Engine) Cursor() int      { return e.cursor }

// Matches returns the ascending match offsets. The slice must not be
// modified.
func (e *Engine) Matches() []int64 {
	return e.matches
}

// Highlighted reports whether offset is covered by any match.
func (e *Engine) Highlighted(offset int64) bool {
	_, ok := e.covered[offset]
	return ok
}

// Current returns the focused match, if any.
func (e *Engine) Current() (int64, bool) {
	if e.cursor < 0 || e.cursor >= len(e.matches) {
		return 0, false
	}
	return e.matches[e.cursor], true
}

// InCurrent reports whether offset lies inside the focused match.
func (e *Engine) InCurrent(offset int64) bool {
	start, ok := e.Current()
	return ok && offset >= start && offset < start+int64(e.pattern.Len())
}
