// Package viewer is the interaction layer of the hex grid. A Controller owns
// the active byte source, the scroll position, the drag selection and the
// search engine, and turns pointer and key events into changes of that
// state. It does no drawing and no I/O beyond reading the source; hosts
// render the Frame it describes.
package viewer

import (
	"time"

	"github.com/kk-code-lab/rhex/internal/layout"
	"github.com/kk-code-lab/rhex/internal/logging"
	"github.com/kk-code-lab/rhex/internal/search"
	"github.com/kk-code-lab/rhex/internal/selection"
	"github.com/kk-code-lab/rhex/internal/source"
)

const (
	// DefaultCopyLimit caps how many bytes one copy reads from the source.
	DefaultCopyLimit = 1 << 20

	defaultWheelLines = 3
	defaultTick       = 50 * time.Millisecond
)

// AutoScroll tunes scrolling while a drag is held near the top or bottom
// edge of the viewport. Margin and Step are in surface units.
type AutoScroll struct {
	Margin   float64
	Step     float64
	Interval time.Duration
}

// TerminalAutoScroll is one row of margin and one line per tick.
func TerminalAutoScroll() AutoScroll {
	return AutoScroll{Margin: 1, Step: 1, Interval: defaultTick}
}

// PixelAutoScroll matches a pixel surface using layout.Pixel.
func PixelAutoScroll() AutoScroll {
	return AutoScroll{Margin: 30, Step: 15, Interval: defaultTick}
}

// Config holds the Controller tunables.
type Config struct {
	Layout     layout.Layout
	Search     search.Config
	Options    search.Options
	AutoScroll AutoScroll
	WheelLines int
	CopyLimit  int64
	Logger     *logging.Logger
}

func DefaultConfig() Config {
	return Config{
		Layout:     layout.Terminal(),
		Search:     search.DefaultConfig(),
		Options:    search.DefaultOptions(),
		AutoScroll: TerminalAutoScroll(),
		WheelLines: defaultWheelLines,
		CopyLimit:  DefaultCopyLimit,
	}
}

// Spawner runs Compare for a chunk somewhere and arranges for the result to
// reach HandleSearchResult on the UI goroutine.
type Spawner func(p search.Pattern, chunk search.Chunk)

// AsyncSpawner compares each chunk on its own goroutine and sends the result
// to results.
func AsyncSpawner(results chan<- search.ChunkResult) Spawner {
	return func(p search.Pattern, chunk search.Chunk) {
		go func() {
			results <- search.Compare(p, chunk)
		}()
	}
}

// Controller is the interaction state machine. Its methods must be called
// from a single goroutine.
type Controller struct {
	cfg    Config
	layout layout.Layout
	logger *logging.Logger

	src      source.ByteSource
	viewport layout.Size
	scroll   layout.Point

	sel     selection.Selection
	pointer layout.Point

	engine *search.Engine
	opts   search.Options
	scan   *search.Scan
	spawn  Spawner

	clipboard Clipboard

	searchFocused bool
	query         string
	message       string
}

// New returns a Controller with no source. An invalid layout falls back to
// layout.Terminal.
func New(cfg Config) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger()
	}
	if err := cfg.Layout.Validate(); err != nil {
		cfg.Logger.Warn("invalid layout, using terminal geometry", "error", err)
		cfg.Layout = layout.Terminal()
	}
	if cfg.WheelLines <= 0 {
		cfg.WheelLines = defaultWheelLines
	}
	if cfg.AutoScroll.Interval <= 0 {
		cfg.AutoScroll.Interval = defaultTick
	}
	return &Controller{
		cfg:    cfg,
		layout: cfg.Layout,
		logger: cfg.Logger,
		engine: search.NewEngine(cfg.Search),
		opts:   cfg.Options,
	}
}

// SetSpawner makes searches asynchronous. Without one, Compare runs inline
// and a search completes inside SubmitSearch.
func (c *Controller) SetSpawner(s Spawner) {
	c.spawn = s
}

func (c *Controller) SetClipboard(cb Clipboard) {
	c.clipboard = cb
}

// SetSource replaces the active source. The previous source is closed; the
// selection and search are dropped, pending search results become stale and
// the view scrolls home.
func (c *Controller) SetSource(src source.ByteSource) {
	if c.src != nil && c.src != src {
		if err := c.src.Close(); err != nil {
			c.logger.Warn("failed to close previous source", "error", err)
		}
	}
	c.src = src
	c.sel.Clear()
	c.ClearSearch()
	c.searchFocused = false
	c.message = ""
	c.scroll = layout.Point{}
	c.clampScroll()
	c.logger.Debug("source replaced", "length", c.length(), "gen", c.engine.Gen())
}

// Close closes the active source.
func (c *Controller) Close() error {
	if c.src == nil {
		return nil
	}
	err := c.src.Close()
	c.src = nil
	return err
}

func (c *Controller) Source() source.ByteSource { return c.src }
func (c *Controller) Layout() layout.Layout      { return c.layout }
func (c *Controller) Scroll() layout.Point       { return c.scroll }
func (c *Controller) Viewport() layout.Size      { return c.viewport }
func (c *Controller) Engine() *search.Engine     { return c.engine }
func (c *Controller) Options() search.Options    { return c.opts }
func (c *Controller) Query() string              { return c.query }
func (c *Controller) SearchFocused() bool        { return c.searchFocused }
func (c *Controller) Message() string            { return c.message }

// Selection exposes the selection for inspection. Callers must not mutate
// it.
func (c *Controller) Selection() *selection.Selection { return &c.sel }

// AutoScrolling reports whether Tick has work to do. Hosts run their timer
// only while it is true.
func (c *Controller) AutoScrolling() bool {
	return c.sel.Selecting()
}

// TickInterval is the auto-scroll period.
func (c *Controller) TickInterval() time.Duration {
	return c.cfg.AutoScroll.Interval
}

func (c *Controller) length() int64 {
	if c.src == nil {
		return 0
	}
	return c.src.Len()
}

// SetViewport records the visible grid size and keeps the scroll inside the
// canvas.
func (c *Controller) SetViewport(size layout.Size) {
	c.viewport = size
	c.clampScroll()
}

func (c *Controller) clampScroll() {
	c.scroll = c.layout.ClampScroll(c.scroll, c.viewport, c.length())
}

// ScrollBy moves the view by (dx, dy). It reports whether the scroll changed.
func (c *Controller) ScrollBy(dx, dy float64) bool {
	before := c.scroll
	c.scroll = c.scroll.Add(layout.Point{X: dx, Y: dy})
	c.clampScroll()
	return c.scroll != before
}

// ScrollLines moves the view by n lines.
func (c *Controller) ScrollLines(n int) bool {
	return c.ScrollBy(0, float64(n)*c.layout.LineHeight)
}

// ScrollToOffset puts the line containing offset at the top of the view, as
// far as the canvas allows.
func (c *Controller) ScrollToOffset(offset int64) bool {
	before := c.scroll
	c.scroll.Y = c.layout.ScrollYForOffset(offset)
	c.clampScroll()
	return c.scroll != before
}

func (c *Controller) pageLines() int {
	n := int(c.viewport.H/c.layout.LineHeight) - 1
	if n < 1 {
		n = 1
	}
	return n
}

// TopOffset is the first byte of the top visible line.
func (c *Controller) TopOffset() int64 {
	length := c.length()
	if length == 0 {
		return 0
	}
	off, _ := c.layout.OffsetForPoint(layout.Point{X: c.layout.HexX() - c.scroll.X}, c.scroll, length, true)
	return off - off%int64(c.layout.BytesPerLine)
}
