package viewer

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/rhex/internal/ui/render"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteText(text string) error
}

// FormatHex renders data as upper-case byte pairs separated by spaces.
func FormatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	const digits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(data)*3 - 1)
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[v>>4])
		b.WriteByte(digits[v&0x0F])
	}
	return b.String()
}

// FormatDecoded renders data the way the decoded band shows it.
func FormatDecoded(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, v := range data {
		b.WriteString(render.DecodedGlyph(v))
	}
	return b.String()
}

// CopyText is the clipboard text for the current selection: hex pairs when
// the drag started in the hex band, decoded glyphs when it started in the
// decoded band. At most CopyLimit bytes are read; truncated reports whether
// the selection was longer.
func (c *Controller) CopyText() (text string, n int64, truncated bool, ok bool) {
	start, end, active := c.sel.Normalized()
	if !active || c.src == nil {
		return "", 0, false, false
	}
	n = end - start + 1
	if limit := c.cfg.CopyLimit; limit > 0 && n > limit {
		n, truncated = limit, true
	}
	data := c.src.ReadRange(start, int(n))
	n = int64(len(data))
	if c.sel.InDecoded() {
		return FormatDecoded(data), n, truncated, true
	}
	return FormatHex(data), n, truncated, true
}

// Copy writes the selection to the clipboard. With no clipboard or no
// selection it does nothing.
func (c *Controller) Copy() bool {
	if c.clipboard == nil {
		c.logger.Debug("copy skipped: no clipboard")
		return false
	}
	text, n, truncated, ok := c.CopyText()
	if !ok {
		c.logger.Debug("copy skipped: no selection")
		return false
	}
	if err := c.clipboard.WriteText(text); err != nil {
		c.logger.Debug("copy failed", "error", err)
		c.message = "copy failed"
		return true
	}

	c.message = fmt.Sprintf("copied %s", pluralBytes(n))
	if truncated {
		c.message += fmt.Sprintf(" (of %s)", pluralBytes(c.sel.Len()))
	}
	return true
}

func pluralBytes(n int64) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

// SelectAll selects the whole source, keeping the band of the previous
// selection.
func (c *Controller) SelectAll() bool {
	length := c.length()
	if length == 0 {
		return false
	}
	inDecoded := c.sel.InDecoded()
	c.sel.Begin(0, inDecoded)
	c.sel.Extend(length - 1)
	c.sel.End()
	return true
}
