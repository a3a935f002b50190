// Package source defines the random-access byte sources the viewer reads from.
package source

import (
	"context"
	"errors"
	"io"
)

// ErrClosed is returned when reading from a source that has been closed.
var ErrClosed = errors.New("source: closed")

// ByteSource is a random-access byte sequence of fixed length.
//
// ReadRange never fails for valid offsets: a read error shortens the result.
// It returns an empty slice for offsets outside [0, Len()).
type ByteSource interface {
	Len() int64
	ReadRange(offset int64, maxLen int) []byte
	ReadInto(offset int64, dst []byte) (int, error)
	ReadContext(ctx context.Context, offset int64, dst []byte) (int, error)
	io.Closer
}

// clampRead reports how many bytes a read of want bytes at offset may return
// for a source of the given length.
func clampRead(length, offset int64, want int) int {
	if offset < 0 || offset >= length || want <= 0 {
		return 0
	}
	if remaining := length - offset; int64(want) > remaining {
		return int(remaining)
	}
	return want
}
