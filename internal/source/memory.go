package source

import (
	"context"
	"io"
)

// Memory is a ByteSource over an in-memory slice. The slice must not be
// modified after it is handed to NewMemory.
type Memory struct {
	data   []byte
	closed bool
}

func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

func (m *Memory) Len() int64 {
	return int64(len(m.data))
}

func (m *Memory) ReadRange(offset int64, maxLen int) []byte {
	n := clampRead(m.Len(), offset, maxLen)
	if n == 0 || m.closed {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, m.data[offset:offset+int64(n)])
	return out
}

func (m *Memory) ReadInto(offset int64, dst []byte) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	n := clampRead(m.Len(), offset, len(dst))
	if n == 0 {
		return 0, io.EOF
	}
	copy(dst, m.data[offset:offset+int64(n)])
	if n < len(dst) {
		return n, io.EOF
	}
	return n, nil
}

func (m *Memory) ReadContext(ctx context.Context, offset int64, dst []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.ReadInto(offset, dst)
}

func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (m *Memory) Closed() bool {
	return m.closed
}
