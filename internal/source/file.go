package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// File is a ByteSource backed by an open file. Reads use ReadAt, so no
// seek offset is shared between callers.
type File struct {
	path   string
	length int64

	mu   sync.Mutex
	file *os.File
}

// Open opens path for random-access reading.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("open source: %s is a directory", path)
	}
	return &File{
		path:   path,
		length: info.Size(),
		file:   f,
	}, nil
}

// Path returns the path the source was opened from.
func (s *File) Path() string {
	return s.path
}

func (s *File) Len() int64 {
	return s.length
}

func (s *File) ReadRange(offset int64, maxLen int) []byte {
	n := clampRead(s.length, offset, maxLen)
	if n == 0 {
		return []byte{}
	}
	buf := make([]byte, n)
	read, _ := s.ReadInto(offset, buf)
	return buf[:read]
}

func (s *File) ReadInto(offset int64, dst []byte) (int, error) {
	n := clampRead(s.length, offset, len(dst))
	if n == 0 {
		if offset < 0 {
			return 0, fmt.Errorf("read source: negative offset %d", offset)
		}
		return 0, io.EOF
	}

	s.mu.Lock()
	f := s.file
	s.mu.Unlock()
	if f == nil {
		return 0, ErrClosed
	}

	read, err := f.ReadAt(dst[:n], offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return read, fmt.Errorf("read source at %d: %w", offset, err)
	}
	if read < len(dst) {
		return read, io.EOF
	}
	return read, nil
}

func (s *File) ReadContext(ctx context.Context, offset int64, dst []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.ReadInto(offset, dst)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return n, ctxErr
	}
	return n, err
}

// Close releases the file handle. It is safe to call more than once.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
