package search

import (
	"bytes"
	"context"
	"errors"

	"github.com/kk-code-lab/rhex/internal/source"
)

const DefaultChunkSize = 128 * 1024

// Chunk is one window of the source handed to Compare. Data must not be
// modified once the chunk has been produced.
type Chunk struct {
	Gen    uint64
	Offset int64
	Data   []byte
	// Lead and Trail hold at most one byte of context on either side of Data.
	// They are only filled for whole-word scans.
	Lead  []byte
	Trail []byte
	Last  bool
}

// ChunkResult lists the absolute offsets of matches found in one chunk.
type ChunkResult struct {
	Gen    uint64
	Offset int64
	Hits   []int64
	Last   bool
}

// Scan walks a source in overlapping chunks. Consecutive chunks overlap by
// len(pattern)-1 bytes so matches straddling a boundary are seen whole.
type Scan struct {
	gen       uint64
	pattern   Pattern
	chunkSize int
	offset    int64
	done      bool
}

func newScan(gen uint64, pattern Pattern, chunkSize int) *Scan {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if pattern.Len() > chunkSize {
		chunkSize = 2 * pattern.Len()
	}
	return &Scan{gen: gen, pattern: pattern, chunkSize: chunkSize}
}

func (s *Scan) Gen() uint64      { return s.gen }
func (s *Scan) Pattern() Pattern { return s.pattern }
func (s *Scan) ChunkSize() int   { return s.chunkSize }
func (s *Scan) Done() bool       { return s.done }

func (s *Scan) stride() int64 {
	return int64(s.chunkSize - (s.pattern.Len() - 1))
}

// context is the number of lead and trail bytes to read around a window.
func (s *Scan) context() (int, int) {
	if !s.pattern.wholeWords() {
		return 0, 0
	}
	lead := 0
	if s.offset > 0 {
		lead = 1
	}
	return lead, 1
}

// Next reads the next chunk. ok is false once the source is exhausted or a
// read came back shorter than the pattern.
func (s *Scan) Next(src source.ByteSource) (Chunk, bool) {
	if s.done || src == nil {
		s.done = true
		return Chunk{}, false
	}
	lead, trail := s.context()
	buf := src.ReadRange(s.offset-int64(lead), lead+s.chunkSize+trail)
	return s.emit(src.Len(), buf, lead)
}

// NextContext is Next using the source's cancellable read.
func (s *Scan) NextContext(ctx context.Context, src source.ByteSource) (Chunk, bool, error) {
	if s.done || src == nil {
		s.done = true
		return Chunk{}, false, nil
	}
	lead, trail := s.context()
	buf := make([]byte, lead+s.chunkSize+trail)
	n, err := src.ReadContext(ctx, s.offset-int64(lead), buf)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.done = true
		return Chunk{}, false, err
	}
	chunk, ok := s.emit(src.Len(), buf[:n], lead)
	return chunk, ok, nil
}

func (s *Scan) emit(length int64, buf []byte, lead int) (Chunk, bool) {
	if len(buf) < lead {
		s.done = true
		return Chunk{}, false
	}
	chunk := Chunk{Gen: s.gen, Offset: s.offset, Lead: buf[:lead]}
	data := buf[lead:]
	if len(data) > s.chunkSize {
		chunk.Trail = data[s.chunkSize:]
		data = data[:s.chunkSize]
	}
	if len(data) < s.pattern.Len() {
		s.done = true
		return Chunk{}, false
	}
	chunk.Data = data

	// A short window means end of source or a failed read; either way the
	// scan stops after this chunk.
	if len(data) < s.chunkSize || s.offset+int64(len(data)) >= length {
		chunk.Last = true
		s.done = true
	}
	s.offset += s.stride()
	return chunk, true
}

// Compare finds every start index in chunk where pattern matches, including
// overlapping ones. It only reads its arguments.
func Compare(pattern Pattern, chunk Chunk) ChunkResult {
	res := ChunkResult{Gen: chunk.Gen, Offset: chunk.Offset, Last: chunk.Last}
	needle := pattern.Bytes
	if len(needle) == 0 || len(chunk.Data) < len(needle) {
		return res
	}

	haystack := chunk.Data
	if pattern.folds() {
		haystack = foldASCIIBytes(chunk.Data)
	}

	for from := 0; from <= len(haystack)-len(needle); {
		idx := bytes.Index(haystack[from:], needle)
		if idx == -1 {
			break
		}
		start := from + idx
		if !pattern.wholeWords() || wordBounded(chunk, start, len(needle)) {
			res.Hits = append(res.Hits, chunk.Offset+int64(start))
		}
		from = start + 1
	}
	return res
}

func wordBounded(chunk Chunk, start, n int) bool {
	if start > 0 {
		if isWordByte(chunk.Data[start-1]) {
			return false
		}
	} else if len(chunk.Lead) > 0 && isWordByte(chunk.Lead[len(chunk.Lead)-1]) {
		return false
	}
	end := start + n
	if end < len(chunk.Data) {
		return !isWordByte(chunk.Data[end])
	}
	return len(chunk.Trail) == 0 || !isWordByte(chunk.Trail[0])
}
