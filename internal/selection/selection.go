// Package selection tracks the anchor and cursor of a byte-range selection.
package selection

// Selection is the anchor/cursor pair of a drag selection. The zero value is
// an empty, inactive selection.
type Selection struct {
	anchor    int64
	cursor    int64
	active    bool
	selecting bool
	inDecoded bool
}

// Begin starts a new selection at offset. inDecoded records whether the
// drag started in the decoded band.
func (s *Selection) Begin(offset int64, inDecoded bool) {
	s.anchor = offset
	s.cursor = offset
	s.active = true
	s.selecting = true
	s.inDecoded = inDecoded
}

// Extend moves the cursor. It has no effect once the selection is frozen.
func (s *Selection) Extend(offset int64) {
	if !s.selecting {
		return
	}
	s.cursor = offset
}

// End freezes the selection.
func (s *Selection) End() {
	s.selecting = false
}

func (s *Selection) Clear() {
	*s = Selection{}
}

func (s *Selection) Active() bool    { return s.active }
func (s *Selection) Selecting() bool { return s.selecting }
func (s *Selection) InDecoded() bool { return s.inDecoded }
func (s *Selection) Anchor() int64   { return s.anchor }
func (s *Selection) Cursor() int64   { return s.cursor }

// Normalized returns the inclusive range covered by the selection.
func (s *Selection) Normalized() (start, end int64, ok bool) {
	if !s.active {
		return 0, 0, false
	}
	start, end = s.anchor, s.cursor
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// Contains reports whether offset lies inside the selection.
func (s *Selection) Contains(offset int64) bool {
	start, end, ok := s.Normalized()
	return ok && offset >= start && offset <= end
}

// Len is the number of selected bytes.
func (s *Selection) Len() int64 {
	start, end, ok := s.Normalized()
	if !ok {
		return 0
	}
	return end - start + 1
}
