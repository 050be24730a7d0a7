package carosello

// SelectionState is the carousel's single piece of mutable state: the
// selected index. It is component-local and mutated only through its
// methods, which keep the index within the store's bounds at all times.
// The renderer reads it; it never writes back.
type SelectionState struct {
	length   int
	index    int
	onChange func(old, new int)
}

// NewSelectionState creates selection state over a store of the given
// length. The initial index is clamped into range. onChange fires on
// every committed change (it does not fire for the initial value).
func NewSelectionState(length, initial int, onChange func(old, new int)) *SelectionState {
	s := &SelectionState{
		length:   length,
		onChange: onChange,
	}
	s.index = s.clamp(initial)
	return s
}

// Index returns the current selected index.
func (s *SelectionState) Index() int {
	return s.index
}

// Select sets the selected index, clamping it into [0, length-1].
// Out-of-range input therefore selects the nearest end rather than
// leaving the renderer with an index it cannot look up.
func (s *SelectionState) Select(index int) {
	index = s.clamp(index)
	if index == s.index {
		return
	}

	old := s.index
	s.index = index
	if s.onChange != nil {
		s.onChange(old, index)
	}
}

// SelectPrevious moves the selection one position left.
// No-op at the first item.
func (s *SelectionState) SelectPrevious() {
	if s.index > 0 {
		s.Select(s.index - 1)
	}
}

// SelectNext moves the selection one position right.
// No-op at the last item.
func (s *SelectionState) SelectNext() {
	if s.index < s.length-1 {
		s.Select(s.index + 1)
	}
}

// CanSelectPrevious reports whether a previous item exists.
// The previous chevron is shown exactly when this is true.
func (s *SelectionState) CanSelectPrevious() bool {
	return s.index > 0
}

// CanSelectNext reports whether a next item exists.
// The next chevron is shown exactly when this is true.
func (s *SelectionState) CanSelectNext() bool {
	return s.index < s.length-1
}

func (s *SelectionState) clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index >= s.length {
		return s.length - 1
	}
	return index
}
