package auction

// session tracks the single player currently on the block, by sheet
// row index. Idle until a draw, back to idle once a decision lands or
// the referenced row disappears from the roster. Only one player may
// be active at a time; a draw while active is rejected rather than
// replacing the current pick.
type session struct {
	active   bool
	rowIndex int
}

func (s *session) Active() bool {
	return s.active
}

// Current returns the active row index, if any
func (s *session) Current() (int, bool) {
	if !s.active {
		return 0, false
	}
	return s.rowIndex, true
}

func (s *session) Put(rowIndex int) {
	s.active = true
	s.rowIndex = rowIndex
}

func (s *session) Reset() {
	s.active = false
	s.rowIndex = 0
}
