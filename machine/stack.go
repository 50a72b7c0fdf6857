package machine

// Stack is one of the two symbol stacks of the automaton.
type Stack struct {
	Data []string
}

func (s *Stack) Push(symbol string) {
	s.Data = append(s.Data, symbol)
}

func (s *Stack) Pop() (symbol string, ok bool) {
	symbol, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Peek() (symbol string, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}

// Snapshot returns a copy of the stack contents, bottom to top.
func (s *Stack) Snapshot() []string {
	snapshot := make([]string, len(s.Data))
	copy(snapshot, s.Data)
	return snapshot
}

// Apply performs the pop and push parts of one transition on the stack.
// Pops are processed from the last listed symbol to the first, so the
// rightmost listed symbol must be on top. A failed pop aborts the whole
// operation: symbols already popped stay popped and the push is skipped.
func (s *Stack) Apply(popSpec, pushSpec string) error {
	if popSpec != Epsilon {
		pops := SplitSymbols(popSpec)
		for j := len(pops) - 1; j >= 0; j-- {
			top, ok := s.Peek()
			if !ok {
				return ErrPopUnderflow(popSpec)
			}
			if top != pops[j] {
				return ErrPopMismatch{Spec: popSpec, Top: top}
			}
			s.Pop()
		}
	}

	if pushSpec != Epsilon {
		for _, symbol := range SplitSymbols(pushSpec) {
			s.Push(symbol)
		}
	}

	return nil
}

// StackPair is the working storage of one run. Only Stack1 is refilled with
// the marker when a transition leaves it empty.
type StackPair struct {
	Stack1 Stack
	Stack2 Stack
}

// Reset initializes both stacks to hold the single marker symbol.
func (sp *StackPair) Reset() {
	sp.Stack1.Reset()
	sp.Stack2.Reset()
	sp.Stack1.Push(Marker)
	sp.Stack2.Push(Marker)
}

// Replenish refills Stack1 with the marker if it is empty. Stack2 is left
// alone.
func (sp *StackPair) Replenish() {
	if sp.Stack1.Empty() {
		sp.Stack1.Push(Marker)
	}
}
