package machine

import (
	"strconv"
	"strings"
)

// Transition is one rule of the transition relation: from state From, on
// input symbol Input, pop Pop1/Pop2 from the stacks, push Push1/Push2, and
// move to state To. Input and the four stack fields may each be Epsilon.
type Transition struct {
	From  int    // Source state.
	Input string // Consumed input symbol, or Epsilon.
	Pop1  string // Pop specification for stack 1.
	Pop2  string // Pop specification for stack 2.
	Push1 string // Push specification for stack 1.
	Push2 string // Push specification for stack 2.
	To    int    // Destination state.
}

const transitionFields = 7

// ParseTransition builds a transition from its 7 field comma separated
// tuple form. The state fields must parse as integers; whether they name
// declared states is not checked here.
func ParseTransition(text string) (tr Transition, err error) {
	fields := strings.Split(strings.TrimSpace(text), ",")
	if len(fields) != transitionFields {
		err = ErrTransitionArity(text)
		return
	}

	tr.From, err = strconv.Atoi(fields[0])
	if err != nil {
		err = ErrNotANumber(fields[0])
		return
	}
	tr.To, err = strconv.Atoi(fields[6])
	if err != nil {
		err = ErrNotANumber(fields[6])
		return
	}

	tr.Input = fields[1]
	tr.Pop1 = fields[2]
	tr.Pop2 = fields[3]
	tr.Push1 = fields[4]
	tr.Push2 = fields[5]

	return
}

// String returns the transition in its tuple form.
func (tr Transition) String() string {
	fields := []string{
		strconv.Itoa(tr.From),
		tr.Input,
		tr.Pop1,
		tr.Pop2,
		tr.Push1,
		tr.Push2,
		strconv.Itoa(tr.To),
	}
	return strings.Join(fields, ",")
}

// Matches reports whether the transition can fire for the given state,
// input symbol, and stack tops.
func (tr Transition) Matches(state int, symbol string, stacks *StackPair) bool {
	if tr.From != state || tr.Input != symbol {
		return false
	}

	return matchesStack(tr.Pop1, &stacks.Stack1) && matchesStack(tr.Pop2, &stacks.Stack2)
}

// matchesStack checks one pop condition against one stack. An empty stack
// offers no top to compare against and matches any request.
func matchesStack(spec string, s *Stack) bool {
	if spec == Epsilon {
		return true
	}

	top, ok := s.Peek()
	if !ok {
		return true
	}

	symbols := SplitSymbols(spec)
	return top == symbols[len(symbols)-1]
}
