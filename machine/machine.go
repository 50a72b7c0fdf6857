package machine

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Machine is the complete static description of one two stack pushdown
// automaton. A Machine is built once, by the console or by a codec, and is
// never mutated by a simulation.
type Machine struct {
	Alphabet    []string
	States      []int
	Start       int
	Ends        []int
	Transitions []Transition
}

// ValidateAlphabet checks a prospective input alphabet: it must be non
// empty and free of reserved symbols.
func ValidateAlphabet(alphabet []string) error {
	if len(alphabet) == 0 {
		return ErrAlphabetEmpty
	}

	for _, symbol := range alphabet {
		if symbol == "" || symbol == Epsilon || symbol == Marker ||
			strings.Contains(symbol, Separator) {
			return ErrSymbolReserved(symbol)
		}
	}

	return nil
}

// ValidateStates checks a prospective state set for emptiness and
// duplicates.
func ValidateStates(states []int) error {
	if len(states) == 0 {
		return ErrStatesEmpty
	}

	seen := map[int]bool{}
	for _, state := range states {
		if seen[state] {
			return ErrDuplicateState(state)
		}
		seen[state] = true
	}

	return nil
}

// ValidateStart checks that the start state is a member of the state set.
func ValidateStart(start int, states []int) error {
	if !slices.Contains(states, start) {
		return ErrStartUnknown
	}

	return nil
}

// ValidateEnds checks that the end states are members of the state set,
// with no duplicates.
func ValidateEnds(ends, states []int) error {
	seen := map[int]bool{}
	for _, end := range ends {
		if !slices.Contains(states, end) {
			return ErrUnknownState(end)
		}
		if seen[end] {
			return ErrDuplicateState(end)
		}
		seen[end] = true
	}

	return nil
}

// ParseStates parses a comma separated integer list.
func ParseStates(text string) (states []int, err error) {
	for _, field := range strings.Split(text, ",") {
		var state int
		state, err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			err = ErrNotANumber(strings.TrimSpace(field))
			return
		}
		states = append(states, state)
	}

	return
}

// Validate checks the machine description for well formedness. Transition
// endpoints are deliberately not checked against the state set.
func (m *Machine) Validate() (err error) {
	if err = ValidateAlphabet(m.Alphabet); err != nil {
		return
	}
	if err = ValidateStates(m.States); err != nil {
		return
	}
	if err = ValidateStart(m.Start, m.States); err != nil {
		return
	}
	err = ValidateEnds(m.Ends, m.States)

	return
}

// CheckWord verifies that every character of the word belongs to the
// alphabet. Every stranger character is reported, in word order.
func (m *Machine) CheckWord(word string) error {
	var invalid []string
	for _, r := range word {
		symbol := string(r)
		if !slices.Contains(m.Alphabet, symbol) {
			invalid = append(invalid, symbol)
		}
	}

	if len(invalid) != 0 {
		return ErrInput(invalid)
	}

	return nil
}

// MatchAll returns, in declaration order, every transition that can fire
// from the given state on the given symbol with the current stack tops.
// No determinism filtering is done: an ambiguous relation yields them all.
func (m *Machine) MatchAll(state int, symbol string, stacks *StackPair) (matched []Transition) {
	for _, tr := range m.Transitions {
		if tr.Matches(state, symbol, stacks) {
			matched = append(matched, tr)
		}
	}

	return
}

// String returns the full configuration dump shown by the console's "show"
// command.
func (m *Machine) String() (text string) {
	text = "Input Alphabet: [" + strings.Join(m.Alphabet, ", ") + "]\n"
	text += "States: [" + strings.Join(intStrings(m.States), ", ") + "]\n"
	text += fmt.Sprintf("Start State: [%v]\n", m.Start)
	text += "End State(s): [" + strings.Join(intStrings(m.Ends), ", ") + "]\n"
	text += "Transitions:"
	for _, tr := range m.Transitions {
		text += fmt.Sprintf("\n  %v", tr)
	}

	return
}

func intStrings(values []int) (text []string) {
	text = make([]string, len(values))
	for n, value := range values {
		text[n] = strconv.Itoa(value)
	}
	return
}
