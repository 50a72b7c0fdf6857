package machine

import (
	"slices"
)

// Status is the lifecycle state of one simulation run.
type Status int

const (
	Running Status = iota
	Accepted
	Rejected
)

// Step records one applied transition and the machine state it produced.
type Step struct {
	Transition Transition
	State      int      // Current state after the transition.
	Stack1     []string // Contents of stack 1, bottom to top.
	Stack2     []string // Contents of stack 2, bottom to top.
}

// Run is the execution context of one word through one machine. Each run
// owns its own cursor and stacks; a Machine may be shared across sequential
// runs but never across concurrent ones.
type Run struct {
	MaxSteps int // Step budget for Exec; 0 leaves the run unbounded.

	Trace  []Step  // Applied transitions, in order.
	Faults []error // Non fatal stack faults, in order of occurrence.

	machine *Machine
	word    []string
	cursor  int
	state   int
	stacks  StackPair
	status  Status
	steps   int
}

// NewRun prepares a run of word through m, with both stacks holding the
// marker and the cursor at the first character. Characters outside the
// machine's alphabet abort the run before it starts.
func NewRun(m *Machine, word string) (run *Run, err error) {
	if err = m.CheckWord(word); err != nil {
		return
	}

	run = &Run{
		machine: m,
		state:   m.Start,
	}
	for _, r := range word {
		run.word = append(run.word, string(r))
	}
	run.stacks.Reset()

	return
}

// Status returns the run's lifecycle state.
func (run *Run) Status() Status {
	return run.status
}

// State returns the current automaton state.
func (run *Run) State() int {
	return run.state
}

// Stacks returns the run's stack pair.
func (run *Run) Stacks() *StackPair {
	return &run.stacks
}

// Step executes one cycle of the automaton:
//
//  1. If the current state is an end state, the run is Accepted. This is
//     checked before any further input is consumed, so trailing input after
//     reaching an end state is ignored.
//  2. The symbol is the character under the cursor, or Epsilon once the
//     word is exhausted.
//  3. If no transition matches, the run is Rejected.
//  4. Every matching transition fires, in declaration order. Later matches
//     overwrite the state set by earlier ones, so only the last destination
//     survives into the next cycle. Stack faults are recorded and execution
//     continues with the partially mutated stack.
//  5. The cursor advances once, however many transitions fired.
func (run *Run) Step() {
	if run.status != Running {
		return
	}

	if slices.Contains(run.machine.Ends, run.state) {
		run.status = Accepted
		return
	}

	symbol := Epsilon
	if run.cursor < len(run.word) {
		symbol = run.word[run.cursor]
	}

	matched := run.machine.MatchAll(run.state, symbol, &run.stacks)
	if len(matched) == 0 {
		run.status = Rejected
		return
	}

	for _, tr := range matched {
		run.state = tr.To
		if err := run.stacks.Stack1.Apply(tr.Pop1, tr.Push1); err != nil {
			run.Faults = append(run.Faults, err)
		}
		if err := run.stacks.Stack2.Apply(tr.Pop2, tr.Push2); err != nil {
			run.Faults = append(run.Faults, err)
		}
		run.stacks.Replenish()

		run.Trace = append(run.Trace, Step{
			Transition: tr,
			State:      run.state,
			Stack1:     run.stacks.Stack1.Snapshot(),
			Stack2:     run.stacks.Stack2.Snapshot(),
		})
	}

	run.cursor++
}

// Exec steps the run until it accepts or rejects. A machine that loops on
// Epsilon without reaching an end state or a dead end never terminates on
// its own; setting MaxSteps bounds the loop, stopping a still running run
// with ErrStepLimit.
func (run *Run) Exec() (accepted bool, err error) {
	for run.status == Running {
		if run.MaxSteps > 0 && run.steps >= run.MaxSteps {
			err = ErrStepLimit
			return
		}
		run.Step()
		run.steps++
	}

	accepted = run.status == Accepted

	return
}
