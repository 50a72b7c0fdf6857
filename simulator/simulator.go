// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package simulator

import (
	"log"

	"github.com/ezrec/twopda/machine"
)

// Simulator runs words through one machine, one at a time. Each word gets
// a fresh execution context, so a single Simulator may serve any number of
// sequential words; concurrent use needs one Simulator per goroutine.
type Simulator struct {
	Verbose  bool             // If set, logs every applied transition.
	Machine  *machine.Machine // Machine under simulation.
	MaxSteps int              // Per word step budget; 0 is unbounded.
}

// Result is the outcome of simulating one word.
type Result struct {
	Word     string
	Accepted bool
	Trace    []machine.Step // Applied transitions with stack snapshots.
	Faults   []error        // Stack faults reported along the way.
}

// NewSimulator validates the machine description and wraps it.
func NewSimulator(m *machine.Machine) (sim *Simulator, err error) {
	if err = m.Validate(); err != nil {
		return
	}

	sim = &Simulator{Machine: m}

	return
}

// Simulate runs one word to its verdict. A word with characters outside
// the alphabet fails up front with the input error; the simulator stays
// ready for the next word. Stack faults do not terminate the run; they are
// reported on the Result beside the verdict.
func (sim *Simulator) Simulate(word string) (res *Result, err error) {
	run, err := machine.NewRun(sim.Machine, word)
	if err != nil {
		return
	}

	if sim.Verbose {
		log.Printf("simulator: word %q from state %v", word, sim.Machine.Start)
	}

	steps := 0
	for run.Status() == machine.Running {
		if sim.MaxSteps > 0 && steps >= sim.MaxSteps {
			err = &ErrRuntime{Word: word, Err: machine.ErrStepLimit}
			return
		}

		applied := len(run.Trace)
		run.Step()
		steps++

		if sim.Verbose {
			for _, step := range run.Trace[applied:] {
				log.Printf("simulator: %v stack1=%v stack2=%v",
					step.Transition, step.Stack1, step.Stack2)
			}
		}
	}

	res = &Result{
		Word:     word,
		Accepted: run.Status() == machine.Accepted,
		Trace:    run.Trace,
		Faults:   run.Faults,
	}

	if sim.Verbose {
		log.Printf("simulator: word %q accepted=%v after %v transitions",
			word, res.Accepted, len(res.Trace))
	}

	return
}
