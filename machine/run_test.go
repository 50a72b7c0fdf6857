package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pushdownMachine is the shared test machine: push every 'a', move to the
// accepting state on the first 'b'.
func pushdownMachine() *Machine {
	return &Machine{
		Alphabet: []string{"a", "b"},
		States:   []int{0, 1},
		Start:    0,
		Ends:     []int{1},
		Transitions: []Transition{
			{From: 0, Input: "a", Pop1: Epsilon, Pop2: Epsilon, Push1: "a", Push2: Epsilon, To: 0},
			{From: 0, Input: "b", Pop1: Epsilon, Pop2: Epsilon, Push1: Epsilon, Push2: Epsilon, To: 1},
		},
	}
}

func TestRun_Accept(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	run, err := NewRun(pushdownMachine(), "ab")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.True(accepted)
	assert.Equal(Accepted, run.Status())
	assert.Equal(1, run.State())

	require.Equal(2, len(run.Trace))
	assert.Equal("0,a,E,E,a,E,0", run.Trace[0].Transition.String())
	assert.Equal("0,b,E,E,E,E,1", run.Trace[1].Transition.String())
	assert.Equal([]string{Marker, "a"}, run.Trace[1].Stack1)
	assert.Equal([]string{Marker}, run.Trace[1].Stack2)
	assert.Empty(run.Faults)
}

func TestRun_AcceptBeforeConsuming(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// At state 0 on 'b' only the second transition matches, reaching the
	// end state; the trailing 'a' is never consumed.
	run, err := NewRun(pushdownMachine(), "ba")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.True(accepted)
	assert.Equal(1, len(run.Trace))
}

func TestRun_EmptyWordAtEndState(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// A start state that is also an end state accepts the empty word with
	// no transitions applied.
	m := pushdownMachine()
	m.Ends = []int{0, 1}

	run, err := NewRun(m, "")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.True(accepted)
	assert.Empty(run.Trace)
	assert.Equal([]string{Marker}, run.Stacks().Stack1.Data)
}

func TestRun_InputError(t *testing.T) {
	assert := assert.New(t)

	run, err := NewRun(pushdownMachine(), "ac")
	assert.Nil(run)
	assert.Equal(ErrInput([]string{"c"}), err)
}

func TestRun_RejectOnPopMismatch(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// The only transition wants 'x' on stack 1, whose top is the marker:
	// no match, immediate rejection.
	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1},
		Start:    0,
		Ends:     []int{1},
		Transitions: []Transition{
			{From: 0, Input: "a", Pop1: "x", Pop2: Epsilon, Push1: Epsilon, Push2: Epsilon, To: 1},
		},
	}

	run, err := NewRun(m, "a")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.False(accepted)
	assert.Equal(Rejected, run.Status())
	assert.Empty(run.Trace)
}

func TestRun_RejectNoTransitions(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1},
		Start:    0,
		Ends:     []int{1},
	}

	run, err := NewRun(m, "a")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.False(accepted)
	assert.Empty(run.Trace)
}

func TestRun_Stack1NeverEmpty(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// Popping the marker off stack 1 refills it immediately; stack 2
	// stays empty once drained.
	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1},
		Start:    0,
		Ends:     []int{1},
		Transitions: []Transition{
			{From: 0, Input: "a", Pop1: Marker, Pop2: Marker, Push1: Epsilon, Push2: Epsilon, To: 1},
		},
	}

	run, err := NewRun(m, "a")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.True(accepted)

	require.Equal(1, len(run.Trace))
	assert.Equal([]string{Marker}, run.Trace[0].Stack1)
	assert.Empty(run.Trace[0].Stack2)
}

func TestRun_FaultContinues(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// The pop sequence "x.#" matches on the marker, pops it, then
	// underflows on 'x'. The fault is recorded, the partial pop stands,
	// and the run still completes.
	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1},
		Start:    0,
		Ends:     []int{1},
		Transitions: []Transition{
			{From: 0, Input: "a", Pop1: Epsilon, Pop2: "x.#", Push1: Epsilon, Push2: Epsilon, To: 1},
		},
	}

	run, err := NewRun(m, "a")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.True(accepted)

	require.Equal(1, len(run.Faults))
	assert.Equal(ErrPopUnderflow("x.#"), run.Faults[0])

	// Partial pop: the matching '#' came off before the mismatch.
	require.Equal(1, len(run.Trace))
	assert.Empty(run.Trace[0].Stack2)
}

func TestRun_AllMatchesApplied(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// Both transitions match; both fire in declaration order within one
	// step, and only the last destination state survives.
	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1, 2},
		Start:    0,
		Ends:     []int{2},
		Transitions: []Transition{
			{From: 0, Input: "a", Pop1: Epsilon, Pop2: Epsilon, Push1: "x", Push2: Epsilon, To: 1},
			{From: 0, Input: "a", Pop1: Epsilon, Pop2: Epsilon, Push1: "y", Push2: Epsilon, To: 2},
		},
	}

	run, err := NewRun(m, "a")
	require.NoError(err)

	run.Step()
	assert.Equal(2, run.State())
	require.Equal(2, len(run.Trace))
	assert.Equal(1, run.Trace[0].State)
	assert.Equal(2, run.Trace[1].State)
	assert.Equal([]string{Marker, "x", "y"}, run.Trace[1].Stack1)

	run.Step()
	assert.Equal(Accepted, run.Status())
}

func TestRun_EpsilonAfterExhaustion(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// Once the word is exhausted the machine keeps stepping on Epsilon.
	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1, 2},
		Start:    0,
		Ends:     []int{2},
		Transitions: []Transition{
			{From: 0, Input: "a", Pop1: Epsilon, Pop2: Epsilon, Push1: Epsilon, Push2: Epsilon, To: 1},
			{From: 1, Input: Epsilon, Pop1: Epsilon, Pop2: Epsilon, Push1: Epsilon, Push2: Epsilon, To: 2},
		},
	}

	run, err := NewRun(m, "a")
	require.NoError(err)

	accepted, err := run.Exec()
	assert.NoError(err)
	assert.True(accepted)
	assert.Equal(2, len(run.Trace))
}

func TestRun_StepLimit(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// An Epsilon loop that never reaches an end state runs forever; the
	// step budget bounds it.
	m := &Machine{
		Alphabet: []string{"a"},
		States:   []int{0, 1},
		Start:    0,
		Ends:     []int{1},
		Transitions: []Transition{
			{From: 0, Input: Epsilon, Pop1: Epsilon, Pop2: Epsilon, Push1: Epsilon, Push2: Epsilon, To: 0},
		},
	}

	run, err := NewRun(m, "")
	require.NoError(err)
	run.MaxSteps = 100

	_, err = run.Exec()
	assert.Equal(ErrStepLimit, err)
	assert.Equal(Running, run.Status())
}

func TestRun_MachineImmutable(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := pushdownMachine()
	before := *m
	beforeTransitions := append([]Transition{}, m.Transitions...)

	for _, word := range []string{"", "ab", "aab", "ba"} {
		run, err := NewRun(m, word)
		require.NoError(err)
		_, err = run.Exec()
		require.NoError(err)
	}

	assert.Equal(before.Alphabet, m.Alphabet)
	assert.Equal(before.States, m.States)
	assert.Equal(before.Start, m.Start)
	assert.Equal(before.Ends, m.Ends)
	assert.Equal(beforeTransitions, m.Transitions)
}
