package machine

import (
	"errors"

	"github.com/ezrec/twopda/translate"
)

var f = translate.From

var (
	// Description errors
	ErrAlphabetEmpty = errors.New(f("alphabet empty"))
	ErrStatesEmpty   = errors.New(f("state set empty"))
	ErrStartUnknown  = errors.New(f("start state not in the state set"))

	// Run errors
	ErrStepLimit = errors.New(f("step limit reached"))
)

type ErrSymbolReserved string

func (err ErrSymbolReserved) Error() string {
	return f("symbol '%v' is reserved", string(err))
}

type ErrNotANumber string

func (err ErrNotANumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrDuplicateState int

func (err ErrDuplicateState) Error() string {
	return f("state %v duplicated", int(err))
}

type ErrUnknownState int

func (err ErrUnknownState) Error() string {
	return f("state %v not in the state set", int(err))
}

type ErrTransitionArity string

func (err ErrTransitionArity) Error() string {
	return f("transition '%v' needs 7 fields", string(err))
}

// ErrInput lists the characters of a word that are outside the alphabet.
type ErrInput []string

func (err ErrInput) Error() string {
	return f("invalid input characters %v", []string(err))
}

// ErrPopMismatch reports a pop specification blocked by a different symbol
// on top of the stack.
type ErrPopMismatch struct {
	Spec string
	Top  string
}

func (err ErrPopMismatch) Error() string {
	return f("pop '%v' blocked by top '%v'", err.Spec, err.Top)
}

type ErrPopUnderflow string

func (err ErrPopUnderflow) Error() string {
	return f("pop '%v' from empty stack", string(err))
}

type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("key '%v' unknown", string(err))
}

// ErrFormat locates a format error in a machine description file.
type ErrFormat struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrFormat) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrFormat) Unwrap() error {
	return err.Err
}
