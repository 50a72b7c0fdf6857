package simulator

import (
	"github.com/ezrec/twopda/translate"
)

var f = translate.From

// ErrRuntime names the word that provoked a runtime error.
type ErrRuntime struct {
	Word string
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("word %q %v", err.Word, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
