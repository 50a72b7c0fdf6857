package console

import (
	"github.com/ezrec/twopda/translate"
)

var f = translate.From

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a word expression", string(err))
}
