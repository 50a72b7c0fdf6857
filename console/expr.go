package console

import (
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// ExpandWord resolves $(...) expressions in an input word, so pumping style
// words like $('a'*20 + 'b'*20) need not be typed out by hand. Each
// expression must evaluate to a string; text outside $() is kept as is.
func ExpandWord(word string) (expanded string, err error) {
	expanded = exprPattern.ReplaceAllStringFunc(word, func(str string) string {
		value, _err := wordEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return value
	})
	if err != nil {
		expanded = ""
	}
	return
}

// wordEval evaluates a single $() expression.
func wordEval(expr string) (value string, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, starlark.StringDict{})
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_str, ok := st_rc.(starlark.String)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value = string(st_str)
	return
}
