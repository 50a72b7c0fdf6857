package machine

import (
	"strings"
)

const (
	// Epsilon is the textual form of the empty symbol.
	Epsilon = "E"
	// Marker is the reserved bottom of stack symbol.
	Marker = "#"
	// Separator joins the symbols of a multi symbol pop or push specification.
	Separator = "."
)

// SplitSymbols splits a pop or push specification into its symbol list.
// An Epsilon specification has no symbols.
func SplitSymbols(spec string) []string {
	if spec == Epsilon {
		return nil
	}
	return strings.Split(spec, Separator)
}

// JoinSymbols is the inverse of SplitSymbols.
func JoinSymbols(symbols []string) string {
	if len(symbols) == 0 {
		return Epsilon
	}
	return strings.Join(symbols, Separator)
}
