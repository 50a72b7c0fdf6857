// Package machine implements a two stack pushdown automaton: the machine
// description, the transition matching rule, the dual stack semantics, and
// the step by step execution engine.
//
// A Machine is the immutable description of one automaton. A Run carries the
// live context of one word being simulated: the current state, the input
// cursor, and the two stacks. Stack 1 is special cased: whenever a transition
// leaves it empty, it is refilled with the bottom marker "#", so between
// steps it is never empty. Stack 2 carries no such guarantee.
//
// The package also provides the plain text and YAML codecs for persisted
// machine descriptions.
package machine
