// Package rerrors enumerates the error taxonomy shared by every layer of
// the toolkit: parsing, the automaton substrate, and the transformations.
// Callers compare with errors.Is against the sentinel values; use %w to
// attach context when returning one.
package rerrors

import "errors"

var (
	// InvalidInput marks parser and CLI argument errors.
	InvalidInput = errors.New("invalid input")

	// InvalidStateIndex marks a transition or lookup referring to a state
	// id outside 0..state_count.
	InvalidStateIndex = errors.New("invalid state index")

	// NotSingleLetter marks a determinization attempt over an NFA whose
	// transition labels are not all exactly one symbol long.
	NotSingleLetter = errors.New("not single letter")

	// NotCompleteForComplement marks Complement called on an incomplete DFA.
	NotCompleteForComplement = errors.New("dfa not complete for complement")

	// NotCompleteForMinimize marks Minimize called on a DFA whose states
	// disagree on outgoing transition arity.
	NotCompleteForMinimize = errors.New("dfa not complete for minimize")

	// MultipleAcceptingStates marks an operation that requires exactly one
	// accepting state (e.g. ToRegex without a prior MakeSingleAccepting).
	MultipleAcceptingStates = errors.New("multiple accepting states")

	// BadTransitionLabelLength marks ToRegex receiving a transition label
	// of length two or more.
	BadTransitionLabelLength = errors.New("transition label length >= 2")

	// SizesDiffer marks an internal consistency failure: the accepting bit
	// vector's length does not match the transition table's length.
	SizesDiffer = errors.New("accepting vector and transition table sizes differ")

	// The remaining four are the reverse-Polish RE syntax's own error
	// kinds (§6.2): a malformed operator stream, not a core-algorithm
	// failure.

	// NoArgumentForStar marks a postfix "*" with nothing on the stack.
	NoArgumentForStar = errors.New("no argument for star")

	// NotEnoughArgumentsForPlus marks a postfix "+" with fewer than two
	// operands on the stack.
	NotEnoughArgumentsForPlus = errors.New("not enough arguments for plus")

	// NotEnoughArgumentsForDot marks a postfix "." with fewer than two
	// operands on the stack.
	NotEnoughArgumentsForDot = errors.New("not enough arguments for dot")

	// UnconsumedOperands marks a postfix expression that did not leave
	// exactly one value on the operand stack (empty input included).
	UnconsumedOperands = errors.New("unconsumed operands")
)
