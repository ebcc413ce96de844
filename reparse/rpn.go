package reparse

import (
	"fmt"
	"strings"

	"relab/reast"
	"relab/rerrors"
)

// ParseRPN parses s as a whitespace-separated reverse-Polish regular
// expression: atoms ("0", "1", or any other single character) push onto
// an operand stack; "." and "+" pop two operands and push their
// concatenation or alternation; "*" pops one operand and pushes its
// iteration. The stack must hold exactly one value when the input is
// exhausted.
func ParseRPN(s string) (*reast.Node, error) {
	var stack []*reast.Node

	pop2 := func(onShort error) (*reast.Node, *reast.Node, error) {
		if len(stack) < 2 {
			return nil, nil, fmt.Errorf("reparse: %w: %w", onShort, rerrors.InvalidInput)
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		return a, b, nil
	}

	for _, tok := range strings.Fields(s) {
		switch tok {
		case ".":
			a, b, err := pop2(rerrors.NotEnoughArgumentsForDot)
			if err != nil {
				return nil, err
			}
			stack = append(stack, reast.Concat(a, b))
		case "+":
			a, b, err := pop2(rerrors.NotEnoughArgumentsForPlus)
			if err != nil {
				return nil, err
			}
			stack = append(stack, reast.Alt(a, b))
		case "*":
			if len(stack) < 1 {
				return nil, fmt.Errorf("reparse: %w: %w", rerrors.NoArgumentForStar, rerrors.InvalidInput)
			}
			a := stack[len(stack)-1]
			stack[len(stack)-1] = reast.Iterate(a)
		case "0":
			stack = append(stack, reast.None())
		case "1":
			stack = append(stack, reast.Empty())
		default:
			if len(tok) != 1 {
				return nil, fmt.Errorf("reparse: rpn atom %q is not a single symbol: %w", tok, rerrors.InvalidInput)
			}
			stack = append(stack, reast.Literal(tok[0]))
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("reparse: %w: got %d", rerrors.UnconsumedOperands, len(stack))
	}
	return stack[0], nil
}
