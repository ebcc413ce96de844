package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"relab/automaton"
	"relab/reast"
	"relab/registry"
	"relab/reparse"
	"relab/regex"
	"relab/rerrors"
	"relab/serial"
)

type commandFunc func(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error

var commands = map[string]commandFunc{
	"regex":               cmdRegex,
	"automaton":           cmdAutomaton,
	"add_state":           cmdAddState,
	"add_transition":      cmdAddTransition,
	"print":               cmdPrint,
	"minimize":            cmdMinimize,
	"to_complete":         cmdToComplete,
	"determinize":         cmdDeterminize,
	"complement":          cmdComplement,
	"intersection":        cmdIntersection,
	"to_regex":            cmdToRegex,
	"to_nfa":              cmdToNFA,
	"to_mcdfa":            cmdToMCDFA,
	"equivalence":         cmdEquivalence,
	"dot":                 cmdDot,
	"union":               cmdUnion,
	"reverse":             cmdReverse,
	"max_matching_prefix": cmdMaxMatchingPrefix,
}

// regex <pattern> [rpn] — parse pattern as infix by default, or reverse
// Polish when a second argument "rpn" is given.
func cmdRegex(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("regex: usage: regex <pattern> [rpn]: %w", rerrors.InvalidInput)
	}
	var node *reast.Node
	var err error
	if len(args) >= 2 && args[1] == "rpn" {
		node, err = reparse.ParseRPN(args[0])
	} else {
		node, err = reparse.ParseInfix(args[0])
	}
	if err != nil {
		return err
	}
	id := e.Table.Put(registry.KindRegex, node)
	fmt.Fprintln(out, id)
	return nil
}

// automaton <dfa|nfa> — reads a serialized automaton from the following
// lines of the same input stream, per §6.3's line-based format.
func cmdAutomaton(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 || (args[0] != "dfa" && args[0] != "nfa") {
		return fmt.Errorf("automaton: usage: automaton <dfa|nfa>: %w", rerrors.InvalidInput)
	}
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		lines = append(lines, line)
		if line == "" {
			break
		}
	}
	body := strings.NewReader(strings.Join(lines, "\n") + "\n")

	if args[0] == "dfa" {
		d, err := serial.ReadDFA(body)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, e.Table.Put(registry.KindDFA, d))
		return nil
	}
	n, err := serial.ReadNFA(body)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindNFA, n))
	return nil
}

func parseIntArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s, rerrors.InvalidInput)
	}
	return n, nil
}

// add_state <id> — appends a fresh state to the DFA or NFA at id and
// reports the new state's index.
func cmdAddState(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("add_state: usage: add_state <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	obj, err := e.Table.Get(id)
	if err != nil {
		return err
	}
	switch v := obj.Value.(type) {
	case *automaton.DFA:
		fmt.Fprintln(out, v.AddState())
	case *automaton.NFA:
		fmt.Fprintln(out, v.AddState())
	default:
		return fmt.Errorf("add_state: object %d is not an automaton", id)
	}
	return nil
}

// add_transition <id> <from> <to> <label> — adds one transition to the
// DFA or NFA at id. DFA labels must be one character.
func cmdAddTransition(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("add_transition: usage: add_transition <id> <from> <to> <label>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	from, err := parseIntArg(args[1])
	if err != nil {
		return err
	}
	to, err := parseIntArg(args[2])
	if err != nil {
		return err
	}
	label := args[3]

	obj, err := e.Table.Get(id)
	if err != nil {
		return err
	}
	switch v := obj.Value.(type) {
	case *automaton.DFA:
		if len(label) != 1 {
			return fmt.Errorf("add_transition: dfa label %q is not one character: %w", label, rerrors.InvalidInput)
		}
		return v.AddTransition(from, label[0], to)
	case *automaton.NFA:
		return v.AddTransition(from, label, to)
	default:
		return fmt.Errorf("add_transition: object %d is not an automaton", id)
	}
}

// print <id> — writes the object's textual form: a regex string, or an
// automaton in the §6.3 serialized form.
func cmdPrint(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("print: usage: print <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	obj, err := e.Table.Get(id)
	if err != nil {
		return err
	}
	switch v := obj.Value.(type) {
	case *reast.Node:
		fmt.Fprintln(out, v.String())
		return nil
	case *automaton.DFA:
		return serial.WriteDFA(out, v)
	case *automaton.NFA:
		return serial.WriteNFA(out, v)
	default:
		return fmt.Errorf("print: object %d has unknown kind", id)
	}
}

// minimize <id> — Hopcroft-style partition refinement over the DFA at
// id; the result is a fresh object.
func cmdMinimize(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("minimize: usage: minimize <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	d, err := dfaOf(e, id)
	if err != nil {
		return err
	}
	min, err := d.Minimize()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindDFA, min))
	return nil
}

// to_complete <id> <alphabet> — completes the DFA at id in place over
// alphabet (plus its own) and reports the same id back.
func cmdToComplete(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("to_complete: usage: to_complete <id> <alphabet>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	d, err := dfaOf(e, id)
	if err != nil {
		return err
	}
	d.MakeComplete(parseAlphabet(args[1]))
	fmt.Fprintln(out, id)
	return nil
}

// determinize <id> — subset construction over the NFA at id.
func cmdDeterminize(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("determinize: usage: determinize <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	n, err := nfaOf(e, id)
	if err != nil {
		return err
	}
	d, err := n.Determinize()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindDFA, d))
	return nil
}

// complement <id> <alphabet> — complements the DFA at id in place and
// reports the same id back.
func cmdComplement(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("complement: usage: complement <id> <alphabet>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	d, err := dfaOf(e, id)
	if err != nil {
		return err
	}
	d.MakeComplete(parseAlphabet(args[1]))
	if _, err := d.Complement(); err != nil {
		return err
	}
	fmt.Fprintln(out, id)
	return nil
}

// intersection <id> <id> — product construction over two DFAs.
func cmdIntersection(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("intersection: usage: intersection <id> <id>: %w", rerrors.InvalidInput)
	}
	id1, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	id2, err := parseIntArg(args[1])
	if err != nil {
		return err
	}
	a, err := dfaOf(e, id1)
	if err != nil {
		return err
	}
	b, err := dfaOf(e, id2)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindDFA, a.Intersection(b)))
	return nil
}

// to_regex <id> — state-elimination synthesis of a regex for the NFA at
// id, which must have at most one accepting state (none yields "0").
func cmdToRegex(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("to_regex: usage: to_regex <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	n, err := nfaOf(e, id)
	if err != nil {
		return err
	}
	node, err := n.ToRegex()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindRegex, node))
	return nil
}

// to_nfa <id> — trivial embedding of the DFA at id as an NFA.
func cmdToNFA(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("to_nfa: usage: to_nfa <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	d, err := dfaOf(e, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindNFA, d.ToNFA()))
	return nil
}

// to_mcdfa <id> <alphabet> — Thompson, determinize, complete, minimize
// over the regex at id.
func cmdToMCDFA(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("to_mcdfa: usage: to_mcdfa <id> <alphabet>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	r, err := nodeOf(e, id)
	if err != nil {
		return err
	}
	d, err := regex.ToMinimalCompleteDFA(r, parseAlphabet(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindDFA, d))
	return nil
}

// equivalence <id> <id> <alphabet> — language equality of two REs.
func cmdEquivalence(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("equivalence: usage: equivalence <id> <id> <alphabet>: %w", rerrors.InvalidInput)
	}
	id1, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	id2, err := parseIntArg(args[1])
	if err != nil {
		return err
	}
	r, err := nodeOf(e, id1)
	if err != nil {
		return err
	}
	s, err := nodeOf(e, id2)
	if err != nil {
		return err
	}
	eq, err := regex.Equal(r, s, parseAlphabet(args[2]))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, eq)
	return nil
}

// dot <id> — writes Graphviz source for the automaton at id.
func cmdDot(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("dot: usage: dot <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	obj, err := e.Table.Get(id)
	if err != nil {
		return err
	}
	switch v := obj.Value.(type) {
	case *automaton.DFA:
		v.WriteDOT(out)
		return nil
	case *automaton.NFA:
		v.WriteDOT(out)
		return nil
	default:
		return fmt.Errorf("dot: object %d is not an automaton", id)
	}
}

// union <id> <id> — product construction over two DFAs.
func cmdUnion(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("union: usage: union <id> <id>: %w", rerrors.InvalidInput)
	}
	id1, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	id2, err := parseIntArg(args[1])
	if err != nil {
		return err
	}
	a, err := dfaOf(e, id1)
	if err != nil {
		return err
	}
	b, err := dfaOf(e, id2)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindDFA, a.Union(b)))
	return nil
}

// reverse <id> — DFA for the reversal of the language at id.
func cmdReverse(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("reverse: usage: reverse <id>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	d, err := dfaOf(e, id)
	if err != nil {
		return err
	}
	rev, err := d.Reverse()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, e.Table.Put(registry.KindDFA, rev))
	return nil
}

// max_matching_prefix <id> <pattern> — length of the longest prefix of
// pattern that the regex at id matches.
func cmdMaxMatchingPrefix(e *Engine, args []string, sc *bufio.Scanner, out io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("max_matching_prefix: usage: max_matching_prefix <id> <pattern>: %w", rerrors.InvalidInput)
	}
	id, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	r, err := nodeOf(e, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, regex.MaxMatchingPrefix(r, args[1]))
	return nil
}
