// Package serial implements the line-based text format automata are read
// from and written to by the CLI's "automaton" command and "print"
// output: a state count and initial state, a line of accepting state
// ids, then one "from to label" triple per line up to a blank line.
package serial

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"relab/automaton"
	"relab/rerrors"
)

// epsilonToken is the sentinel written in place of an NFA transition's
// empty label: the format is whitespace-delimited, so an actual empty
// field cannot survive a round trip.
const epsilonToken = "~"

// WriteDFA writes d in the line-based format, one character per label.
func WriteDFA(w io.Writer, d *automaton.DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", d.StateCount, d.Initial)
	fmt.Fprintln(bw, joinInts(acceptingIDs(d.Accepting)))
	d.Walk(func(from, to int, label byte) {
		fmt.Fprintf(bw, "%d %d %c\n", from, to, label)
	})
	fmt.Fprintln(bw)
	return bw.Flush()
}

// WriteNFA writes n in the line-based format; an empty transition label
// (ε) is written as the sentinel token "~".
func WriteNFA(w io.Writer, n *automaton.NFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", n.StateCount, n.Initial)
	fmt.Fprintln(bw, joinInts(acceptingIDs(n.Accepting)))
	n.Walk(func(from, to int, label string) {
		if label == "" {
			label = epsilonToken
		}
		fmt.Fprintf(bw, "%d %d %s\n", from, to, label)
	})
	fmt.Fprintln(bw)
	return bw.Flush()
}

// ReadDFA reads a DFA in the line-based format. Every transition label
// must be exactly one character.
func ReadDFA(r io.Reader) (*automaton.DFA, error) {
	stateCount, initial, acceptingIDs, rows, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	d := automaton.NewDFA()
	for i := 0; i < stateCount; i++ {
		d.AddState()
	}
	if err := d.SetInitial(initial); err != nil {
		return nil, err
	}
	for _, id := range acceptingIDs {
		if err := d.SetAccepting(id, true); err != nil {
			return nil, err
		}
	}
	for _, row := range rows {
		if len(row.label) != 1 {
			return nil, fmt.Errorf("serial: dfa transition label %q is not one character: %w", row.label, rerrors.InvalidInput)
		}
		if err := d.AddTransition(row.from, row.label[0], row.to); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ReadNFA reads an NFA in the line-based format. The sentinel token "~"
// in the label column reads back as the empty (ε) label.
func ReadNFA(r io.Reader) (*automaton.NFA, error) {
	stateCount, initial, acceptingIDs, rows, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	n := automaton.NewNFA()
	for i := 0; i < stateCount; i++ {
		n.AddState()
	}
	if err := n.SetInitial(initial); err != nil {
		return nil, err
	}
	for _, id := range acceptingIDs {
		if err := n.SetAccepting(id, true); err != nil {
			return nil, err
		}
	}
	for _, row := range rows {
		label := row.label
		if label == epsilonToken {
			label = ""
		}
		if err := n.AddTransition(row.from, label, row.to); err != nil {
			return nil, err
		}
	}
	return n, nil
}

type transitionRow struct {
	from, to int
	label    string
}

func readHeader(r io.Reader) (stateCount, initial int, acceptingIDs []int, rows []transitionRow, err error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return 0, 0, nil, nil, fmt.Errorf("serial: missing header line: %w", rerrors.InvalidInput)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return 0, 0, nil, nil, fmt.Errorf("serial: header %q: want \"<state_count> <initial>\": %w", sc.Text(), rerrors.InvalidInput)
	}
	stateCount, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("serial: state count %q: %v: %w", fields[0], err, rerrors.InvalidInput)
	}
	initial, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("serial: initial state %q: %v: %w", fields[1], err, rerrors.InvalidInput)
	}

	if !sc.Scan() {
		return 0, 0, nil, nil, fmt.Errorf("serial: missing accepting-states line: %w", rerrors.InvalidInput)
	}
	for _, f := range strings.Fields(sc.Text()) {
		id, err := strconv.Atoi(f)
		if err != nil {
			return 0, 0, nil, nil, fmt.Errorf("serial: accepting state %q: %v: %w", f, err, rerrors.InvalidInput)
		}
		acceptingIDs = append(acceptingIDs, id)
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, 0, nil, nil, fmt.Errorf("serial: transition %q: want \"<from> <to> <label>\": %w", line, rerrors.InvalidInput)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, 0, nil, nil, fmt.Errorf("serial: transition source %q: %v: %w", fields[0], err, rerrors.InvalidInput)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, nil, nil, fmt.Errorf("serial: transition target %q: %v: %w", fields[1], err, rerrors.InvalidInput)
		}
		rows = append(rows, transitionRow{from: from, to: to, label: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return 0, 0, nil, nil, fmt.Errorf("serial: %v: %w", err, rerrors.InvalidInput)
	}
	return stateCount, initial, acceptingIDs, rows, nil
}

func acceptingIDs(accepting []bool) []int {
	var ids []int
	for i, a := range accepting {
		if a {
			ids = append(ids, i)
		}
	}
	return ids
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
