// Package cli is the REPL engine behind cmd/regexctl: a line-oriented
// command dispatcher over an object registry, exactly the "interactive
// object table" front-end the core algebra and automaton packages push
// out of scope. It owns no algorithm; every command is a thin call into
// reparse, serial, automaton, or regex.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"relab/automaton"
	"relab/reast"
	"relab/registry"
)

// Engine holds the state a REPL session needs across commands: the
// object table and the logger commands report through.
type Engine struct {
	Table *registry.Table
	Log   *logrus.Logger
}

// New returns an Engine with a fresh, empty object table.
func New(log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{Table: registry.New(), Log: log}
}

// Run executes every line of in as a command, writing command output to
// out, until EOF. It returns the first error only if reading from in
// itself fails; command errors are logged and otherwise swallowed, so
// one bad command does not abort the session.
func (e *Engine) Run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e.dispatch(line, sc, out)
	}
	return sc.Err()
}

func (e *Engine) dispatch(line string, sc *bufio.Scanner, out io.Writer) {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	entry := e.Log.WithField("command", name)

	fn, ok := commands[name]
	if !ok {
		fmt.Fprintf(out, "Unknown command %s\n", name)
		entry.Warn("unknown command")
		return
	}
	if err := fn(e, args, sc, out); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		entry.WithError(err).Error("command failed")
		return
	}
	entry.Debug("command ok")
}

func parseAlphabet(s string) []byte {
	return []byte(s)
}

func nodeOf(e *Engine, id int) (*reast.Node, error) {
	obj, err := e.Table.Require(id, registry.KindRegex)
	if err != nil {
		return nil, err
	}
	return obj.Value.(*reast.Node), nil
}

func dfaOf(e *Engine, id int) (*automaton.DFA, error) {
	obj, err := e.Table.Require(id, registry.KindDFA)
	if err != nil {
		return nil, err
	}
	return obj.Value.(*automaton.DFA), nil
}

func nfaOf(e *Engine, id int) (*automaton.NFA, error) {
	obj, err := e.Table.Require(id, registry.KindNFA)
	if err != nil {
		return nil, err
	}
	return obj.Value.(*automaton.NFA), nil
}
