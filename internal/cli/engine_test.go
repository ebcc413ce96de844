package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestEngine() *Engine {
	log := logrus.New()
	log.SetOutput(bytesDiscard{})
	return New(log)
}

type bytesDiscard struct{}

func (bytesDiscard) Write(p []byte) (int, error) { return len(p), nil }

func TestRegexAndPrint(t *testing.T) {
	e := newTestEngine()
	var out bytes.Buffer
	script := "regex a(b+c)*d\nprint 0\n"
	if err := e.Run(strings.NewReader(script), &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[0] != "0" || lines[1] != "a(b+c)*d" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestEquivalenceCommand(t *testing.T) {
	e := newTestEngine()
	var out bytes.Buffer
	script := strings.Join([]string{
		"regex (ab)*",
		"regex a(ba)*b+1",
		"equivalence 0 1 ab",
	}, "\n") + "\n"
	if err := e.Run(strings.NewReader(script), &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || lines[2] != "true" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	e := newTestEngine()
	var out bytes.Buffer
	if err := e.Run(strings.NewReader("frobnicate 1 2\n"), &out); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "Unknown command frobnicate" {
		t.Fatalf("output = %q", got)
	}
}

func TestMaxMatchingPrefixCommand(t *testing.T) {
	e := newTestEngine()
	var out bytes.Buffer
	script := "regex (a*b)*\nmax_matching_prefix 0 aababac\n"
	if err := e.Run(strings.NewReader(script), &out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[1] != "5" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestAutomatonFromSerializedForm(t *testing.T) {
	e := newTestEngine()
	var out bytes.Buffer
	script := strings.Join([]string{
		"automaton dfa",
		"2 0",
		"1",
		"0 1 a",
		"1 1 a",
		"",
		"print 0",
	}, "\n") + "\n"
	if err := e.Run(strings.NewReader(script), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "0 1 a") {
		t.Fatalf("print did not echo back the transition: %q", out.String())
	}
}
