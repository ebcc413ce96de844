package serial

import (
	"strings"
	"testing"

	"relab/automaton"
)

func buildSampleDFA(t *testing.T) *automaton.DFA {
	t.Helper()
	d := automaton.NewDFA()
	s0 := d.AddState()
	s1 := d.AddState()
	if err := d.SetInitial(s0); err != nil {
		t.Fatal(err)
	}
	if err := d.SetAccepting(s1, true); err != nil {
		t.Fatal(err)
	}
	if err := d.AddTransition(s0, 'a', s1); err != nil {
		t.Fatal(err)
	}
	if err := d.AddTransition(s1, 'a', s1); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDFARoundTrip(t *testing.T) {
	d := buildSampleDFA(t)
	var buf strings.Builder
	if err := WriteDFA(&buf, d); err != nil {
		t.Fatal(err)
	}

	got, err := ReadDFA(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadDFA: %v\ninput:\n%s", err, buf.String())
	}
	if !got.Equal(d) {
		t.Fatalf("round trip changed the DFA: got %+v, want %+v", got, d)
	}
}

func buildSampleNFA(t *testing.T) *automaton.NFA {
	t.Helper()
	n := automaton.NewNFA()
	s0 := n.AddState()
	s1 := n.AddState()
	s2 := n.AddState()
	if err := n.SetInitial(s0); err != nil {
		t.Fatal(err)
	}
	if err := n.SetAccepting(s2, true); err != nil {
		t.Fatal(err)
	}
	if err := n.AddTransition(s0, "", s1); err != nil { // epsilon edge
		t.Fatal(err)
	}
	if err := n.AddTransition(s1, "a", s2); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNFARoundTripWithEpsilon(t *testing.T) {
	n := buildSampleNFA(t)
	var buf strings.Builder
	if err := WriteNFA(&buf, n); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), epsilonToken) {
		t.Fatalf("written form does not contain the epsilon sentinel %q:\n%s", epsilonToken, buf.String())
	}

	got, err := ReadNFA(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadNFA: %v\ninput:\n%s", err, buf.String())
	}
	var sawEpsilon bool
	got.Walk(func(from, to int, label string) {
		if label == "" {
			sawEpsilon = true
		}
	})
	if !sawEpsilon {
		t.Fatal("round trip lost the epsilon transition")
	}
}

func TestReadDFARejectsMalformedHeader(t *testing.T) {
	_, err := ReadDFA(strings.NewReader("not a header\n\n\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed header")
	}
}
