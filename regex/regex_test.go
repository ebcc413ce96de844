package regex

import (
	"testing"

	"relab/reast"
	"relab/reparse"
)

func mustParse(t *testing.T, pattern string) *reast.Node {
	t.Helper()
	node, err := reparse.ParseInfix(pattern)
	if err != nil {
		t.Fatalf("ParseInfix(%q): %v", pattern, err)
	}
	return node
}

func TestToMinimalCompleteDFAAccepts(t *testing.T) {
	node := mustParse(t, "a(b+c)*d")
	d, err := ToMinimalCompleteDFA(node, []byte("abcd"))
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"ad", "abcd", "abcbcd", "acbd"} {
		if !d.Accepts([]byte(s)) {
			t.Errorf("Accepts(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "a", "abc", "abcbc"} {
		if d.Accepts([]byte(s)) {
			t.Errorf("Accepts(%q) = true, want false", s)
		}
	}
}

func TestEqual(t *testing.T) {
	// (ab)* and a(ba)*b + 1 denote the same language.
	left := mustParse(t, "(ab)*")
	right := mustParse(t, "a(ba)*b+1")
	eq, err := Equal(left, right, []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatal("Equal((ab)*, a(ba)*b+1) = false, want true")
	}

	different := mustParse(t, "a*")
	eq, err = Equal(left, different, []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Fatal("Equal((ab)*, a*) = true, want false")
	}
}

func TestMaxMatchingPrefix(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    int
	}{
		{"(a*b)*", "aababac", 5},
		{"c(a+b)", "aa", 0},
		{"c(a+b)", "cb", 2},
	}
	for _, c := range cases {
		node := mustParse(t, c.pattern)
		if got := MaxMatchingPrefix(node, c.input); got != c.want {
			t.Errorf("MaxMatchingPrefix(%q, %q) = %d, want %d", c.pattern, c.input, got, c.want)
		}
	}
}

func TestComplement(t *testing.T) {
	node := mustParse(t, "a")
	comp, err := Complement(node, []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := ToMinimalCompleteDFA(comp, []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Accepts([]byte("a")) {
		t.Error("complement of \"a\" accepts \"a\"")
	}
	for _, s := range []string{"", "b", "aa", "ba"} {
		if !d.Accepts([]byte(s)) {
			t.Errorf("complement of \"a\" rejects %q, want accept", s)
		}
	}
}
