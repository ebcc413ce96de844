// Package registry is the CLI's interactive object table: every command
// that produces a value (a parsed RE, a built or transformed automaton)
// gets a fresh integer id, and later commands refer back to it by that
// id. It has no algorithm of its own — it is the "interactive object
// table" the core spec deliberately pushes out to the command layer.
package registry

import "fmt"

// Kind distinguishes what an Object holds, since commands validate the
// kind they expect before dispatching (e.g. "minimize" needs a DFA).
type Kind int

const (
	KindRegex Kind = iota
	KindNFA
	KindDFA
)

func (k Kind) String() string {
	switch k {
	case KindRegex:
		return "regex"
	case KindNFA:
		return "nfa"
	case KindDFA:
		return "dfa"
	default:
		return "unknown"
	}
}

// Object is one entry of the table: a kind tag and the value itself,
// stored as an any since the three value types share no interface.
type Object struct {
	Kind  Kind
	Value any
}

// Table is the registry proper: a growing, never-shrinking slice of
// objects addressed by their index. Ids are never reused, matching the
// spec's "failure of one command leaves the object registry intact".
type Table struct {
	objects []Object
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Put stores value under kind and returns its new id.
func (t *Table) Put(kind Kind, value any) int {
	id := len(t.objects)
	t.objects = append(t.objects, Object{Kind: kind, Value: value})
	return id
}

// Get returns the object stored at id.
func (t *Table) Get(id int) (Object, error) {
	if id < 0 || id >= len(t.objects) {
		return Object{}, fmt.Errorf("registry: no object with id %d", id)
	}
	return t.objects[id], nil
}

// Require returns the object at id and checks it has kind want.
func (t *Table) Require(id int, want Kind) (Object, error) {
	obj, err := t.Get(id)
	if err != nil {
		return Object{}, err
	}
	if obj.Kind != want {
		return Object{}, fmt.Errorf("registry: object %d is %s, want %s", id, obj.Kind, want)
	}
	return obj, nil
}
