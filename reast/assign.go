package reast

// AltAssign sets *p to Alt(*p, other), mirroring the accumulation pattern
// every alternation-accumulating caller would otherwise spell out by hand.
// The destructive form exists alongside the pure Alt because callers that
// repeatedly fold a growing alternation into one slot (state elimination,
// alphabet-union passes) read cleaner against *p than against a fresh
// local on every iteration.
func AltAssign(p **Node, other *Node) {
	*p = Alt(*p, other)
}

// ConcatAssign sets *p to Concat(*p, other), the concatenation counterpart
// of AltAssign.
func ConcatAssign(p **Node, other *Node) {
	*p = Concat(*p, other)
}

// IterateAssign sets *p to Iterate(*p), the in-place Kleene star. Unlike
// AltAssign/ConcatAssign there is no binary operand to mirror from the
// original's operator overloads; this is the unary counterpart the public
// operations list calls for directly.
func IterateAssign(p **Node) {
	*p = Iterate(*p)
}
