package reast

// Visitor computes a value of type T for one RE node given the values
// already computed for its children. Implementations should be pure
// functions of their arguments; Fold guarantees each Visit* is called
// exactly once per visited node, in post-order, with children's results
// ready.
type Visitor[T any] interface {
	VisitNone() T
	VisitEmpty() T
	VisitLiteral(sym byte) T
	VisitConcat(left, right T) T
	VisitAlt(left, right T) T
	VisitStar(child T) T
}

// Fold evaluates v over n using an explicit, iterative (non-recursive)
// post-order traversal. REs produced by state elimination can be thousands
// of nodes deep; a recursive walk would overflow the goroutine stack, so
// the traversal here is driven by two explicit stacks instead.
//
// Phase 1 linearizes the DAG into post-order using the classic two-stack
// technique (push root; repeatedly pop into an order stack and push its
// children so they come out in the right order). Phase 2 replays that
// order against a value stack, popping each node's children's results
// before calling the matching Visit* and pushing its result. The value
// stack is guaranteed to hold exactly one element when the fold completes;
// that guarantee is the postcondition checked by the final pop.
func Fold[T any](n *Node, v Visitor[T]) T {
	order := make([]*Node, 0, 64)
	work := []*Node{n}
	for len(work) > 0 {
		last := len(work) - 1
		cur := work[last]
		work = work[:last]
		order = append(order, cur)
		switch cur.Kind {
		case KindConcat, KindAlt:
			work = append(work, cur.Left, cur.Right)
		case KindStar:
			work = append(work, cur.Left)
		}
	}

	values := make([]T, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		cur := order[i]
		var result T
		switch cur.Kind {
		case KindNone:
			result = v.VisitNone()
		case KindEmpty:
			result = v.VisitEmpty()
		case KindLiteral:
			result = v.VisitLiteral(cur.Sym)
		case KindStar:
			child := values[len(values)-1]
			values = values[:len(values)-1]
			result = v.VisitStar(child)
		case KindConcat:
			right := values[len(values)-1]
			left := values[len(values)-2]
			values = values[:len(values)-2]
			result = v.VisitConcat(left, right)
		case KindAlt:
			right := values[len(values)-1]
			left := values[len(values)-2]
			values = values[:len(values)-2]
			result = v.VisitAlt(left, right)
		}
		values = append(values, result)
	}

	if len(values) != 1 {
		panic("reast: Fold postcondition violated: value stack did not reduce to one element")
	}
	return values[0]
}
