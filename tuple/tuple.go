// Package tuple provides small fixed-size value groupings.
package tuple

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Unpack returns both values, for destructuring assignment:
//
//	begin, end := order.Ascending(c).Unpack()
func (t Tuple2[A, B]) Unpack() (A, B) { //nolint:ireturn
	return t.first, t.second
}
