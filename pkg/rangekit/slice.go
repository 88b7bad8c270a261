package rangekit

// SliceCursor yields the elements of a slice by value.
type SliceCursor[T any] struct {
	vs []T
	i  int
}

func (c SliceCursor[T]) Next() SliceCursor[T] { return SliceCursor[T]{vs: c.vs, i: c.i + 1} }

func (c SliceCursor[T]) Value() T { return c.vs[c.i] }

func (c SliceCursor[T]) Equal(oth SliceCursor[T]) bool { return c.i == oth.i }

// Slice returns a read-only view over the elements of vs.
// Mutating the produced values never changes vs.
func Slice[T any](vs []T) Range[T, SliceCursor[T]] {
	return Range[T, SliceCursor[T]]{
		begin: SliceCursor[T]{vs: vs, i: 0},
		end:   SliceCursor[T]{vs: vs, i: len(vs)},
	}
}

// SliceRefCursor yields a pointer to each element of a slice.
type SliceRefCursor[T any] struct {
	vs []T
	i  int
}

func (c SliceRefCursor[T]) Next() SliceRefCursor[T] { return SliceRefCursor[T]{vs: c.vs, i: c.i + 1} }

func (c SliceRefCursor[T]) Value() *T { return &c.vs[c.i] }

func (c SliceRefCursor[T]) Equal(oth SliceRefCursor[T]) bool { return c.i == oth.i }

// SliceRef returns a write-through view over vs.
// Each produced pointer aliases the slice element,
// so it stays valid only as long as vs is not reallocated.
func SliceRef[T any](vs []T) Range[*T, SliceRefCursor[T]] {
	return Range[*T, SliceRefCursor[T]]{
		begin: SliceRefCursor[T]{vs: vs, i: 0},
		end:   SliceRefCursor[T]{vs: vs, i: len(vs)},
	}
}
