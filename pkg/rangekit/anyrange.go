package rangekit

import "iter"

// erasedCursor is the dynamic counterpart of the Cursor protocol.
// Unlike a Cursor, an erasedCursor advances in place,
// so callers must clone it before advancing a shared instance.
type erasedCursor[T any] interface {
	advance()
	value() T
	equal(oth erasedCursor[T]) bool
	clone() erasedCursor[T]
}

type cursorBox[T any, C Cursor[T, C]] struct {
	cur C
}

func (b *cursorBox[T, C]) advance() { b.cur = b.cur.Next() }

func (b *cursorBox[T, C]) value() T { return b.cur.Value() }

func (b *cursorBox[T, C]) equal(oth erasedCursor[T]) bool {
	o, ok := oth.(*cursorBox[T, C])
	if !ok {
		panic(ErrCursorMismatch)
	}
	return b.cur.Equal(o.cur)
}

func (b *cursorBox[T, C]) clone() erasedCursor[T] {
	return &cursorBox[T, C]{cur: b.cur}
}

// AnyIterator is a Cursor that hides the concrete cursor type it wraps.
// Two AnyIterator can only be compared when they originate from the same range.
type AnyIterator[T any] struct {
	impl erasedCursor[T]
}

func (it AnyIterator[T]) Next() AnyIterator[T] {
	next := it.impl.clone()
	next.advance()
	return AnyIterator[T]{impl: next}
}

func (it AnyIterator[T]) Value() T { return it.impl.value() }

func (it AnyIterator[T]) Equal(oth AnyIterator[T]) bool {
	if it.impl == nil || oth.impl == nil {
		return it.impl == nil && oth.impl == nil
	}
	return it.impl.equal(oth.impl)
}

func (it AnyIterator[T]) clone() AnyIterator[T] {
	if it.impl == nil {
		return it
	}
	return AnyIterator[T]{impl: it.impl.clone()}
}

// AnyRange is a range that only exposes the type of the values it produces.
// It allows functions to accept any range of T,
// regardless of the adapter chain that created it.
//
// The zero value is an empty range.
// Copies of an AnyRange never share advancement state,
// since the erased cursors are cloned before they move.
// The embedded Range can be passed to any adapter function.
type AnyRange[T any] struct {
	Range[T, AnyIterator[T]]
}

// MakeAnyRange erases the cursor type of r.
func MakeAnyRange[T any, C Cursor[T, C]](r Range[T, C]) AnyRange[T] {
	return AnyRange[T]{Range: Range[T, AnyIterator[T]]{
		begin: AnyIterator[T]{impl: &cursorBox[T, C]{cur: r.begin}},
		end:   AnyIterator[T]{impl: &cursorBox[T, C]{cur: r.end}},
	}}
}

// Clone makes an independent copy of the range with its own erased cursors.
func (r AnyRange[T]) Clone() AnyRange[T] {
	return AnyRange[T]{Range: Range[T, AnyIterator[T]]{
		begin: r.begin.clone(),
		end:   r.end.clone(),
	}}
}

// All walks the range with a single private cursor that is advanced in place.
func (r AnyRange[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.begin.impl == nil {
			return
		}
		cur := r.begin.impl.clone()
		for !cur.equal(r.end.impl) {
			if !yield(cur.value()) {
				return
			}
			cur.advance()
		}
	}
}
