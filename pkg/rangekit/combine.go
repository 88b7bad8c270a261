package rangekit

import "iter"

// Pair is the value produced by two ranges combined.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// Triple is the value produced by three ranges combined.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) Unpack() (A, B, C) { return t.First, t.Second, t.Third }

// CombineCursor2 advances two cursors in lock-step.
// It reports equality as soon as any of its cursors equals the corresponding one of the other,
// thus comparing against the end cursor truncates to the shorter range.
type CombineCursor2[A, B any, CA Cursor[A, CA], CB Cursor[B, CB]] struct {
	a CA
	b CB
}

func (c CombineCursor2[A, B, CA, CB]) Next() CombineCursor2[A, B, CA, CB] {
	return CombineCursor2[A, B, CA, CB]{a: c.a.Next(), b: c.b.Next()}
}

func (c CombineCursor2[A, B, CA, CB]) Value() Pair[A, B] {
	return Pair[A, B]{First: c.a.Value(), Second: c.b.Value()}
}

func (c CombineCursor2[A, B, CA, CB]) Equal(oth CombineCursor2[A, B, CA, CB]) bool {
	return c.a.Equal(oth.a) || c.b.Equal(oth.b)
}

// Combine2 zips two ranges together.
// The result is as long as the shorter input.
func Combine2[A, B any, CA Cursor[A, CA], CB Cursor[B, CB]](ra Range[A, CA], rb Range[B, CB]) Range[Pair[A, B], CombineCursor2[A, B, CA, CB]] {
	return Range[Pair[A, B], CombineCursor2[A, B, CA, CB]]{
		begin: CombineCursor2[A, B, CA, CB]{a: ra.begin, b: rb.begin},
		end:   CombineCursor2[A, B, CA, CB]{a: ra.end, b: rb.end},
	}
}

// CombineCursor3 advances three cursors in lock-step.
type CombineCursor3[A, B, C any, CA Cursor[A, CA], CB Cursor[B, CB], CC Cursor[C, CC]] struct {
	a CA
	b CB
	c CC
}

func (c CombineCursor3[A, B, C, CA, CB, CC]) Next() CombineCursor3[A, B, C, CA, CB, CC] {
	return CombineCursor3[A, B, C, CA, CB, CC]{a: c.a.Next(), b: c.b.Next(), c: c.c.Next()}
}

func (c CombineCursor3[A, B, C, CA, CB, CC]) Value() Triple[A, B, C] {
	return Triple[A, B, C]{First: c.a.Value(), Second: c.b.Value(), Third: c.c.Value()}
}

func (c CombineCursor3[A, B, C, CA, CB, CC]) Equal(oth CombineCursor3[A, B, C, CA, CB, CC]) bool {
	return c.a.Equal(oth.a) || c.b.Equal(oth.b) || c.c.Equal(oth.c)
}

// Combine3 zips three ranges together.
// The result is as long as the shortest input.
func Combine3[A, B, C any, CA Cursor[A, CA], CB Cursor[B, CB], CC Cursor[C, CC]](ra Range[A, CA], rb Range[B, CB], rc Range[C, CC]) Range[Triple[A, B, C], CombineCursor3[A, B, C, CA, CB, CC]] {
	return Range[Triple[A, B, C], CombineCursor3[A, B, C, CA, CB, CC]]{
		begin: CombineCursor3[A, B, C, CA, CB, CC]{a: ra.begin, b: rb.begin, c: rc.begin},
		end:   CombineCursor3[A, B, C, CA, CB, CC]{a: ra.end, b: rb.end, c: rc.end},
	}
}

// CombineCursorN advances any number of cursors of the same type in lock-step.
type CombineCursorN[T any, C Cursor[T, C]] struct {
	cs []C
}

func (c CombineCursorN[T, C]) Next() CombineCursorN[T, C] {
	next := make([]C, len(c.cs))
	for i, cur := range c.cs {
		next[i] = cur.Next()
	}
	return CombineCursorN[T, C]{cs: next}
}

func (c CombineCursorN[T, C]) Value() []T {
	vs := make([]T, len(c.cs))
	for i, cur := range c.cs {
		vs[i] = cur.Value()
	}
	return vs
}

func (c CombineCursorN[T, C]) Equal(oth CombineCursorN[T, C]) bool {
	for i := range c.cs {
		if c.cs[i].Equal(oth.cs[i]) {
			return true
		}
	}
	return false
}

// CombineN zips together ranges that share the same cursor type.
// Each produced slice holds one value from every range, in argument order.
func CombineN[T any, C Cursor[T, C]](rs ...Range[T, C]) Range[[]T, CombineCursorN[T, C]] {
	if len(rs) == 0 {
		panic(ErrNoRanges)
	}
	var (
		begins = make([]C, len(rs))
		ends   = make([]C, len(rs))
	)
	for i, r := range rs {
		begins[i] = r.begin
		ends[i] = r.end
	}
	return Range[[]T, CombineCursorN[T, C]]{
		begin: CombineCursorN[T, C]{cs: begins},
		end:   CombineCursorN[T, C]{cs: ends},
	}
}

// All2 turns a range of pairs into an iter.Seq2,
// which allows to unpack the pair in a for range statement.
func All2[A, B any, C Cursor[Pair[A, B], C]](r Range[Pair[A, B], C]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for c := r.begin; !c.Equal(r.end); c = c.Next() {
			if !yield(c.Value().Unpack()) {
				return
			}
		}
	}
}
