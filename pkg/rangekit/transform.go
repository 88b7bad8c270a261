package rangekit

// TransformCursor applies a projection to the value of its base cursor.
type TransformCursor[In, Out any, C Cursor[In, C]] struct {
	cur C
	fn  func(In) Out
}

func (c TransformCursor[In, Out, C]) Next() TransformCursor[In, Out, C] {
	return TransformCursor[In, Out, C]{cur: c.cur.Next(), fn: c.fn}
}

// Value calls the projection on every call, the result is not cached.
func (c TransformCursor[In, Out, C]) Value() Out { return c.fn(c.cur.Value()) }

func (c TransformCursor[In, Out, C]) Equal(oth TransformCursor[In, Out, C]) bool {
	return c.cur.Equal(oth.cur)
}

// Transform lazily maps each element of r with fn.
//
// When fn returns a pointer, or a value that holds one, into the source element,
// then writing through the result changes the source container.
func Transform[In, Out any, C Cursor[In, C]](r Range[In, C], fn func(In) Out) Range[Out, TransformCursor[In, Out, C]] {
	return Range[Out, TransformCursor[In, Out, C]]{
		begin: TransformCursor[In, Out, C]{cur: r.begin, fn: fn},
		end:   TransformCursor[In, Out, C]{cur: r.end, fn: fn},
	}
}
