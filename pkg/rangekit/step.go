package rangekit

// StepCursor advances its base cursor by a fixed stride,
// but never beyond the end of the base range.
type StepCursor[T any, C Cursor[T, C]] struct {
	cur    C
	end    C
	stride int
}

func (c StepCursor[T, C]) Next() StepCursor[T, C] {
	cur := c.cur
	for i := 0; i < c.stride && !cur.Equal(c.end); i++ {
		cur = cur.Next()
	}
	return StepCursor[T, C]{cur: cur, end: c.end, stride: c.stride}
}

func (c StepCursor[T, C]) Value() T { return c.cur.Value() }

func (c StepCursor[T, C]) Equal(oth StepCursor[T, C]) bool { return c.cur.Equal(oth.cur) }

// Step yields every stride-th element of r, starting with the first one.
// A range of length n produces ceil(n/stride) elements.
func Step[T any, C Cursor[T, C]](r Range[T, C], stride int) Range[T, StepCursor[T, C]] {
	if stride < 1 {
		panic(ErrInvalidStride.F("stride must be at least 1, got %d", stride))
	}
	return Range[T, StepCursor[T, C]]{
		begin: StepCursor[T, C]{cur: r.begin, end: r.end, stride: stride},
		end:   StepCursor[T, C]{cur: r.end, end: r.end, stride: stride},
	}
}
