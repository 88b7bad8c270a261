package rangekit

import "golang.org/x/exp/constraints"

// IndexCursor walks an arithmetic sequence of integers.
type IndexCursor[I constraints.Integer] struct {
	i I
}

func (c IndexCursor[I]) Next() IndexCursor[I] { return IndexCursor[I]{i: c.i + 1} }

func (c IndexCursor[I]) Value() I { return c.i }

func (c IndexCursor[I]) Equal(oth IndexCursor[I]) bool { return c.i == oth.i }

// N returns the index range of [0, n).
func N[I constraints.Integer](n I) Range[I, IndexCursor[I]] {
	return Between(0, n)
}

// Between returns the index range of [begin, end).
func Between[I constraints.Integer](begin, end I) Range[I, IndexCursor[I]] {
	if end < begin {
		panic(ErrNegativeBound.F("end (%d) is before begin (%d)", end, begin))
	}
	return Range[I, IndexCursor[I]]{
		begin: IndexCursor[I]{i: begin},
		end:   IndexCursor[I]{i: end},
	}
}

// Indices returns the range of valid positions in a slice.
func Indices[T any](vs []T) Range[int, IndexCursor[int]] {
	return N(len(vs))
}
