package rangekit

// Enumerate pairs every element of r with its position.
// The index range is sized to the length of r up front,
// so the result always has exactly as many elements as r.
func Enumerate[T any, C Cursor[T, C]](r Range[T, C]) Range[Pair[int, T], CombineCursor2[int, T, IndexCursor[int], C]] {
	return Combine2(N(Distance(r)), r)
}
