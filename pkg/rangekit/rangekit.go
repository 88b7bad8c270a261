// Package rangekit provides lazily evaluated range views over existing containers.
//
// # Summary
//
// A Range is a pair of cursors, a begin and an end, that together describe a sequence of values
// without owning the data behind them.
// Adapters such as Step, Combine2, Enumerate, Keys or Transform wrap one or more ranges
// and change what is produced, while the source container stays untouched.
// Because every adapter introduces its own cursor type,
// AnyRange erases the concrete cursor chain and leaves only the produced value type,
// so a function can accept "any range of T" as a plain parameter.
//
// # Cursors are values
//
// A Cursor never mutates itself.
// Next returns the advanced cursor, which means copying a cursor or a Range
// never shares the iteration state between the copies.
//
// # Preconditions
//
// Calling Next or Value on a cursor that already equals its end is a programming error.
// Degenerate constructor inputs (zero stride, zero ranges to combine, negative bounds)
// are rejected with a panic at construction time.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package rangekit

import (
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Cursor is the protocol every range position implements.
//
// Next returns the cursor moved to the next logical position.
// Value returns the element at the current position.
// Equal reports whether the cursor reached the position of the other cursor,
// which is how the end of a range is detected.
type Cursor[T any, C any] interface {
	Next() C
	Value() T
	Equal(oth C) bool
}

// Range is a non-owning view over a sequence, described by a begin and an end cursor.
// Its validity is tied to the lifetime of the underlying container.
type Range[T any, C Cursor[T, C]] struct {
	begin C
	end   C
}

// Make creates a Range from a cursor pair.
func Make[T any, C Cursor[T, C]](begin, end C) Range[T, C] {
	return Range[T, C]{begin: begin, end: end}
}

// Begin returns the cursor of the first element.
func (r Range[T, C]) Begin() C { return r.begin }

// End returns the cursor one past the last element.
func (r Range[T, C]) End() C { return r.end }

// Empty reports whether the range has no element.
func (r Range[T, C]) Empty() bool { return r.begin.Equal(r.end) }

// All returns an iter.Seq that walks the range from begin to end.
// The returned sequence can be iterated multiple times.
func (r Range[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := r.begin; !c.Equal(r.end); c = c.Next() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Distance counts the steps between the begin and the end cursor of a range.
func Distance[T any, C Cursor[T, C]](r Range[T, C]) int {
	var n int
	for c := r.begin; !c.Equal(r.end); c = c.Next() {
		n++
	}
	return n
}

// Collect walks the range and returns its values in a slice.
func Collect[T any, C Cursor[T, C]](r Range[T, C]) []T {
	return iterkit.Collect(r.All())
}
