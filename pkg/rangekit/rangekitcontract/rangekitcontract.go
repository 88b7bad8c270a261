package rangekitcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/port/contract"

	"go.llib.dev/rangekit/pkg/rangekit"
)

// Subject is what a range contract is verified against.
// Expected holds the values the range must produce, in order.
type Subject[T any, C rangekit.Cursor[T, C]] struct {
	Range    rangekit.Range[T, C]
	Expected []T
}

// Range asserts the cursor protocol on a concrete range.
func Range[T any, C rangekit.Cursor[T, C]](mk contract.Make[Subject[T, C]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	s.Then("iterating the range yields the expected values in order", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		for c := sub.Range.Begin(); !c.Equal(sub.Range.End()); c = c.Next() {
			got = append(got, c.Value())
		}
		assert.Equal(t, len(sub.Expected), len(got))
		if 0 < len(sub.Expected) {
			assert.Equal(t, sub.Expected, got)
		}
	})

	s.Then("the distance between begin and end equals the number of expected values", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Expected), rangekit.Distance(sub.Range))
		assert.Equal(t, len(sub.Expected) == 0, sub.Range.Empty())
	})

	s.Then("the range can be walked multiple times", func(t *testcase.T) {
		sub := subject.Get(t)
		first := rangekit.Collect(sub.Range)
		second := rangekit.Collect(sub.Range)
		assert.Equal(t, first, second)
	})

	s.Then("advancing a copied cursor leaves the original in place", func(t *testcase.T) {
		sub := subject.Get(t)
		if sub.Range.Empty() {
			t.Skip("empty range has no cursor to advance")
		}
		og := sub.Range.Begin()
		_ = og.Next()
		assert.Equal(t, sub.Expected[0], og.Value())
		assert.False(t, og.Equal(sub.Range.End()))
	})

	s.Then("erasing the cursor type keeps the produced sequence", func(t *testcase.T) {
		sub := subject.Get(t)
		ar := rangekit.MakeAnyRange(sub.Range)
		var got []T
		for v := range ar.All() {
			got = append(got, v)
		}
		assert.Equal(t, len(sub.Expected), len(got))
		if 0 < len(sub.Expected) {
			assert.Equal(t, sub.Expected, got)
		}
	})

	s.Then("an early break stops the iteration", func(t *testcase.T) {
		sub := subject.Get(t)
		var n int
		for range sub.Range.All() {
			n++
			break
		}
		assert.True(t, n <= 1)
	})

	return s.AsSuite("range")
}
