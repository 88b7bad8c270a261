// Package showcase holds the demonstration scenarios of rangekit.
// Each scenario builds an adapter chain over a small container
// and compares what it produced with the expected result.
package showcase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/rangekit/pkg/rangekit"
)

// Scenario is a named demonstration of an adapter chain.
type Scenario struct {
	Name string
	Run  func() Result
}

// Result is the printable form of what a scenario produced and what it should have produced.
type Result struct {
	Got      string
	Expected string
}

func (r Result) OK() bool { return r.Got == r.Expected }

func result(got, expected any) Result {
	return Result{Got: fmt.Sprintf("%#v", got), Expected: fmt.Sprintf("%#v", expected)}
}

// Scenarios returns every scenario in their presentation order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "index_range", Run: indexRange},
		{Name: "step_range_exact_fit", Run: stepRangeExactFit},
		{Name: "step_range_with_remainder", Run: stepRangeWithRemainder},
		{Name: "step_range_large_step", Run: stepRangeLargeStep},
		{Name: "combine_range", Run: combineRange},
		{Name: "simple_enumerate", Run: simpleEnumerate},
		{Name: "modifying_enumerate", Run: modifyingEnumerate},
		{Name: "map_range_keys", Run: mapRangeKeys},
		{Name: "map_range_values", Run: mapRangeValues},
		{Name: "transform_range_int_as_string", Run: transformRangeIntAsString},
		{Name: "transform_range_modifying_int_through_pair", Run: transformRangeModifyingInt},
		{Name: "any_range", Run: anyRange},
	}
}

// Lookup finds a scenario by its name.
func Lookup(name string) (Scenario, bool) {
	for _, sc := range Scenarios() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

func concat(r rangekit.AnyRange[string]) string {
	return iterkit.Reduce1(r.All(), "", func(acc string, s string) string {
		return acc + s
	})
}

func indexRange() Result {
	var got string
	for i := range rangekit.N(10).All() {
		got += strconv.Itoa(i)
	}
	return result(got, "0123456789")
}

func stepped(vs []int, stride int) []int {
	return rangekit.Collect(rangekit.Step(rangekit.Slice(vs), stride))
}

func stepRangeExactFit() Result {
	return result(stepped([]int{0, 1, 2, 3, 4}, 2), []int{0, 2, 4})
}

func stepRangeWithRemainder() Result {
	return result(stepped([]int{0, 1, 2, 3, 4, 5}, 2), []int{0, 2, 4})
}

func stepRangeLargeStep() Result {
	return result(stepped([]int{0, 1, 2, 3, 4, 5}, 4), []int{0, 4})
}

func combineRange() Result {
	var (
		ints    = []int{1, 2, 3}
		strs    = []string{"a", "b", "c"}
		got     []string
		combine = rangekit.Combine2(rangekit.Slice(ints), rangekit.Slice(strs))
	)
	for i, s := range rangekit.All2(combine) {
		got = append(got, strconv.Itoa(i)+" : "+s)
	}
	return result(got, []string{"1 : a", "2 : b", "3 : c"})
}

func simpleEnumerate() Result {
	input := []string{"zero", "one", "two"}
	var got []string
	for i, s := range rangekit.All2(rangekit.Enumerate(rangekit.Slice(input))) {
		got = append(got, strconv.Itoa(i)+" : "+s)
	}
	return result(got, []string{"0 : zero", "1 : one", "2 : two"})
}

func modifyingEnumerate() Result {
	input := []string{"zero", "one", "two"}
	for i, s := range rangekit.All2(rangekit.Enumerate(rangekit.SliceRef(input))) {
		*s = strconv.Itoa(i) + " : " + *s
	}
	return result(input, []string{"0 : zero", "1 : one", "2 : two"})
}

func numbers() *treemap.Map {
	m := treemap.NewWithIntComparator()
	m.Put(1, "one")
	m.Put(2, "two")
	m.Put(3, "three")
	return m
}

func mapRangeKeys() Result {
	return result(rangekit.Collect(rangekit.TreeKeys[int, string](numbers())), []int{1, 2, 3})
}

func mapRangeValues() Result {
	return result(rangekit.Collect(rangekit.TreeValues[int, string](numbers())), []string{"one", "two", "three"})
}

func transformRangeIntAsString() Result {
	transformed := rangekit.Transform(rangekit.N(10), strconv.Itoa)
	var got strings.Builder
	for s := range transformed.All() {
		got.WriteString(s)
	}
	return result(got.String(), "0123456789")
}

func transformRangeModifyingInt() Result {
	vs := []int{1, 2, 3}
	transformed := rangekit.Transform(rangekit.SliceRef(vs), func(p *int) rangekit.Pair[*int, int] {
		return rangekit.Pair[*int, int]{First: p, Second: 3}
	})
	for p := range transformed.All() {
		ref, dummy := p.Unpack()
		*ref += 1
		if dummy != 3 {
			return result(dummy, 3)
		}
	}
	return result(vs, []int{2, 3, 4})
}

func anyRange() Result {
	transformed := rangekit.Transform(rangekit.N(10), strconv.Itoa)
	return result(concat(rangekit.MakeAnyRange(transformed)), "0123456789")
}
