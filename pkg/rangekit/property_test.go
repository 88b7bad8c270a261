package rangekit_test

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"go.llib.dev/rangekit/pkg/rangekit"
)

func TestProperty_N(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 256).Draw(t, "n")
		got := rangekit.Collect(rangekit.N(n))
		if len(got) != n {
			t.Fatalf("expected %d values, got %d", n, len(got))
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("expected %d at position %d, got %d", i, i, v)
			}
		}
	})
}

func TestProperty_Step(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOf(rapid.Int()).Draw(t, "base")
		stride := rapid.IntRange(1, 16).Draw(t, "stride")

		got := rangekit.Collect(rangekit.Step(rangekit.Slice(vs), stride))

		expLen := (len(vs) + stride - 1) / stride
		if len(got) != expLen {
			t.Fatalf("expected ceil(%d/%d)=%d values, got %d", len(vs), stride, expLen, len(got))
		}
		for i, v := range got {
			if v != vs[i*stride] {
				t.Fatalf("expected the value from position %d", i*stride)
			}
		}
	})
}

func TestProperty_Combine2(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		as := rapid.SliceOf(rapid.Int()).Draw(t, "as")
		bs := rapid.SliceOf(rapid.String()).Draw(t, "bs")

		got := rangekit.Collect(rangekit.Combine2(rangekit.Slice(as), rangekit.Slice(bs)))

		if exp := min(len(as), len(bs)); len(got) != exp {
			t.Fatalf("expected %d pairs, got %d", exp, len(got))
		}
		for i, p := range got {
			if p.First != as[i] || p.Second != bs[i] {
				t.Fatalf("pair %d does not match the inputs", i)
			}
		}
	})
}

func TestProperty_Enumerate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOf(rapid.String()).Draw(t, "vs")

		got := rangekit.Collect(rangekit.Enumerate(rangekit.Slice(vs)))

		if len(got) != len(vs) {
			t.Fatalf("expected %d pairs, got %d", len(vs), len(got))
		}
		for i, p := range got {
			if p.First != i || p.Second != vs[i] {
				t.Fatalf("pair %d is (%d, %q)", i, p.First, p.Second)
			}
		}
	})
}

func TestProperty_MakeAnyRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOf(rapid.Int()).Draw(t, "vs")
		stride := rapid.IntRange(1, 4).Draw(t, "stride")
		src := rangekit.Step(rangekit.Slice(vs), stride)
		exp := rangekit.Collect(src)

		ar := rangekit.MakeAnyRange(src)
		if got := rangekit.Collect(ar.Range); !slices.Equal(exp, got) {
			t.Fatalf("erased range yields %v, expected %v", got, exp)
		}

		advance := rapid.IntRange(0, len(exp)).Draw(t, "advance")
		it := ar.Begin()
		for i := 0; i < advance; i++ {
			it = it.Next()
		}
		cp := ar
		if got := rangekit.Collect(cp.Range); !slices.Equal(exp, got) {
			t.Fatalf("copy after partial advancement yields %v, expected %v", got, exp)
		}
		if got := rangekit.Collect(ar.Clone().Range); !slices.Equal(exp, got) {
			t.Fatalf("clone yields %v, expected %v", got, exp)
		}
		if advance < len(exp) && it.Value() != exp[advance] {
			t.Fatalf("advanced cursor moved by iterating a copy")
		}
	})
}
