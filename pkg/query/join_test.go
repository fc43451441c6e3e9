package query

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vnykmshr/goseq/internal/testutil"
)

type customer struct {
	id   int
	name string
}

type order struct {
	customerID int
	item       string
}

func TestJoin(t *testing.T) {
	customers := []customer{{1, "alice"}, {2, "bob"}}
	orders := []order{
		{1, "a"},
		{1, "b"},
		{3, "c"},
	}

	pairs := Join(
		FromSlice(customers),
		FromSlice(orders),
		func(c customer) int { return c.id },
		func(o order) int { return o.customerID },
		func(c customer, o order) string { return fmt.Sprintf("%d:%s", c.id, o.item) },
	)

	// Inner join: unmatched customers and orders produce nothing.
	testutil.AssertSliceEqual(t, pairs.ToSlice(), []string{"1:a", "1:b"})
}

func TestJoinPreservesOuterOrder(t *testing.T) {
	outer := FromSlice([]int{3, 1, 2})
	inner := FromSlice([]int{1, 2, 3, 1})

	pairs := Join(outer, inner,
		func(x int) int { return x },
		func(x int) int { return x },
		func(o, i int) int { return o*10 + i },
	)

	testutil.AssertSliceEqual(t, pairs.ToSlice(), []int{33, 11, 11, 22})
}

func TestJoinFunc(t *testing.T) {
	outer := FromSlice([]string{"Go", "Rust"})
	inner := FromSlice([]string{"GO", "go"})

	pairs := JoinFunc(outer, inner,
		func(s string) string { return s },
		func(s string) string { return s },
		func(o, i string) string { return o + "/" + i },
		strings.EqualFold,
	)

	testutil.AssertSliceEqual(t, pairs.ToSlice(), []string{"Go/GO", "Go/go"})
}

func TestJoinEmptyInner(t *testing.T) {
	pairs := Join(
		FromSlice([]int{1, 2}),
		Empty[int](),
		func(x int) int { return x },
		func(x int) int { return x },
		func(o, i int) int { return o + i },
	)

	testutil.AssertEqual(t, pairs.Count(), 0)
}

func TestJoinReset(t *testing.T) {
	e := Join(
		FromSlice([]int{1, 2}),
		FromSlice([]int{2, 2}),
		func(x int) int { return x },
		func(x int) int { return x },
		func(o, i int) int { return o * i },
	).Enumerator()

	first := drain(e)
	e.Reset()
	second := drain(e)

	testutil.AssertSliceEqual(t, first, second)
	testutil.AssertSliceEqual(t, first, []int{4, 4})
}

func TestGroupJoin(t *testing.T) {
	customers := []customer{{1, "alice"}, {2, "bob"}}
	orders := []order{
		{1, "a"},
		{1, "b"},
		{3, "c"},
	}

	results := GroupJoin(
		FromSlice(customers),
		FromSlice(orders),
		func(c customer) int { return c.id },
		func(o order) int { return o.customerID },
		func(c customer, matched Sequence[order]) string {
			items := Select(matched, func(o order) string { return o.item })
			return fmt.Sprintf("%s=[%s]", c.name, strings.Join(items.ToSlice(), ","))
		},
	)

	// Every outer element appears once, matched or not.
	testutil.AssertSliceEqual(t, results.ToSlice(), []string{"alice=[a,b]", "bob=[]"})
}

func TestGroupJoinFunc(t *testing.T) {
	outer := FromSlice([]string{"a", "b"})
	inner := FromSlice([]string{"A", "A", "C"})

	results := GroupJoinFunc(outer, inner,
		func(s string) string { return s },
		func(s string) string { return s },
		func(o string, matched Sequence[string]) int { return matched.Count() },
		strings.EqualFold,
	)

	testutil.AssertSliceEqual(t, results.ToSlice(), []int{2, 0})
}

func TestJoinBuildsLookupLazily(t *testing.T) {
	calls := 0
	inner := Generate(func(i int) (int, bool) {
		calls++
		return i, i < 3
	})

	pairs := Join(
		FromSlice([]int{0, 1}),
		inner,
		func(x int) int { return x },
		func(x int) int { return x },
		func(o, i int) int { return o },
	)

	e := pairs.Enumerator()
	testutil.AssertEqual(t, calls, 0)

	testutil.AssertEqual(t, e.MoveNext(), true)
	testutil.AssertTrue(t, calls > 0, "lookup table should be built on first MoveNext")
}
