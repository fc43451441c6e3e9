package query

import (
	"strings"
	"testing"

	"github.com/vnykmshr/goseq/internal/testutil"
	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
)

func TestCountWhere(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})

	testutil.AssertEqual(t, s.CountWhere(func(x int) bool { return x > 2 }), 3)
	testutil.AssertEqual(t, s.CountWhere(func(x int) bool { return x > 9 }), 0)
}

func TestAny(t *testing.T) {
	testutil.AssertEqual(t, FromSlice([]int{1}).Any(), true)
	testutil.AssertEqual(t, Empty[int]().Any(), false)
}

func TestAnyWhere(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})

	testutil.AssertEqual(t, s.AnyWhere(func(x int) bool { return x == 2 }), true)
	testutil.AssertEqual(t, s.AnyWhere(func(x int) bool { return x == 9 }), false)
}

func TestAnyStopsEarly(t *testing.T) {
	calls := 0
	source := Generate(func(i int) (int, bool) {
		calls++
		return i, true // unbounded
	})

	testutil.AssertEqual(t, source.Any(), true)
	testutil.AssertEqual(t, calls, 1)
}

func TestAll(t *testing.T) {
	s := FromSlice([]int{2, 4, 6})

	testutil.AssertEqual(t, s.All(func(x int) bool { return x%2 == 0 }), true)
	testutil.AssertEqual(t, s.All(func(x int) bool { return x < 6 }), false)

	// Vacuously true on an empty sequence.
	testutil.AssertEqual(t, Empty[int]().All(func(int) bool { return false }), true)
}

func TestFirst(t *testing.T) {
	v, err := FromSlice([]int{7, 8}).First()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 7)
}

func TestFirstEmpty(t *testing.T) {
	_, err := Empty[int]().First()
	testutil.AssertError(t, err)
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestFirstWhere(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3, 4}).FirstWhere(func(x int) bool { return x > 2 })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 3)

	_, err = FromSlice([]int{1, 2}).FirstWhere(func(x int) bool { return x > 9 })
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestFirstOrDefault(t *testing.T) {
	testutil.AssertEqual(t, FromSlice([]int{5}).FirstOrDefault(-1), 5)
	testutil.AssertEqual(t, Empty[int]().FirstOrDefault(-1), -1)
}

func TestFirstWhereOrDefault(t *testing.T) {
	s := FromSlice([]string{"a", "bb", "ccc"})

	long := func(v string) bool { return len(v) > 2 }
	testutil.AssertEqual(t, s.FirstWhereOrDefault(long, "none"), "ccc")

	huge := func(v string) bool { return len(v) > 9 }
	testutil.AssertEqual(t, s.FirstWhereOrDefault(huge, "none"), "none")
}

func TestLast(t *testing.T) {
	v, err := FromSlice([]int{7, 8, 9}).Last()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 9)

	_, err = Empty[int]().Last()
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestLastWhere(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3, 4}).LastWhere(func(x int) bool { return x < 4 })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 3)

	_, err = FromSlice([]int{1}).LastWhere(func(x int) bool { return x > 9 })
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestLastOrDefault(t *testing.T) {
	testutil.AssertEqual(t, FromSlice([]int{1, 2}).LastOrDefault(-1), 2)
	testutil.AssertEqual(t, Empty[int]().LastOrDefault(-1), -1)
}

func TestSingle(t *testing.T) {
	v, err := Of(42).Single()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 42)
}

func TestSingleEmpty(t *testing.T) {
	_, err := Empty[int]().Single()
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestSingleAmbiguous(t *testing.T) {
	_, err := FromSlice([]int{1, 2}).Single()
	testutil.AssertError(t, err)
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
	testutil.AssertTrue(t, strings.Contains(err.Error(), "more than one"),
		"error should name the ambiguity")
}

func TestSingleWhere(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3}).SingleWhere(func(x int) bool { return x == 2 })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 2)

	_, err = FromSlice([]int{1, 2, 3}).SingleWhere(func(x int) bool { return x > 1 })
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestSingleOrDefault(t *testing.T) {
	v, err := Empty[int]().SingleOrDefault(-1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, -1)

	v, err = Of(3).SingleOrDefault(-1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 3)

	// Emptiness is tolerated; ambiguity is not.
	_, err = FromSlice([]int{1, 2}).SingleOrDefault(-1)
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestSingleWhereOrDefault(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})

	v, err := s.SingleWhereOrDefault(func(x int) bool { return x > 9 }, -1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, -1)

	_, err = s.SingleWhereOrDefault(func(x int) bool { return x > 1 }, -1)
	testutil.AssertErrorIs(t, err, gserrors.ErrInvalidState)
}

func TestElementAt(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})

	v, err := s.ElementAt(1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, "b")
}

func TestElementAtOutOfRange(t *testing.T) {
	s := FromSlice([]string{"a"})

	_, err := s.ElementAt(5)
	testutil.AssertErrorIs(t, err, gserrors.ErrOutOfRange)

	_, err = s.ElementAt(-1)
	testutil.AssertErrorIs(t, err, gserrors.ErrOutOfRange)
}

func TestElementAtOrDefault(t *testing.T) {
	s := FromSlice([]string{"a", "b"})

	testutil.AssertEqual(t, s.ElementAtOrDefault(0, "X"), "a")
	testutil.AssertEqual(t, s.ElementAtOrDefault(5, "X"), "X")
	testutil.AssertEqual(t, s.ElementAtOrDefault(-1, "X"), "X")
}

func TestAggregate(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})

	product := Aggregate(s, 1, func(acc, v int) int { return acc * v })
	testutil.AssertEqual(t, product, 24)

	joined := Aggregate(FromSlice([]string{"a", "b", "c"}), "", func(acc, v string) string {
		if acc == "" {
			return v
		}
		return acc + "-" + v
	})
	testutil.AssertEqual(t, joined, "a-b-c")
}

func TestAggregateEmptyReturnsSeed(t *testing.T) {
	got := Aggregate(Empty[int](), 10, func(acc, v int) int { return acc + v })
	testutil.AssertEqual(t, got, 10)
}
