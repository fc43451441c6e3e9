package testutil

import (
	"errors"
	"testing"
)

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "hello", "hello")
}

func TestAssertSliceEqual(t *testing.T) {
	AssertSliceEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertSliceEqual(t, []string{}, nil)
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("boom"))
}

func TestAssertErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	wrapped := errors.Join(errors.New("outer"), sentinel)
	AssertErrorIs(t, wrapped, sentinel)
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(t)
	defer cancel()

	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("context should have a deadline")
	}
}
