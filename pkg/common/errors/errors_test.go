package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidState", ErrInvalidState, "invalid enumerator state"},
		{"ErrOutOfRange", ErrOutOfRange, "argument out of range"},
		{"ErrNotFound", ErrNotFound, "key not found"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StateError
		want string
	}{
		{
			name: "empty sequence",
			err: &StateError{
				Module:    "query",
				Operation: "First",
				Reason:    "sequence contains no elements",
			},
			want: "query.First: sequence contains no elements",
		},
		{
			name: "protocol violation",
			err: &StateError{
				Module:    "query",
				Operation: "Current",
				Reason:    "no current element",
			},
			want: "query.Current: no current element",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateError_Unwrap(t *testing.T) {
	serr := NewStateError("query", "Single", "sequence contains more than one element")

	if serr.Unwrap() != ErrInvalidState {
		t.Errorf("Unwrap() = %v, want ErrInvalidState", serr.Unwrap())
	}

	if !errors.Is(serr, ErrInvalidState) {
		t.Error("StateError should wrap ErrInvalidState")
	}
}

func TestRangeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *RangeError
		want string
	}{
		{
			name: "without hint",
			err: &RangeError{
				Module: "query",
				Field:  "count",
				Value:  -1,
				Reason: "cannot be negative",
			},
			want: "query: invalid count=-1 (cannot be negative)",
		},
		{
			name: "with hint",
			err: &RangeError{
				Module: "query",
				Field:  "index",
				Value:  5,
				Reason: "no element at this position",
				Hint:   "sequence has fewer elements",
			},
			want: "query: invalid index=5 (no element at this position) - sequence has fewer elements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRangeError_Unwrap(t *testing.T) {
	rerr := NewRangeError("query", "count", -3, "cannot be negative")

	if rerr.Unwrap() != ErrOutOfRange {
		t.Errorf("Unwrap() = %v, want ErrOutOfRange", rerr.Unwrap())
	}

	if !errors.Is(rerr, ErrOutOfRange) {
		t.Error("RangeError should wrap ErrOutOfRange")
	}
}

func TestRangeError_WithHint(t *testing.T) {
	err := NewRangeError("query", "count", -1, "cannot be negative").
		WithHint("use 0 or a positive count")

	if err.Hint != "use 0 or a positive count" {
		t.Errorf("Hint = %q, want %q", err.Hint, "use 0 or a positive count")
	}

	// Should return same instance for chaining
	result := err.WithHint("new hint")
	if result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("query", "selector", nil, "cannot be nil")

	if err.Module != "query" {
		t.Errorf("Module = %q, want %q", err.Module, "query")
	}
	if err.Field != "selector" {
		t.Errorf("Field = %q, want %q", err.Field, "selector")
	}
	if err.Value != nil {
		t.Errorf("Value = %v, want nil", err.Value)
	}
	if err.Reason != "cannot be nil" {
		t.Errorf("Reason = %q, want %q", err.Reason, "cannot be nil")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := NewValidationError("query", "comparer", nil, "cannot be nil")

	if verr.Unwrap() != ErrInvalidConfiguration {
		t.Errorf("Unwrap() = %v, want ErrInvalidConfiguration", verr.Unwrap())
	}

	if !errors.Is(verr, ErrInvalidConfiguration) {
		t.Error("ValidationError should wrap ErrInvalidConfiguration")
	}
}

func TestIsInvalidState(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"state error", NewStateError("query", "Last", "sequence contains no elements"), true},
		{"bare sentinel", ErrInvalidState, true},
		{"range error", NewRangeError("query", "index", 9, "no element at this position"), false},
		{"random error", errors.New("random"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalidState(tt.err); got != tt.want {
				t.Errorf("IsInvalidState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"range error", NewRangeError("query", "count", -1, "cannot be negative"), true},
		{"bare sentinel", ErrOutOfRange, true},
		{"state error", NewStateError("query", "Single", "ambiguous match"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOutOfRange(tt.err); got != tt.want {
				t.Errorf("IsOutOfRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation error", NewValidationError("query", "selector", nil, "cannot be nil"), true},
		{"state error", NewStateError("query", "First", "empty"), false},
		{"standard error", errors.New("test"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("RangeError message components", func(t *testing.T) {
		err := NewRangeError("query", "index", 42, "no element at this position").
			WithHint("sequence has 3 elements")

		msg := err.Error()

		expectedParts := []string{"query", "index", "42", "no element at this position", "sequence has 3 elements"}
		for _, part := range expectedParts {
			if !strings.Contains(msg, part) {
				t.Errorf("error message should contain %q, got %q", part, msg)
			}
		}
	})

	t.Run("StateError message components", func(t *testing.T) {
		err := NewStateError("query", "Single", "sequence contains more than one element")

		msg := err.Error()

		expectedParts := []string{"query", "Single", "more than one element"}
		for _, part := range expectedParts {
			if !strings.Contains(msg, part) {
				t.Errorf("error message should contain %q, got %q", part, msg)
			}
		}
	})
}
