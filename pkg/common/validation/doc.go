/*
Package validation provides shared argument validation helpers used by goseq
constructors and factory functions.

Helpers return structured errors from pkg/common/errors: nil or empty
arguments produce a ValidationError (wrapping ErrInvalidConfiguration), and
out-of-range counts produce a RangeError (wrapping ErrOutOfRange), so callers
can branch on the error class with errors.Is.

Example:

	if err := validation.ValidateCount("query", "count", count); err != nil {
		return Sequence[int]{}, err
	}
*/
package validation
