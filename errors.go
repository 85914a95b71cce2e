package numeric

import (
	"errors"
	"fmt"
)

// ErrRange indicates that a value does not fit the target kind: its
// magnitude exceeds the target's representable range, or an integer target
// would require dropping a fractional part.
//
// It is wrapped by the [*ConversionError] returned from failed conversions.
var ErrRange = errors.New("value out of range for target kind")

// ErrSyntax indicates that a string is not a numeric literal at all, as
// opposed to a well-formed number that is out of range.
//
// It is wrapped by [*ConversionError] values returned from Parse.
var ErrSyntax = errors.New("invalid numeric syntax")

// ErrUnsupported indicates a source or target kind with no conversion path,
// such as the zero Value or an out-of-range Kind tag. It signals a wiring
// mistake at the call site, never out-of-range data.
var ErrUnsupported = errors.New("unsupported numeric kind")

// ErrNotFinite indicates a NaN or infinite floating-point source, which has
// no arbitrary-precision decimal equivalent and therefore no conversion to
// any other kind.
var ErrNotFinite = errors.New("not a finite number")

// ConversionError describes a failed conversion or parse: the source value
// (or text), the requested target kind, and the failure category, which it
// exposes through Unwrap for errors.Is against the sentinel errors above.
type ConversionError struct {
	Value  Value  // source value; the zero Value when parsing failed before one existed
	Text   string // original input of a failed parse
	Target Kind
	cause  error
}

func (e *ConversionError) Error() string {
	switch e.cause {
	case ErrSyntax:
		return fmt.Sprintf("numeric: cannot parse %q as %s", e.Text, e.Target)
	case ErrNotFinite:
		return fmt.Sprintf("numeric: %s value %s is not finite", e.Value.Kind(), e.Value)
	case ErrUnsupported:
		return fmt.Sprintf("numeric: no conversion from %s to %s", e.Value.Kind(), e.Target)
	default:
		return fmt.Sprintf("numeric: %s does not fit into %s", e.Value, e.Target)
	}
}

func (e *ConversionError) Unwrap() error { return e.cause }

func rangeErr(v Value, target Kind) *ConversionError {
	return &ConversionError{Value: v, Target: target, cause: ErrRange}
}
