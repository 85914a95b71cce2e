package numeric

import "github.com/cockroachdb/apd/v3"

// Parse converts a decimal literal into a value of the target kind,
// applying the same fit rules as [Convert]. Integer and fractional
// literals are accepted, with or without an exponent.
//
// Text that is not a number at all, including empty strings and the
// "NaN"/"Infinity" spellings, fails with [ErrSyntax]; a well-formed number
// the target cannot hold fails with [ErrRange].
func Parse(text string, target Kind) (Value, error) {
	if !target.valid() {
		return Value{}, &ConversionError{Text: text, Target: target, cause: ErrUnsupported}
	}

	d, _, err := apd.NewFromString(text)
	if err != nil || d.Form != apd.Finite {
		return Value{}, &ConversionError{Text: text, Target: target, cause: ErrSyntax}
	}
	if target == BigDecimal {
		return Value{kind: BigDecimal, dec: d}, nil
	}

	return fromPivot(Value{kind: BigDecimal, dec: d}, d, target)
}
