package numeric

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Convert returns v as a value of the target kind, or a [*ConversionError]
// when the target cannot represent v exactly.
//
// Identity conversions return v unchanged without any precision analysis,
// so even a NaN converts to its own kind. Everything else pivots through
// the exact decimal form of v: integer and arbitrary-precision targets
// reject any rounding or range violation, while floating-point targets
// round freely and fail only when the nearest representable value of a
// finite source is infinite.
func Convert(v Value, target Kind) (Value, error) {
	if !target.valid() || !v.kind.valid() {
		return Value{}, &ConversionError{Value: v, Target: target, cause: ErrUnsupported}
	}
	if v.kind == target {
		return v, nil
	}
	if v.kind.isFloat() && !isFinite(v.f) {
		return Value{}, &ConversionError{Value: v, Target: target, cause: ErrNotFinite}
	}

	return fromPivot(v, pivot(v), target)
}

// fromPivot performs the pivot-to-target hop. src is only used to report
// failures; d must be owned by the caller and is adopted into the result
// for the BigDecimal target.
func fromPivot(src Value, d *apd.Decimal, target Kind) (Value, error) {
	switch target {
	case Int8, Int16, Int32, Int64:
		i, ok := intFromDecimal(d, target)
		if !ok {
			return Value{}, rangeErr(src, target)
		}
		return Value{kind: target, i: i}, nil
	case Float32:
		f, ok := floatFromDecimal(d, 32)
		if !ok {
			return Value{}, rangeErr(src, target)
		}
		return Value{kind: Float32, f: f}, nil
	case Float64:
		f, ok := floatFromDecimal(d, 64)
		if !ok {
			return Value{}, rangeErr(src, target)
		}
		return Value{kind: Float64, f: f}, nil
	case BigInt:
		b, ok := bigIntFromDecimal(d)
		if !ok {
			return Value{}, rangeErr(src, target)
		}
		return Value{kind: BigInt, big: b}, nil
	case BigDecimal:
		return Value{kind: BigDecimal, dec: d}, nil
	default:
		return Value{}, &ConversionError{Value: src, Target: target, cause: ErrUnsupported}
	}
}

// intFromDecimal extracts d as an integer of the fixed-width kind k,
// reporting false when d has a fractional part or is out of range. The
// magnitude screen against intRangeDec keeps the exact extraction from
// materializing absurd powers of ten for huge exponents.
func intFromDecimal(d *apd.Decimal, k Kind) (int64, bool) {
	if d.Cmp(intRangeDec[k].lo) < 0 || d.Cmp(intRangeDec[k].hi) > 0 {
		return 0, false
	}

	b, ok := bigIntFromDecimal(d)
	if !ok || !b.IsInt64() {
		return 0, false
	}

	return b.Int64(), true
}

// bigIntFromDecimal extracts d as an arbitrary-precision integer, reporting
// false when d has a nonzero fractional part.
func bigIntFromDecimal(d *apd.Decimal) (*big.Int, bool) {
	if d.Form != apd.Finite {
		return nil, false
	}
	// All digits fractional and nonzero means |d| < 1.
	if d.Exponent < 0 && d.NumDigits() <= -int64(d.Exponent) && d.Sign() != 0 {
		return nil, false
	}

	n := new(big.Int).Set(d.Coeff.MathBigInt())
	switch {
	case d.Exponent > 0:
		n.Mul(n, pow10(int64(d.Exponent)))
	case d.Exponent < 0:
		r := new(big.Int)
		n.QuoRem(n, pow10(-int64(d.Exponent)), r)
		if r.Sign() != 0 {
			return nil, false
		}
	}
	if d.Negative {
		n.Neg(n)
	}

	return n, true
}

// floatFromDecimal rounds d to the nearest float of the given bit width,
// reporting false only on overflow to an infinity. Rounding straight from
// the decimal text keeps float32 results correctly rounded instead of
// double-rounded through float64.
func floatFromDecimal(d *apd.Decimal, bits int) (float64, bool) {
	f, _ := strconv.ParseFloat(d.String(), bits)
	if math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func pow10(e int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
