package numeric

import "math"

// FitsInto reports whether v converts into the target kind without losing
// information, without building the converted value or an error. It agrees
// with [Convert] for every input: FitsInto returns true exactly when
// Convert succeeds.
//
// FitsInto panics on an Invalid or unknown kind, source or target. A bad
// kind tag is a wiring mistake at the call site, not a property of the
// data, and a boolean result must not conflate the two.
func FitsInto(v Value, target Kind) bool {
	if !target.valid() {
		panic("numeric: FitsInto target is " + target.String())
	}
	if !v.kind.valid() {
		panic("numeric: FitsInto source is " + v.kind.String())
	}
	if v.kind == target {
		return true
	}
	if v.kind.isFloat() && !isFinite(v.f) {
		return false
	}

	switch target {
	case Int8, Int16, Int32, Int64:
		return fitsInt(v, target)
	case Float32:
		return fitsFloat(v, 32)
	case Float64:
		return fitsFloat(v, 64)
	case BigInt:
		return fitsBigInt(v)
	default: // BigDecimal
		return true
	}
}

// fitsInt decides fit into the fixed-width integer kind k, one source kind
// at a time. Fixed-width and float sources stay allocation-free.
func fitsInt(v Value, k Kind) bool {
	switch v.kind {
	case Int8, Int16, Int32, Int64:
		return v.i >= intRange[k].lo && v.i <= intRange[k].hi
	case Float32, Float64:
		// The exclusive upper bound sidesteps float64(MaxInt64) rounding
		// up to 2^63.
		b := intFloatBound[k]
		return v.f == math.Trunc(v.f) && v.f >= -b && v.f < b
	case BigInt:
		return v.big.IsInt64() &&
			v.big.Int64() >= intRange[k].lo && v.big.Int64() <= intRange[k].hi
	default: // BigDecimal
		_, ok := intFromDecimal(v.dec, k)
		return ok
	}
}

// fitsFloat decides fit into the float kind of the given bit width. Every
// fixed-width integer is well inside even float32's finite range, so only
// float64 narrowing and the arbitrary-precision kinds need a real check.
func fitsFloat(v Value, bits int) bool {
	switch v.kind {
	case Int8, Int16, Int32, Int64:
		return true
	case Float32, Float64:
		if bits == 64 {
			return true
		}
		return !math.IsInf(float64(float32(v.f)), 0)
	default: // BigInt, BigDecimal
		_, ok := floatFromDecimal(pivot(v), bits)
		return ok
	}
}

func fitsBigInt(v Value) bool {
	switch v.kind {
	case Int8, Int16, Int32, Int64, BigInt:
		return true
	case Float32, Float64:
		return v.f == math.Trunc(v.f)
	default: // BigDecimal
		_, ok := bigIntFromDecimal(v.dec)
		return ok
	}
}
