package numeric

import (
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Value is an immutable numeric value tagged with its Kind. The zero Value
// has Kind Invalid and converts to nothing.
//
// Fixed-width integers share the i field, both float widths share f (a
// float32 stored as a float64 is exact), and the arbitrary-precision kinds
// own a private copy of their backing storage.
type Value struct {
	kind Kind
	i    int64
	f    float64
	big  *big.Int
	dec  *apd.Decimal
}

// NewInt8 returns v as a Value of kind Int8.
func NewInt8(v int8) Value { return Value{kind: Int8, i: int64(v)} }

// NewInt16 returns v as a Value of kind Int16.
func NewInt16(v int16) Value { return Value{kind: Int16, i: int64(v)} }

// NewInt32 returns v as a Value of kind Int32.
func NewInt32(v int32) Value { return Value{kind: Int32, i: int64(v)} }

// NewInt64 returns v as a Value of kind Int64.
func NewInt64(v int64) Value { return Value{kind: Int64, i: v} }

// NewFloat32 returns v as a Value of kind Float32.
func NewFloat32(v float32) Value { return Value{kind: Float32, f: float64(v)} }

// NewFloat64 returns v as a Value of kind Float64.
func NewFloat64(v float64) Value { return Value{kind: Float64, f: v} }

// NewBigInt returns a Value of kind BigInt holding a copy of v. Mutating v
// afterwards does not affect the Value.
func NewBigInt(v *big.Int) Value {
	return Value{kind: BigInt, big: new(big.Int).Set(v)}
}

// NewBigDecimal returns a Value of kind BigDecimal holding a copy of v.
// Mutating v afterwards does not affect the Value.
func NewBigDecimal(v *apd.Decimal) Value {
	return Value{kind: BigDecimal, dec: new(apd.Decimal).Set(v)}
}

// Kind reports the kind tag of v.
func (v Value) Kind() Kind { return v.kind }

// Int8 returns the value of a Kind Int8 Value. It panics for any other kind;
// use Convert first to narrow or widen.
func (v Value) Int8() int8 { v.mustBe(Int8); return int8(v.i) }

// Int16 returns the value of a Kind Int16 Value, panicking for other kinds.
func (v Value) Int16() int16 { v.mustBe(Int16); return int16(v.i) }

// Int32 returns the value of a Kind Int32 Value, panicking for other kinds.
func (v Value) Int32() int32 { v.mustBe(Int32); return int32(v.i) }

// Int64 returns the value of a Kind Int64 Value, panicking for other kinds.
func (v Value) Int64() int64 { v.mustBe(Int64); return v.i }

// Float32 returns the value of a Kind Float32 Value, panicking for other kinds.
func (v Value) Float32() float32 { v.mustBe(Float32); return float32(v.f) }

// Float64 returns the value of a Kind Float64 Value, panicking for other kinds.
func (v Value) Float64() float64 { v.mustBe(Float64); return v.f }

// BigInt returns a copy of the value of a Kind BigInt Value, panicking for
// other kinds.
func (v Value) BigInt() *big.Int { v.mustBe(BigInt); return new(big.Int).Set(v.big) }

// BigDecimal returns a copy of the value of a Kind BigDecimal Value,
// panicking for other kinds.
func (v Value) BigDecimal() *apd.Decimal { v.mustBe(BigDecimal); return new(apd.Decimal).Set(v.dec) }

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic("numeric: Value is " + v.kind.String() + ", not " + k.String())
	}
}

// String renders the value as a decimal literal. Floats use the shortest
// round-trip form; the exact expansion is only materialized internally.
func (v Value) String() string {
	switch v.kind {
	case Int8, Int16, Int32, Int64:
		return strconv.FormatInt(v.i, 10)
	case Float32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case BigInt:
		return v.big.String()
	case BigDecimal:
		return v.dec.String()
	default:
		return "<invalid>"
	}
}
