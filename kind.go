package numeric

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Kind identifies one of the supported numeric representations. The zero
// Kind is Invalid so that an uninitialized Value is distinguishable from a
// zero-valued int8.
type Kind uint8

const (
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	BigInt
	BigDecimal
)

// String returns the display name used in conversion failure messages.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case BigInt:
		return "bigint"
	case BigDecimal:
		return "decimal"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) valid() bool   { return k >= Int8 && k <= BigDecimal }
func (k Kind) isInt() bool   { return k >= Int8 && k <= Int64 }
func (k Kind) isFloat() bool { return k == Float32 || k == Float64 }

// intRange holds the representable range of each fixed-width integer kind,
// indexed by Kind.
var intRange = [...]struct{ lo, hi int64 }{
	Int8:  {math.MinInt8, math.MaxInt8},
	Int16: {math.MinInt16, math.MaxInt16},
	Int32: {math.MinInt32, math.MaxInt32},
	Int64: {math.MinInt64, math.MaxInt64},
}

// intRangeDec mirrors intRange as decimals for cheap magnitude screening
// before exact integer extraction.
var intRangeDec = [...]struct{ lo, hi *apd.Decimal }{
	Int8:  {apd.New(math.MinInt8, 0), apd.New(math.MaxInt8, 0)},
	Int16: {apd.New(math.MinInt16, 0), apd.New(math.MaxInt16, 0)},
	Int32: {apd.New(math.MinInt32, 0), apd.New(math.MaxInt32, 0)},
	Int64: {apd.New(math.MinInt64, 0), apd.New(math.MaxInt64, 0)},
}

// intFloatBound is the exclusive upper magnitude bound of each integer kind
// as an exactly representable float64 (2^7, 2^15, 2^31, 2^63). The lower
// bound is the negation, inclusive.
var intFloatBound = [...]float64{
	Int8:  1 << 7,
	Int16: 1 << 15,
	Int32: 1 << 31,
	Int64: 1 << 63,
}
