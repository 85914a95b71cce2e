package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Scalar is the set of fixed-width Go types [To] can produce.
type Scalar interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// To converts any Go value to type T with the exact-fit rules of [Convert].
func To[T Scalar](v any) (T, error) {
	var zero T

	val, err := Of(v)
	if err != nil {
		return zero, err
	}

	out, err := Convert(val, kindFor[T]())
	if err != nil {
		return zero, err
	}

	switch any(zero).(type) {
	case int8:
		return any(out.Int8()).(T), nil
	case int16:
		return any(out.Int16()).(T), nil
	case int32:
		return any(out.Int32()).(T), nil
	case int64:
		return any(out.Int64()).(T), nil
	case float32:
		return any(out.Float32()).(T), nil
	default:
		return any(out.Float64()).(T), nil
	}
}

// ToMust converts v to type T and panics on error.
func ToMust[T Scalar](v any) T {
	to, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return to
}

// Of normalizes any Go value into a Value. Signed integers, floats,
// [*big.Int], and [*apd.Decimal] map onto their kinds directly. Unsigned
// integers narrow through safemath and widen to BigInt when they exceed
// int64. Strings, and anything else cast can render as a string, go through
// [Parse].
func Of(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case int8:
		return NewInt8(t), nil
	case int16:
		return NewInt16(t), nil
	case int32:
		return NewInt32(t), nil
	case int64:
		return NewInt64(t), nil
	case int:
		return NewInt64(int64(t)), nil
	case uint8:
		return NewInt64(int64(t)), nil
	case uint16:
		return NewInt64(int64(t)), nil
	case uint32:
		return NewInt64(int64(t)), nil
	case uint:
		return ofUnsigned(uint64(t))
	case uint64:
		return ofUnsigned(t)
	case uintptr:
		return ofUnsigned(uint64(t))
	case float32:
		return NewFloat32(t), nil
	case float64:
		return NewFloat64(t), nil
	case *big.Int:
		return NewBigInt(t), nil
	case *apd.Decimal:
		return NewBigDecimal(t), nil
	case string:
		return Parse(t, BigDecimal)
	case time.Duration:
		return NewInt64(int64(t)), nil
	default:
		s, err := cast.ToE[string](v)
		if err != nil {
			return Value{}, fmt.Errorf("numeric: cannot convert %T: %w", v, ErrUnsupported)
		}

		return Parse(s, BigDecimal)
	}
}

// ofUnsigned narrows a uint64 into the Int64 kind via safemath, widening to
// BigInt instead of failing when the value exceeds math.MaxInt64.
func ofUnsigned(u uint64) (Value, error) {
	i, err := safemath.ConvertAny[int64](u)
	if err != nil {
		if errors.Is(err, safemath.ErrTruncation) {
			return NewBigInt(new(big.Int).SetUint64(u)), nil
		}

		return Value{}, err
	}

	return NewInt64(i), nil
}

// kindFor maps the type argument T onto its Kind tag.
func kindFor[T Scalar]() Kind {
	switch any(*new(T)).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	default:
		return Float64
	}
}
