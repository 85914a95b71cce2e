package numeric

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPivotOfIntegersIsExact(t *testing.T) {
	require.Equal(t, "-128", pivot(NewInt8(-128)).Text('f'))
	require.Equal(t, "9223372036854775807", pivot(NewInt64(1<<63-1)).Text('f'))
	require.Equal(t, "-9223372036854775808", pivot(NewInt64(-1<<63)).Text('f'))
}

func TestPivotOfFloatIsExactBinaryExpansion(t *testing.T) {
	// The full expansion of the double nearest 0.1, not the "0.1" literal.
	require.Equal(t,
		"0.1000000000000000055511151231257827021181583404541015625",
		pivot(NewFloat64(0.1)).Text('f'))

	// Same for the float32 nearest 0.1.
	require.Equal(t,
		"0.100000001490116119384765625",
		pivot(NewFloat32(0.1)).Text('f'))

	require.Equal(t, "1.5", pivot(NewFloat64(1.5)).Text('f'))
	require.Equal(t, "0", pivot(NewFloat64(0)).Text('f'))
	require.Equal(t, "-3", pivot(NewFloat32(-3)).Text('f'))
}

func TestPivotOfBigKinds(t *testing.T) {
	b := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	require.Equal(t, "1"+strings.Repeat("0", 30), pivot(NewBigInt(b)).Text('f'))
	require.Equal(t, "-42", pivot(NewBigInt(big.NewInt(-42))).Text('f'))

	d := mustDecimal(t, "-2.5e3")
	require.Equal(t, "-2500", pivot(NewBigDecimal(d)).Text('f'))
}

func TestPivotReturnsOwnedDecimal(t *testing.T) {
	v := NewBigDecimal(mustDecimal(t, "7"))
	pivot(v).Set(mustDecimal(t, "8"))
	require.Equal(t, "7", v.String())
}

func TestPivotRoundTripsEveryKind(t *testing.T) {
	values := []Value{
		NewInt8(-17),
		NewInt16(1234),
		NewInt32(-1 << 31),
		NewInt64(1<<63 - 1),
		NewFloat32(0.1),
		NewFloat64(0.1),
		NewFloat64(-2.5e-10),
		NewBigInt(new(big.Int).Lsh(big.NewInt(1), 200)),
		NewBigDecimal(mustDecimal(t, "1.000000000000000000000000000001")),
	}

	for _, v := range values {
		back, err := fromPivot(v, pivot(v), v.Kind())
		require.NoError(t, err, "value %s (%s)", v, v.Kind())
		require.Equal(t, v.String(), back.String(), "value %s (%s)", v, v.Kind())
	}
}
