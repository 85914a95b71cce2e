package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("integerLiterals", func(t *testing.T) {
		got, err := Parse("127", Int8)
		require.NoError(t, err)
		require.Equal(t, int8(127), got.Int8())

		got, err = Parse("-128", Int8)
		require.NoError(t, err)
		require.Equal(t, int8(-128), got.Int8())

		got, err = Parse("1e2", Int64)
		require.NoError(t, err)
		require.Equal(t, int64(100), got.Int64())
	})

	t.Run("fractionalLiterals", func(t *testing.T) {
		got, err := Parse("-1.5e3", Float64)
		require.NoError(t, err)
		require.Equal(t, -1500.0, got.Float64())

		got, err = Parse("2.5", BigDecimal)
		require.NoError(t, err)
		require.Equal(t, "2.5", got.String())

		got, err = Parse("0.1", Float32)
		require.NoError(t, err)
		require.Equal(t, float32(0.1), got.Float32())
	})

	t.Run("bigLiterals", func(t *testing.T) {
		got, err := Parse("340282366920938463463374607431768211456", BigInt) // 2^128
		require.NoError(t, err)
		require.Zero(t, got.BigInt().Cmp(new(big.Int).Lsh(big.NewInt(1), 128)))
	})
}

func TestParseRangeFailures(t *testing.T) {
	_, err := Parse("300", Int8)
	require.ErrorIs(t, err, ErrRange)
	require.EqualError(t, err, "numeric: 300 does not fit into int8")

	_, err = Parse("1.5", Int64)
	require.ErrorIs(t, err, ErrRange)

	_, err = Parse("1e39", Float32)
	require.ErrorIs(t, err, ErrRange)

	_, err = Parse("9223372036854775808", Int64)
	require.ErrorIs(t, err, ErrRange)
}

func TestParseMalformedText(t *testing.T) {
	malformed := []string{
		"",
		"abc",
		"1.2.3",
		"12x",
		"--1",
		"0x10",
		"NaN",
		"Infinity",
		"-inf",
	}

	for _, text := range malformed {
		for _, target := range allKinds {
			_, err := Parse(text, target)
			require.ErrorIs(t, err, ErrSyntax, "text %q target %s", text, target)
			require.NotErrorIs(t, err, ErrRange)
		}
	}

	var convErr *ConversionError
	_, err := Parse("abc", Int8)
	require.ErrorAs(t, err, &convErr)
	require.Equal(t, "abc", convErr.Text)
	require.Equal(t, Int8, convErr.Target)
	require.EqualError(t, err, `numeric: cannot parse "abc" as int8`)
}

func TestParseUnsupportedTarget(t *testing.T) {
	_, err := Parse("1", Invalid)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Parse("1", Kind(42))
	require.ErrorIs(t, err, ErrUnsupported)
}

// Parsing the exact text of a value must produce the same outcome as
// converting the value directly. Floats render through their exact binary
// expansion here: the shortest round-trip literal names a different real
// number, which an arbitrary-precision target would faithfully preserve.
func TestParseAgreesWithConvert(t *testing.T) {
	for _, v := range sampleValues(t) {
		if v.Kind().isFloat() && !isFinite(v.f) {
			continue // renders as NaN/Inf, which is not numeric text
		}

		text := v.String()
		if v.Kind().isFloat() {
			text = pivot(v).Text('f')
		}

		for _, target := range allKinds {
			want, wantErr := Convert(v, target)
			got, gotErr := Parse(text, target)

			if wantErr != nil {
				require.Error(t, gotErr, "value %s (%s), target %s", v, v.Kind(), target)
				require.True(t, errors.Is(gotErr, ErrRange) == errors.Is(wantErr, ErrRange),
					"value %s (%s), target %s: %v vs %v", v, v.Kind(), target, gotErr, wantErr)
				continue
			}

			require.NoError(t, gotErr, "value %s (%s), target %s", v, v.Kind(), target)
			require.Equal(t, want.Kind(), got.Kind())
			require.Equal(t, want.String(), got.String(),
				"value %s (%s), target %s", v, v.Kind(), target)
		}
	}
}

func TestParseResultIsIndependent(t *testing.T) {
	got, err := Parse("1.25", BigDecimal)
	require.NoError(t, err)
	got.BigDecimal().Set(mustDecimal(t, "9"))
	require.Equal(t, "1.25", got.String())
}

func TestParseBoundaryValues(t *testing.T) {
	got, err := Parse("9223372036854775807", Int64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), got.Int64())

	got, err = Parse("-9223372036854775808", Int64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), got.Int64())
}
