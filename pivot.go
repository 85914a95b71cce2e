package numeric

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// pivot converts v into its exact arbitrary-precision decimal form. It never
// loses information: only the second hop, pivot to target, may. The caller
// must have rejected non-finite floats and invalid kinds already; pivot
// panics on them. The returned decimal is freshly allocated and owned by the
// caller.
func pivot(v Value) *apd.Decimal {
	switch v.kind {
	case Int8, Int16, Int32, Int64:
		return apd.New(v.i, 0)
	case Float32, Float64:
		return decimalOfFloat(v.f)
	case BigInt:
		return decimalOfBig(v.big)
	case BigDecimal:
		return new(apd.Decimal).Set(v.dec)
	default:
		panic("numeric: pivot of " + v.kind.String() + " value")
	}
}

// decimalOfFloat returns the exact decimal expansion of the binary value of
// f, not its shortest round-trip literal. A finite float is a dyadic
// rational, so the denominator of its exact Rat form is a power of two and
// the expansion terminates after BitLen-1 fractional digits.
func decimalOfFloat(f float64) *apd.Decimal {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		panic("numeric: exact decimal of non-finite float")
	}

	digits := r.Denom().BitLen() - 1
	d, _, err := apd.NewFromString(r.FloatString(digits))
	if err != nil {
		panic("numeric: " + err.Error())
	}

	return d
}

func decimalOfBig(b *big.Int) *apd.Decimal {
	d := new(apd.Decimal)
	d.Coeff.SetMathBigInt(new(big.Int).Abs(b))
	d.Negative = b.Sign() < 0

	return d
}
