// Package numeric converts between fixed-width and arbitrary-precision
// numbers without silent loss of information.
//
// Every non-identity conversion pivots through an exact arbitrary-precision
// decimal ([apd.Decimal]): integers convert digit-for-digit, and binary
// floating-point values convert to the precise decimal expansion of their
// bits rather than their shortest round-trip literal. Integer and
// arbitrary-precision targets reject any conversion that would round or
// truncate; floating-point targets tolerate rounding and fail only when the
// source magnitude exceeds the target's finite range.
//
// The generic front door ([To], [Of]) additionally accepts plain Go values.
// It uses [safemath] to narrow unsigned inputs without silent truncation and
// [cast] to render other basic values into parseable text.
package numeric
