package cbor

import "math"

// Half-precision (IEEE 754 binary16) conversion. Go's standard library
// has no half-precision type, so — unlike byteorder.go's use of
// encoding/binary and math.Float32bits — this is genuinely hand-rolled.
// Compliance tests cross-check this against an independent
// implementation (github.com/x448/float16) rather than relying on it
// at runtime, so the codec stays dependency-free on the hot path.

// float32ToHalfBits converts a float32 bit pattern to its nearest
// half-precision representation. Both subnormals and normals round
// half-up: the first dropped bit is added back, so exact ties round
// away from zero rather than to the even neighbour.
func float32ToHalfBits(f float32) uint16 {
	bits := float32Bits(f)
	sign := uint16((bits >> 31) & 1)
	e := int((bits >> 23) & 0xff)
	m := uint16((bits >> 12) & 0x7ff) // 11 bits: 10 stored + 1 guard bit

	switch {
	case e < 103:
		// Case 1: magnitude too small even for a half subnormal.
		return sign << 15

	case e > 142:
		// Case 2: signed infinity, unless the source was a NaN, in
		// which case at least one mantissa bit is forced on so the
		// half value remains distinguishable from infinity.
		if e == 255 && (bits&0x7fffff) != 0 {
			mant := uint16((bits >> 13) & 0x3ff)
			if mant == 0 {
				mant = 1
			}
			return (sign << 15) | (0x1f << 10) | mant
		}
		return (sign << 15) | (0x1f << 10)

	case e < 113:
		// Case 3: half-precision denormal. Restore the implicit
		// leading bit, then round half-up while shifting down to 10
		// mantissa bits.
		m |= 0x800
		mant := (m >> uint(114-e)) + ((m >> uint(113-e)) & 1)
		return (sign << 15) | mant

	default:
		// Case 4: normal half. Round half-up by adding the bit that
		// would be shifted out (an exact tie rounds up, not to even).
		exp := uint16(e - 112)
		mant := (m >> 1) + (m & 1)
		if mant == 0x400 { // mantissa rounded up into the exponent
			mant = 0
			exp++
		}
		return (sign << 15) | (exp << 10) | mant
	}
}

// halfBitsToFloat64 converts a half-precision bit pattern to its
// equivalent float64 value.
func halfBitsToFloat64(h uint16) float64 {
	sign := (h >> 15) & 1
	exp := (h >> 10) & 0x1f
	mant := float64(h & 0x3ff)

	var v float64
	switch {
	case exp == 0:
		v = math.Ldexp(mant, -24)
	case exp == 31:
		if mant == 0 {
			v = math.Inf(1)
		} else {
			v = math.NaN()
		}
	default:
		v = math.Ldexp(mant+1024, int(exp)-25)
	}
	if sign != 0 {
		v = -v
	}
	return v
}
