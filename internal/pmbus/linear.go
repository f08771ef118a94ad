package pmbus

import "math"

// DecodeLinear11 converts a raw LINEAR11 word into a float64. The top 5
// bits are a signed exponent, the low 11 bits a signed mantissa; the value
// is mantissa * 2^exponent.
func DecodeLinear11(raw uint16) float64 {
	exp := int16(raw) >> 11
	mant := int16(raw<<5) >> 5
	return math.Ldexp(float64(mant), int(exp))
}

// EncodeLinear11 packs a mantissa in [-1024, 1023] and an exponent in
// [-16, 15] into a raw LINEAR11 word.
func EncodeLinear11(mant int16, exp int8) uint16 {
	return uint16(exp&0x1f)<<11 | uint16(mant)&0x7ff
}
