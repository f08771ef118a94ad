package pmbus

import (
	"math"
	"testing"
)

func TestDecodeLinear11(t *testing.T) {
	cases := []struct {
		raw  uint16
		want float64
	}{
		{0x0000, 0},
		{0xf864, 50},      // exponent -1, mantissa 100
		{0x0001, 1},       // exponent 0, mantissa 1
		{0x07ff, -1},      // exponent 0, mantissa -1
		{0x0fff, -2},      // exponent 1, mantissa -1
		{0xd3cc, 15.1875}, // exponent -6, mantissa 972 (typical 12V rail)
	}

	for _, c := range cases {
		got := DecodeLinear11(c.raw)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("DecodeLinear11(%#04x) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestLinear11RoundTrip(t *testing.T) {
	cases := []struct {
		mant int16
		exp  int8
		want float64
	}{
		{100, -1, 50},
		{-100, -1, -50},
		{1023, 0, 1023},
		{-1024, 0, -1024},
		{1, -16, math.Ldexp(1, -16)},
		{3, 15, 98304},
		{868, 0, 868}, // fan rpm style reading
	}

	for _, c := range cases {
		raw := EncodeLinear11(c.mant, c.exp)
		got := DecodeLinear11(raw)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("decode(encode(%d, %d)) = %v, want %v", c.mant, c.exp, got, c.want)
		}
	}
}

func TestEncodeLinear11BitLayout(t *testing.T) {
	// exponent -1 is 0b11111 in the top 5 bits, mantissa 100 in the low 11
	if raw := EncodeLinear11(100, -1); raw != 0xf864 {
		t.Fatalf("EncodeLinear11(100, -1) = %#04x, want 0xf864", raw)
	}
}
