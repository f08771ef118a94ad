package hiddev

import "testing"

func TestSupported(t *testing.T) {
	cases := []struct {
		vendor  uint16
		product uint16
		want    bool
	}{
		{0x1b1c, 0x1c0b, true},  // RM750i
		{0x1b1c, 0x1c1e, true},  // HX1000i gen2
		{0x1b1c, 0x1c00, false}, // unknown corsair product
		{0x046d, 0x1c0b, false}, // right product id, wrong vendor
		{0x0000, 0x0000, false},
	}

	for _, c := range cases {
		if got := Supported(c.vendor, c.product); got != c.want {
			t.Errorf("Supported(%04x, %04x) = %v, want %v", c.vendor, c.product, got, c.want)
		}
	}
}

func TestModel(t *testing.T) {
	if got := Model(0x1c0d); got != "RM1000i" {
		t.Fatalf("Model(0x1c0d) = %q, want RM1000i", got)
	}
	if got := Model(0xffff); got != "" {
		t.Fatalf("Model(0xffff) = %q, want empty", got)
	}
}
