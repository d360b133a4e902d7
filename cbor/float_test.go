package cbor

import (
	"bytes"
	"math"
	"testing"
)

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1.1, -1.1, math.Pi, math.MaxFloat64, -math.MaxFloat64}
	for _, v := range values {
		s := NewStream(16)
		s.SerializeFloat64(v)
		got, n := DeserializeFloat64(s, 0)
		if n == 0 || got != v {
			t.Errorf("float64 %v: got (%v, %d)", v, got, n)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{0, 1.1, -1.1, float32(math.Pi), 3.4028235e+38}
	for _, v := range values {
		s := NewStream(16)
		s.SerializeFloat32(v)
		got, n := DeserializeFloat32(s, 0)
		if n == 0 || got != v {
			t.Errorf("float32 %v: got (%v, %d)", v, got, n)
		}
	}
}

func TestFloat16HexVectors(t *testing.T) {
	// Table drawn from RFC 7049 Appendix A's half-precision examples.
	cases := []struct {
		v    float32
		want []byte
	}{
		{0.0, []byte{0xf9, 0x00, 0x00}},
		{1.0, []byte{0xf9, 0x3c, 0x00}},
		{1.5, []byte{0xf9, 0x3e, 0x00}},
		{65504.0, []byte{0xf9, 0x7b, 0xff}},
		{5.960464477539063e-08, []byte{0xf9, 0x00, 0x01}},
		{-4.0, []byte{0xf9, 0xc4, 0x00}},
	}
	for _, c := range cases {
		s := NewStream(4)
		s.SerializeFloat16(c.v)
		if got := hexBytes(s); !bytes.Equal(got, c.want) {
			t.Errorf("float16(%v): got % x, want % x", c.v, got, c.want)
		}
	}
}

func TestFloat16InfinityAndNaNHexVectors(t *testing.T) {
	s := NewStream(4)
	s.SerializeFloat16(float32(math.Inf(1)))
	if got := hexBytes(s); !bytes.Equal(got, []byte{0xf9, 0x7c, 0x00}) {
		t.Fatalf("+Inf: got % x", got)
	}

	s2 := NewStream(4)
	s2.SerializeFloat16(float32(math.Inf(-1)))
	if got := hexBytes(s2); !bytes.Equal(got, []byte{0xf9, 0xfc, 0x00}) {
		t.Fatalf("-Inf: got % x", got)
	}
}

func TestFloat16RoundTripViaFloat64(t *testing.T) {
	values := []float32{0, 1, -1, 1.5, 65504, -65504, float32(math.Inf(1)), float32(math.Inf(-1))}
	for _, v := range values {
		s := NewStream(4)
		s.SerializeFloat16(v)
		got, n := DeserializeFloat16(s, 0)
		if n == 0 {
			t.Fatalf("float16(%v): decode refused", v)
		}
		if got != float64(v) {
			t.Errorf("float16(%v): got %v", v, got)
		}
	}
}

func TestFloat16NaNRoundTrip(t *testing.T) {
	s := NewStream(4)
	s.SerializeFloat16(float32(math.NaN()))
	got, n := DeserializeFloat16(s, 0)
	if n == 0 || !math.IsNaN(got) {
		t.Fatalf("expected NaN to round-trip as NaN, got (%v, %d)", got, n)
	}
}

func TestDeserializeFloatWrongInitialByte(t *testing.T) {
	s := NewStream(16)
	s.SerializeUint(1)
	if _, n := DeserializeFloat32(s, 0); n != 0 {
		t.Fatalf("expected refusal decoding a uint as float32, got n=%d", n)
	}
}
