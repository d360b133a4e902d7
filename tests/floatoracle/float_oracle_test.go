// Package floatoracle cross-checks this module's hand-rolled
// half-precision conversion (cbor.SerializeFloat16/DeserializeFloat16)
// against an independently implemented half-precision library,
// x448/float16. The codec itself never imports float16 — only this
// test does — so the hot path stays dependency-free while still
// getting an adversarial check against a library used elsewhere for
// the same concern.
package floatoracle

import (
	"math"
	"testing"

	"github.com/corvid-labs/microcbor/cbor"
	"github.com/x448/float16"
)

func TestFloat16EncodeMatchesOracleAcrossSweep(t *testing.T) {
	step := float32(0.37)
	for f := -80000.0; f < 80000.0; f += float64(step) {
		v := float32(f)
		want := float16.Fromfloat32(v).Bits()

		s := cbor.NewStream(4)
		s.SerializeFloat16(v)
		got := s.Bytes()
		gotBits := uint16(got[1])<<8 | uint16(got[2])

		if gotBits != want {
			t.Fatalf("float32(%v): got bits %#04x, oracle wants %#04x", v, gotBits, want)
		}
	}
}

func TestFloat16EncodeMatchesOracleSpecials(t *testing.T) {
	values := []float32{
		0, float32(math.Copysign(0, -1)),
		1, -1, 65504, -65504,
		float32(math.Inf(1)), float32(math.Inf(-1)),
		5.960464477539063e-08, // smallest subnormal
		6.097555e-05,          // largest subnormal
	}
	for _, v := range values {
		want := float16.Fromfloat32(v).Bits()
		s := cbor.NewStream(4)
		s.SerializeFloat16(v)
		got := s.Bytes()
		gotBits := uint16(got[1])<<8 | uint16(got[2])
		if gotBits != want {
			t.Errorf("float32(%v): got bits %#04x, oracle wants %#04x", v, gotBits, want)
		}
	}
}

func TestFloat16DecodeMatchesOracle(t *testing.T) {
	bitPatterns := []uint16{0x0000, 0x8000, 0x3c00, 0x7bff, 0xfbff, 0x7c00, 0xfc00, 0x0001, 0x7e00}
	for _, bits := range bitPatterns {
		want := float64(float16.Frombits(bits).Float32())

		buf := []byte{0xf9, byte(bits >> 8), byte(bits)}
		s := cbor.NewStreamFromBytes(buf)
		got, n := cbor.DeserializeFloat16(s, 0)
		if n == 0 {
			t.Fatalf("bits %#04x: decode refused", bits)
		}
		if math.IsNaN(want) {
			if !math.IsNaN(got) {
				t.Errorf("bits %#04x: got %v, oracle wants NaN", bits, got)
			}
			continue
		}
		if got != want {
			t.Errorf("bits %#04x: got %v, oracle wants %v", bits, got, want)
		}
	}
}
