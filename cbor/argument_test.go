package cbor

import (
	"bytes"
	"testing"
)

func hexBytes(s *Stream) []byte { return append([]byte(nil), s.Bytes()...) }

func TestEncodeArgumentShortestForm(t *testing.T) {
	cases := []struct {
		arg  uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{0xff, []byte{0x18, 0xff}},
		{0x100, []byte{0x19, 0x01, 0x00}},
		{0xffff, []byte{0x19, 0xff, 0xff}},
		{0x10000, []byte{0x1a, 0x00, 0x01, 0x00, 0x00}},
		{0xffffffff, []byte{0x1a, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0x1b, 0, 0, 0, 1, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		s := NewStream(16)
		EncodeArgument(s, majorTypeUint, c.arg)
		if got := hexBytes(s); !bytes.Equal(got, c.want) {
			t.Errorf("arg %d: got % x, want % x", c.arg, got, c.want)
		}
	}
}

func TestDecodeArgumentPermissive(t *testing.T) {
	// A value that could fit in 1 byte, encoded in the 9-byte form,
	// must still decode correctly (decode is permissive; only encode
	// is required to pick the shortest form).
	s := NewStreamFromBytes([]byte{0x1b, 0, 0, 0, 0, 0, 0, 0, 5})
	arg, n := DecodeArgument(s, 0)
	if n != 9 || arg != 5 {
		t.Fatalf("got (%d, %d), want (5, 9)", arg, n)
	}
}

func TestEncodeArgumentRefusesOnShortCapacity(t *testing.T) {
	s := NewStream(1)
	if n := EncodeArgument(s, majorTypeUint, 1000); n != 0 {
		t.Fatalf("expected refusal, got %d", n)
	}
	if s.Len() != 0 {
		t.Fatal("refused header write must not advance position")
	}
}

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 23, 24, 255, 256, 65535, 65536, 4294967295, 4294967296, ^uint64(0)}
	for _, v := range values {
		s := NewStream(32)
		n := s.SerializeUint(v)
		if n == 0 {
			t.Fatalf("uint %d: serialize refused", v)
		}
		got, m := DeserializeUint(s, 0)
		if m != n || got != v {
			t.Errorf("uint %d: round trip got (%d, %d)", v, got, m)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 23, -24, 1000, -1000, 1<<31 - 1, -(1 << 31), 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		s := NewStream(32)
		n := s.SerializeInt(v)
		if n == 0 {
			t.Fatalf("int %d: serialize refused", v)
		}
		got, m := DeserializeInt(s, 0)
		if m != n || got != v {
			t.Errorf("int %d: round trip got (%d, %d)", v, got, m)
		}
	}
}

func TestEncodeIntMinusThousandHex(t *testing.T) {
	s := NewStream(8)
	s.SerializeInt(-1000)
	want := []byte{0x39, 0x03, 0xe7}
	if got := hexBytes(s); !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEncodeUintMillionHex(t *testing.T) {
	s := NewStream(8)
	s.SerializeUint(1000000)
	want := []byte{0x1a, 0x00, 0x0f, 0x42, 0x40}
	if got := hexBytes(s); !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEncodeUintZeroHex(t *testing.T) {
	s := NewStream(8)
	s.SerializeUint(0)
	want := []byte{0x00}
	if got := hexBytes(s); !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}
