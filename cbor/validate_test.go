package cbor

import "testing"

func TestValidateWellFormedStream(t *testing.T) {
	s := NewStream(64)
	s.SerializeMap(2)
	s.SerializeTextString("a")
	s.SerializeArray(2)
	s.SerializeUint(1)
	s.SerializeUint(2)
	s.SerializeTextString("b")
	s.SerializeFloat64(1.5)

	if err := Validate(s); err != nil {
		t.Fatalf("expected well-formed, got %v", err)
	}
}

func TestValidateIndefiniteContainer(t *testing.T) {
	s := NewStream(32)
	s.SerializeIndefiniteArray()
	s.SerializeUint(1)
	s.SerializeTextString("x")
	s.WriteBreak()

	if err := Validate(s); err != nil {
		t.Fatalf("expected well-formed, got %v", err)
	}
}

func TestValidateDetectsReservedAddInfo(t *testing.T) {
	// Additional info 28 is reserved.
	s := NewStreamFromBytes([]byte{makeInitialByte(majorTypeUint, 28)})
	err := Validate(s)
	if err != ErrReservedAddInfo {
		t.Fatalf("got %v, want ErrReservedAddInfo", err)
	}
}

func TestValidateDetectsTruncatedPayload(t *testing.T) {
	// Byte-string header claims length 4 but only 2 bytes follow.
	s := NewStreamFromBytes([]byte{0x44, 0xaa, 0xbb})
	err := Validate(s)
	if err != ErrShortBytes {
		t.Fatalf("got %v, want ErrShortBytes", err)
	}
}

func TestValidateDetectsMaxDepthExceeded(t *testing.T) {
	old := MaxDepth
	MaxDepth = 2
	defer func() { MaxDepth = old }()

	s := NewStream(64)
	s.SerializeArray(1)
	s.SerializeArray(1)
	s.SerializeArray(1)
	s.SerializeUint(1)

	err := Validate(s)
	if err != ErrMaxDepthExceeded {
		t.Fatalf("got %v, want ErrMaxDepthExceeded", err)
	}
}

func TestValidateBreakWithoutOpener(t *testing.T) {
	s := NewStreamFromBytes([]byte{0xff})
	err := Validate(s)
	if err == nil {
		t.Fatal("expected an error for a bare break marker")
	}
	if _, ok := err.(*TypeMismatchError); !ok {
		t.Fatalf("got %T, want *TypeMismatchError", err)
	}
}

func TestValidateTaggedItemRecurses(t *testing.T) {
	s := NewStream(32)
	s.WriteTag(0)
	s.SerializeTextString("2013-03-21T20:04:00Z")
	if err := Validate(s); err != nil {
		t.Fatalf("expected well-formed, got %v", err)
	}
}
