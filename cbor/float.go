package cbor

// SerializeFloat16 writes 0xF9 followed by the 2 big-endian bytes of
// f's half-precision encoding. It returns 3, or 0 on capacity
// exhaustion.
func (s *Stream) SerializeFloat16(f float32) int {
	if !s.fits(3) {
		return 0
	}
	b := s.reserve(3)
	b[0] = makeInitialByte(majorTypeSimple, simpleFloat16)
	putUint16(b[1:], float32ToHalfBits(f))
	return 3
}

// SerializeFloat32 writes 0xFA followed by the 4 big-endian bytes of
// f's IEEE 754 single-precision bit pattern. It returns 5, or 0 on
// capacity exhaustion.
func (s *Stream) SerializeFloat32(f float32) int {
	if !s.fits(5) {
		return 0
	}
	b := s.reserve(5)
	b[0] = makeInitialByte(majorTypeSimple, simpleFloat32)
	putUint32(b[1:], float32Bits(f))
	return 5
}

// SerializeFloat64 writes 0xFB followed by the 8 big-endian bytes of
// f's IEEE 754 double-precision bit pattern. It returns 9, or 0 on
// capacity exhaustion.
func (s *Stream) SerializeFloat64(f float64) int {
	if !s.fits(9) {
		return 0
	}
	b := s.reserve(9)
	b[0] = makeInitialByte(majorTypeSimple, simpleFloat64)
	putUint64(b[1:], float64Bits(f))
	return 9
}

// DeserializeFloat16 reads a float16 at offset, returning its value
// widened to float64 (so NaN/Inf and subnormals survive without a
// second hand-rolled widening at the call site) and 3. It returns
// (0, 0) if the initial byte at offset is not exactly 0xF9.
func DeserializeFloat16(s *Stream, offset int) (v float64, n int) {
	b := s.at(offset, 3)
	if b == nil || b[0] != makeInitialByte(majorTypeSimple, simpleFloat16) {
		return 0, 0
	}
	return halfBitsToFloat64(getUint16(b[1:])), 3
}

// DeserializeFloat32 reads a float32 at offset. It returns (0, 0) if
// the initial byte at offset is not exactly 0xFA.
func DeserializeFloat32(s *Stream, offset int) (v float32, n int) {
	b := s.at(offset, 5)
	if b == nil || b[0] != makeInitialByte(majorTypeSimple, simpleFloat32) {
		return 0, 0
	}
	return bitsToFloat32(getUint32(b[1:])), 5
}

// DeserializeFloat64 reads a float64 at offset. It returns (0, 0) if
// the initial byte at offset is not exactly 0xFB.
func DeserializeFloat64(s *Stream, offset int) (v float64, n int) {
	b := s.at(offset, 9)
	if b == nil || b[0] != makeInitialByte(majorTypeSimple, simpleFloat64) {
		return 0, 0
	}
	return bitsToFloat64(getUint64(b[1:])), 9
}
