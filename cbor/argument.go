package cbor

import "encoding/binary"

// EncodeArgument writes the CBOR "initial byte + argument" header for
// majorType and arg, choosing the shortest of the five layouts (direct
// 0..23, or a 1/2/4/8-byte follow-up). It returns the number of bytes
// written, or 0 if the Stream's remaining capacity cannot hold the
// header (the Stream is left untouched in that case).
func EncodeArgument(s *Stream, majorType byte, arg uint64) int {
	switch {
	case arg <= addInfoDirect:
		if !s.fits(1) {
			return 0
		}
		b := s.reserve(1)
		b[0] = makeInitialByte(majorType, byte(arg))
		return 1
	case arg <= 0xff:
		if !s.fits(2) {
			return 0
		}
		b := s.reserve(2)
		b[0] = makeInitialByte(majorType, addInfoUint8)
		b[1] = byte(arg)
		return 2
	case arg <= 0xffff:
		if !s.fits(3) {
			return 0
		}
		b := s.reserve(3)
		b[0] = makeInitialByte(majorType, addInfoUint16)
		binary.BigEndian.PutUint16(b[1:], uint16(arg))
		return 3
	case arg <= 0xffffffff:
		if !s.fits(5) {
			return 0
		}
		b := s.reserve(5)
		b[0] = makeInitialByte(majorType, addInfoUint32)
		binary.BigEndian.PutUint32(b[1:], uint32(arg))
		return 5
	default:
		if !s.fits(9) {
			return 0
		}
		b := s.reserve(9)
		b[0] = makeInitialByte(majorType, addInfoUint64)
		binary.BigEndian.PutUint64(b[1:], arg)
		return 9
	}
}

// DecodeArgument reads the initial byte's additional info at offset
// and, if it is a length-bearing value (0..23 or 24/25/26/27), the
// follow-up bytes that carry the argument. It returns the decoded
// argument and the number of bytes read (1/2/3/5/9). It returns
// (0, 0) for additional info values that do not bear an argument here
// (31: indefinite/break) and for truncated input — callers distinguish
// the two by re-examining the initial byte themselves.
//
// Decoding is permissive: any follow-up width decodes, even if a
// shorter width could have represented the same value. Only
// EncodeArgument is required to pick the shortest form.
func DecodeArgument(s *Stream, offset int) (arg uint64, n int) {
	lead := s.at(offset, 1)
	if lead == nil {
		return 0, 0
	}
	_, addInfo := splitInitialByte(lead[0])
	switch {
	case addInfo <= addInfoDirect:
		return uint64(addInfo), 1
	case addInfo == addInfoUint8:
		b := s.at(offset, 2)
		if b == nil {
			return 0, 0
		}
		return uint64(b[1]), 2
	case addInfo == addInfoUint16:
		b := s.at(offset, 3)
		if b == nil {
			return 0, 0
		}
		return uint64(binary.BigEndian.Uint16(b[1:])), 3
	case addInfo == addInfoUint32:
		b := s.at(offset, 5)
		if b == nil {
			return 0, 0
		}
		return uint64(binary.BigEndian.Uint32(b[1:])), 5
	case addInfo == addInfoUint64:
		b := s.at(offset, 9)
		if b == nil {
			return 0, 0
		}
		return binary.BigEndian.Uint64(b[1:]), 9
	default:
		return 0, 0
	}
}
