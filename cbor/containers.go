package cbor

// SerializeArray writes a definite-length array header for count
// items. The header does not encode the items themselves; callers
// emit those sequentially afterward.
func (s *Stream) SerializeArray(count uint64) int {
	return EncodeArgument(s, majorTypeArray, count)
}

// SerializeMap writes a definite-length map header for count
// key/value pairs (not count total items). Callers must emit exactly
// count*2 items afterward, key first.
func (s *Stream) SerializeMap(count uint64) int {
	return EncodeArgument(s, majorTypeMap, count)
}

// SerializeIndefiniteArray writes the one-byte indefinite array header
// 0x9F. The caller emits items followed by WriteBreak.
func (s *Stream) SerializeIndefiniteArray() int {
	return s.writeRawByte(makeInitialByte(majorTypeArray, addInfoIndefinite))
}

// SerializeIndefiniteMap writes the one-byte indefinite map header
// 0xBF. The caller emits key/value pairs followed by WriteBreak.
func (s *Stream) SerializeIndefiniteMap() int {
	return s.writeRawByte(makeInitialByte(majorTypeMap, addInfoIndefinite))
}

// WriteBreak writes the one-byte break marker 0xFF that terminates an
// indefinite-length container.
func (s *Stream) WriteBreak() int {
	return s.writeRawByte(makeInitialByte(majorTypeSimple, simpleBreak))
}

func (s *Stream) writeRawByte(b byte) int {
	if !s.fits(1) {
		return 0
	}
	s.reserve(1)[0] = b
	return 1
}

// DeserializeArray reads an array header at offset. For a definite
// header it returns the item count and bytes read; for an indefinite
// header (0x9F) it returns (0, 1) — callers iterate with AtBreak
// rather than a count. It returns (0, 0) if the major type does not
// match.
func DeserializeArray(s *Stream, offset int) (count uint64, n int) {
	return deserializeContainerHeader(s, offset, majorTypeArray)
}

// DeserializeMap reads a map header at offset, the same way
// DeserializeArray reads an array header, except the count is the
// number of key/value pairs.
func DeserializeMap(s *Stream, offset int) (count uint64, n int) {
	return deserializeContainerHeader(s, offset, majorTypeMap)
}

func deserializeContainerHeader(s *Stream, offset int, wantMajor byte) (count uint64, n int) {
	lead := s.at(offset, 1)
	if lead == nil {
		return 0, 0
	}
	major, addInfo := splitInitialByte(lead[0])
	if major != wantMajor {
		return 0, 0
	}
	if addInfo == addInfoIndefinite {
		return 0, 1
	}
	return DecodeArgument(s, offset)
}

// AtBreak reports whether the byte at offset is the break marker
// 0xFF. Iteration over an indefinite container ends when this is
// true; the caller is responsible for consuming the break byte
// itself (e.g. by reading 1 more byte past offset).
func AtBreak(s *Stream, offset int) bool {
	lead := s.at(offset, 1)
	if lead == nil {
		return false
	}
	return lead[0] == makeInitialByte(majorTypeSimple, simpleBreak)
}
