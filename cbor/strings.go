package cbor

// SerializeByteString writes data as a byte string (major type 2):
// encode_argument(2, len(data)) followed by the raw bytes. It returns
// the total bytes written, or 0 on capacity exhaustion (in which case
// nothing — not even the header — is written).
func (s *Stream) SerializeByteString(data []byte) int {
	return s.serializeStringLike(majorTypeBytes, data)
}

// SerializeTextString writes str as a text string (major type 3),
// sharing SerializeByteString's layout. Its content is assumed to be
// UTF-8 but is never validated by this package (explicit non-goal).
func (s *Stream) SerializeTextString(str string) int {
	return s.serializeStringLike(majorTypeText, []byte(str))
}

func (s *Stream) serializeStringLike(major byte, data []byte) int {
	start := s.pos
	headerLen := EncodeArgument(s, major, uint64(len(data)))
	if headerLen == 0 {
		return 0
	}
	if !s.fits(len(data)) {
		s.pos = start // header write is rolled back; no partial item survives
		return 0
	}
	copy(s.reserve(len(data)), data)
	return s.pos - start
}

// DeserializeByteString reads a byte string at offset into out. On
// success it copies exactly the payload's length bytes into out and
// writes a terminating NUL at out[length], requiring
// len(out) >= length+1; it returns 0 if that capacity is insufficient,
// and 0 if the major type at offset is not 2. On success it returns
// the total bytes consumed from the stream (header + payload).
func (s *Stream) DeserializeByteString(offset int, out []byte) int {
	return deserializeStringLike(s, offset, majorTypeBytes, out)
}

// DeserializeTextString reads a text string at offset into out, with
// the same contract as DeserializeByteString except the major type
// must be 3.
func (s *Stream) DeserializeTextString(offset int, out []byte) int {
	return deserializeStringLike(s, offset, majorTypeText, out)
}

func deserializeStringLike(s *Stream, offset int, wantMajor byte, out []byte) int {
	lead := s.at(offset, 1)
	if lead == nil {
		return 0
	}
	major, _ := splitInitialByte(lead[0])
	if major != wantMajor {
		return 0
	}
	length, headerLen := DecodeArgument(s, offset)
	if headerLen == 0 {
		return 0
	}
	payload := s.at(offset+headerLen, int(length))
	if payload == nil {
		return 0
	}
	if len(out) < int(length)+1 {
		return 0
	}
	n := copy(out, payload)
	out[n] = 0
	return headerLen + int(length)
}
