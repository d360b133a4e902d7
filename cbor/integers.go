package cbor

// SerializeUint writes v as an unsigned integer (major type 0). It
// returns the bytes written, or 0 on capacity exhaustion.
func (s *Stream) SerializeUint(v uint64) int {
	return EncodeArgument(s, majorTypeUint, v)
}

// SerializeInt writes v as a signed integer: major type 0 for v >= 0,
// or major type 1 with argument (-1-v) for v < 0. The argument is
// computed in unsigned 64-bit arithmetic so that math.MinInt64
// round-trips correctly without overflow.
func (s *Stream) SerializeInt(v int64) int {
	if v >= 0 {
		return EncodeArgument(s, majorTypeUint, uint64(v))
	}
	// n = -1-v, computed as (^v) to avoid overflow at v == MinInt64:
	// -1-v == -(v+1) == ^v in two's complement.
	n := uint64(^v)
	return EncodeArgument(s, majorTypeNegInt, n)
}

// DeserializeUint reads an unsigned integer at offset. It returns
// (0, 0) if the major type at offset is not 0.
func DeserializeUint(s *Stream, offset int) (v uint64, n int) {
	lead := s.at(offset, 1)
	if lead == nil {
		return 0, 0
	}
	major, _ := splitInitialByte(lead[0])
	if major != majorTypeUint {
		return 0, 0
	}
	return DecodeArgument(s, offset)
}

// DeserializeInt reads a signed integer at offset, accepting major
// type 0 (unsigned) or 1 (negative) and reconstructing the value as
// -1-argument for the latter. It returns (0, 0) for any other major
// type at offset.
func DeserializeInt(s *Stream, offset int) (v int64, n int) {
	lead := s.at(offset, 1)
	if lead == nil {
		return 0, 0
	}
	major, _ := splitInitialByte(lead[0])
	switch major {
	case majorTypeUint:
		arg, n := DecodeArgument(s, offset)
		if n == 0 {
			return 0, 0
		}
		return int64(arg), n
	case majorTypeNegInt:
		arg, n := DecodeArgument(s, offset)
		if n == 0 {
			return 0, 0
		}
		return -1 - int64(arg), n
	default:
		return 0, 0
	}
}
