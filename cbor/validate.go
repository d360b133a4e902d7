package cbor

// Validate walks every item in s from offset 0 to s.Len() and reports
// the first structural problem it finds, or nil if the stream is
// well-formed. It rejects reserved additional-info values and
// truncated headers/payloads/containers, the same way the
// pretty-printer's walk would, but without producing output. UTF-8
// content of text strings is not checked (explicit non-goal).
func Validate(s *Stream) error {
	offset := 0
	for offset < s.Len() {
		next, err := validateOne(s, offset, 0)
		if err != nil {
			return err
		}
		if next == offset {
			return ErrShortBytes
		}
		offset = next
	}
	return nil
}

func validateOne(s *Stream, offset, depth int) (int, error) {
	if depth > MaxDepth {
		return offset, ErrMaxDepthExceeded
	}
	lead := s.at(offset, 1)
	if lead == nil {
		return offset, ErrShortBytes
	}
	major, addInfo := splitInitialByte(lead[0])
	if addInfo == 28 || addInfo == 29 || addInfo == 30 {
		return offset, ErrReservedAddInfo
	}

	switch major {
	case majorTypeUint, majorTypeNegInt:
		_, n := DecodeArgument(s, offset)
		if n == 0 {
			return offset, ErrShortBytes
		}
		return offset + n, nil

	case majorTypeTag:
		_, n := DecodeArgument(s, offset)
		if n == 0 {
			return offset, ErrShortBytes
		}
		return validateOne(s, offset+n, depth+1)

	case majorTypeBytes, majorTypeText:
		if addInfo == addInfoIndefinite {
			return validateIndefiniteChunks(s, offset, major, depth)
		}
		length, n := DecodeArgument(s, offset)
		if n == 0 {
			return offset, ErrShortBytes
		}
		if s.at(offset+n, int(length)) == nil {
			return offset, ErrShortBytes
		}
		return offset + n + int(length), nil

	case majorTypeArray:
		return validateSequence(s, offset, depth, false)

	case majorTypeMap:
		return validateSequence(s, offset, depth, true)

	case majorTypeSimple:
		switch addInfo {
		case simpleFalse, simpleTrue, simpleNull, simpleUndefined:
			return offset + 1, nil
		case simpleFloat16:
			if s.at(offset, 3) == nil {
				return offset, ErrShortBytes
			}
			return offset + 3, nil
		case simpleFloat32:
			if s.at(offset, 5) == nil {
				return offset, ErrShortBytes
			}
			return offset + 5, nil
		case simpleFloat64:
			if s.at(offset, 9) == nil {
				return offset, ErrShortBytes
			}
			return offset + 9, nil
		case addInfoUint8:
			if s.at(offset, 2) == nil {
				return offset, ErrShortBytes
			}
			return offset + 2, nil
		case addInfoIndefinite: // break with no matching opener
			return offset, &TypeMismatchError{Offset: offset, Want: majorTypeSimple, Got: majorTypeSimple}
		default:
			return offset + 1, nil
		}
	}
	return offset, &TypeMismatchError{Offset: offset, Want: major, Got: major}
}

func validateIndefiniteChunks(s *Stream, offset int, major byte, depth int) (int, error) {
	p := offset + 1
	for {
		if AtBreak(s, p) {
			return p + 1, nil
		}
		lead := s.at(p, 1)
		if lead == nil {
			return offset, ErrShortBytes
		}
		chunkMajor, _ := splitInitialByte(lead[0])
		if chunkMajor != major {
			return offset, &TypeMismatchError{Offset: p, Want: major, Got: chunkMajor}
		}
		length, n := DecodeArgument(s, p)
		if n == 0 {
			return offset, ErrShortBytes
		}
		if s.at(p+n, int(length)) == nil {
			return offset, ErrShortBytes
		}
		p += n + int(length)
	}
}

func validateSequence(s *Stream, offset, depth int, isMap bool) (int, error) {
	_, addInfo := splitInitialByte(s.at(offset, 1)[0])
	if addInfo == addInfoIndefinite {
		p := offset + 1
		for {
			if AtBreak(s, p) {
				return p + 1, nil
			}
			var err error
			p, err = validateOne(s, p, depth+1)
			if err != nil {
				return offset, err
			}
			if isMap {
				p, err = validateOne(s, p, depth+1) // value
				if err != nil {
					return offset, err
				}
			}
		}
	}

	count, n := DecodeArgument(s, offset)
	if n == 0 {
		return offset, ErrShortBytes
	}
	p := offset + n
	items := count
	if isMap {
		items *= 2
	}
	for i := uint64(0); i < items; i++ {
		var err error
		p, err = validateOne(s, p, depth+1)
		if err != nil {
			return offset, err
		}
	}
	return p, nil
}
