package cbor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// StreamPrint writes a hex dump of the Stream's encoded region
// (buf[:position]) to w.
func StreamPrint(w io.Writer, s *Stream) {
	fmt.Fprintf(w, "% x\n", s.Bytes())
}

// StreamDecode drives decodeAt from offset 0 until the Stream's
// write position is reached, emitting an indented, human-readable
// dump to w. If an item fails to decode, it prints a one-line
// diagnostic naming the offset and offending byte and stops — it does
// not attempt to resynchronize and keep decoding.
func StreamDecode(w io.Writer, s *Stream) {
	offset := 0
	for offset < s.Len() {
		consumed := decodeAt(w, s, offset, 0, 0)
		if consumed == 0 {
			b := s.at(offset, 1)
			var got byte
			if b != nil {
				got = b[0]
			}
			fmt.Fprintf(w, "diagnostic: stuck at offset %d, byte 0x%02x\n", offset, got)
			return
		}
		offset += consumed
	}
}

func decodeAt(w io.Writer, s *Stream, offset, indent, depth int) int {
	pad := strings.Repeat(" ", indent)
	if depth > MaxDepth {
		fmt.Fprintf(w, "%sdiagnostic: max depth exceeded at offset %d\n", pad, offset)
		return 0
	}
	lead := s.at(offset, 1)
	if lead == nil {
		return 0
	}
	major, _ := splitInitialByte(lead[0])

	switch major {
	case majorTypeUint, majorTypeNegInt:
		v, n := DeserializeInt(s, offset)
		if n == 0 {
			return 0
		}
		fmt.Fprintf(w, "%s%d\n", pad, v)
		return n

	case majorTypeBytes:
		scratch := getScratch()
		defer putScratch(scratch)
		n := s.DeserializeByteString(offset, *scratch)
		if n == 0 {
			return 0
		}
		payload := scratchPayload(s, offset, *scratch)
		fmt.Fprintf(w, "%sh'%x'\n", pad, payload)
		return n

	case majorTypeText:
		scratch := getScratch()
		defer putScratch(scratch)
		n := s.DeserializeTextString(offset, *scratch)
		if n == 0 {
			return 0
		}
		payload := scratchPayload(s, offset, *scratch)
		fmt.Fprintf(w, "%s%s\n", pad, strconv.Quote(string(payload)))
		return n

	case majorTypeArray:
		return decodeSequence(w, s, offset, indent, depth, false)

	case majorTypeMap:
		return decodeSequence(w, s, offset, indent, depth, true)

	case majorTypeTag:
		return decodeTag(w, s, offset, pad, indent, depth)

	case majorTypeSimple:
		return decodeSimple(w, s, offset, pad)
	}
	return 0
}

// scratchPayload recovers the payload that DeserializeByteString/
// DeserializeTextString copied into scratch for the string at offset.
// It takes the length from the string's header rather than searching
// for the NUL terminator, so payloads containing 0x00 bytes are
// returned whole.
func scratchPayload(s *Stream, offset int, scratch []byte) []byte {
	length, _ := DecodeArgument(s, offset)
	return scratch[:length]
}

func decodeSequence(w io.Writer, s *Stream, offset, indent, depth int, isMap bool) int {
	pad := strings.Repeat(" ", indent)
	lead := s.at(offset, 1)
	_, addInfo := splitInitialByte(lead[0])

	kind := "array"
	if isMap {
		kind = "map"
	}

	if addInfo == addInfoIndefinite {
		fmt.Fprintf(w, "%s(%s, length: [indefinite])\n", pad, kind)
		p := offset + 1
		for {
			if AtBreak(s, p) {
				return p + 1 - offset
			}
			keyIndent := indent + 2
			if isMap {
				keyIndent = indent + 1
			}
			consumed := decodeAt(w, s, p, keyIndent, depth+1)
			if consumed == 0 {
				return 0
			}
			p += consumed
			if isMap {
				consumed = decodeAt(w, s, p, indent+2, depth+1)
				if consumed == 0 {
					return 0
				}
				p += consumed
			}
		}
	}

	var count uint64
	var n int
	if isMap {
		count, n = DeserializeMap(s, offset)
	} else {
		count, n = DeserializeArray(s, offset)
	}
	if n == 0 {
		return 0
	}
	fmt.Fprintf(w, "%s(%s, length: %d)\n", pad, kind, count)
	p := offset + n
	for i := uint64(0); i < count; i++ {
		keyIndent := indent + 2
		if isMap {
			keyIndent = indent + 1
		}
		consumed := decodeAt(w, s, p, keyIndent, depth+1)
		if consumed == 0 {
			return 0
		}
		p += consumed
		if isMap {
			consumed = decodeAt(w, s, p, indent+2, depth+1)
			if consumed == 0 {
				return 0
			}
			p += consumed
		}
	}
	return p - offset
}

func decodeTag(w io.Writer, s *Stream, offset int, pad string, indent, depth int) int {
	tagNum, tagLen := TagNumber(s, offset)
	if tagLen == 0 {
		return 0
	}
	fmt.Fprintf(w, "%stag %d\n", pad, tagNum)

	switch tagNum {
	case tagDateTimeString:
		t, n := DeserializeDateTime(s, offset)
		if n == 0 {
			return 0
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent+2), t.Format(time.RFC3339))
		return n
	case tagEpochSeconds:
		t, n := DeserializeEpoch(s, offset)
		if n == 0 {
			return 0
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", indent+2), t.Format(time.RFC3339))
		return n
	default:
		fmt.Fprintf(w, "%sunknown content\n", strings.Repeat(" ", indent+2))
		inner := decodeAt(w, s, offset+tagLen, indent+2, depth+1)
		if inner == 0 {
			return 0
		}
		return tagLen + inner
	}
}

func decodeSimple(w io.Writer, s *Stream, offset int, pad string) int {
	lead := s.at(offset, 1)
	switch lead[0] {
	case makeInitialByte(majorTypeSimple, simpleFalse):
		fmt.Fprintf(w, "%sfalse\n", pad)
		return 1
	case makeInitialByte(majorTypeSimple, simpleTrue):
		fmt.Fprintf(w, "%strue\n", pad)
		return 1
	case makeInitialByte(majorTypeSimple, simpleNull):
		fmt.Fprintf(w, "%snull\n", pad)
		return 1
	case makeInitialByte(majorTypeSimple, simpleUndefined):
		fmt.Fprintf(w, "%sundefined\n", pad)
		return 1
	case makeInitialByte(majorTypeSimple, simpleFloat16):
		v, n := DeserializeFloat16(s, offset)
		if n == 0 {
			return 0
		}
		fmt.Fprintf(w, "%s%v (float16)\n", pad, v)
		return n
	case makeInitialByte(majorTypeSimple, simpleFloat32):
		v, n := DeserializeFloat32(s, offset)
		if n == 0 {
			return 0
		}
		fmt.Fprintf(w, "%s%v (float32)\n", pad, v)
		return n
	case makeInitialByte(majorTypeSimple, simpleFloat64):
		v, n := DeserializeFloat64(s, offset)
		if n == 0 {
			return 0
		}
		fmt.Fprintf(w, "%s%v (float64)\n", pad, v)
		return n
	default:
		return 0
	}
}
