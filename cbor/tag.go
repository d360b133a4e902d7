package cbor

import "time"

// WriteTag writes a semantic tag (major type 6) immediately before
// the item it annotates, which the caller serializes next. For tags
// 0..23 this is the one-byte form 0xC0|tag; for larger tags it falls
// back to the general encode_argument(6, tag) form, so DecodeArgument
// (and hence TagNumber) handles both transparently.
func (s *Stream) WriteTag(tag uint64) int {
	return EncodeArgument(s, majorTypeTag, tag)
}

// AtTag reports whether the byte at offset carries major type 6, or
// whether the stream is at its end — both cases mean "there is no
// tagged item to read here as anything else".
func AtTag(s *Stream, offset int) bool {
	if s.AtEnd(offset) {
		return true
	}
	lead := s.at(offset, 1)
	if lead == nil {
		return true
	}
	major, _ := splitInitialByte(lead[0])
	return major == majorTypeTag
}

// TagNumber reads the tag number at offset. It returns (0, 0) if the
// major type at offset is not 6.
func TagNumber(s *Stream, offset int) (tag uint64, n int) {
	lead := s.at(offset, 1)
	if lead == nil {
		return 0, 0
	}
	major, _ := splitInitialByte(lead[0])
	if major != majorTypeTag {
		return 0, 0
	}
	return DecodeArgument(s, offset)
}

// dateTimeLayout is RFC 3339 with a mandatory "Z" UTC designator and
// no fractional seconds: exactly 20 characters ("YYYY-MM-DDTHH:MM:SSZ"),
// so a 21-byte output buffer (20 chars + NUL) always suffices.
const dateTimeLayout = "2006-01-02T15:04:05Z"

// SerializeDateTime writes tag 0 followed by t, formatted in UTC as an
// RFC 3339 text string of exactly 20 characters. It returns the total
// bytes written, or 0 on capacity exhaustion.
func (s *Stream) SerializeDateTime(t time.Time) int {
	start := s.pos
	if s.WriteTag(tagDateTimeString) == 0 {
		return 0
	}
	text := t.UTC().Format(dateTimeLayout)
	if s.SerializeTextString(text) == 0 {
		s.pos = start
		return 0
	}
	return s.pos - start
}

// DeserializeDateTime reads tag 0 and its RFC 3339 text string at
// offset into a time.Time. It returns (zero, 0) if offset does not
// hold tag 0 followed by a text string, or if that text fails to
// parse as RFC 3339.
func DeserializeDateTime(s *Stream, offset int) (t time.Time, n int) {
	tag, tagLen := TagNumber(s, offset)
	if tagLen == 0 || tag != tagDateTimeString {
		return time.Time{}, 0
	}
	strOffset := offset + tagLen
	lead := s.at(strOffset, 1)
	if lead == nil {
		return time.Time{}, 0
	}
	if major, _ := splitInitialByte(lead[0]); major != majorTypeText {
		return time.Time{}, 0
	}
	length, headerLen := DecodeArgument(s, strOffset)
	if headerLen == 0 {
		return time.Time{}, 0
	}
	payload := s.at(strOffset+headerLen, int(length))
	if payload == nil {
		return time.Time{}, 0
	}
	parsed, err := time.Parse(time.RFC3339, string(payload))
	if err != nil {
		return time.Time{}, 0
	}
	return parsed, tagLen + headerLen + int(length)
}

// SerializeEpoch writes tag 1 followed by t's Unix time as an
// unsigned integer. Negative epochs are not supported by the encoder:
// t before the Unix epoch returns 0 without writing anything.
func (s *Stream) SerializeEpoch(t time.Time) int {
	secs := t.Unix()
	if secs < 0 {
		return 0
	}
	start := s.pos
	if s.WriteTag(tagEpochSeconds) == 0 {
		return 0
	}
	if s.SerializeUint(uint64(secs)) == 0 {
		s.pos = start
		return 0
	}
	return s.pos - start
}

// DeserializeEpoch reads tag 1 and its unsigned-integer payload at
// offset, returning the corresponding UTC time.Time.
func DeserializeEpoch(s *Stream, offset int) (t time.Time, n int) {
	tag, tagLen := TagNumber(s, offset)
	if tagLen == 0 || tag != tagEpochSeconds {
		return time.Time{}, 0
	}
	secs, secLen := DeserializeUint(s, offset+tagLen)
	if secLen == 0 {
		return time.Time{}, 0
	}
	return time.Unix(int64(secs), 0).UTC(), tagLen + secLen
}
