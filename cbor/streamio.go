package cbor

// StreamWriter and StreamReader are chainable convenience wrappers
// over a Stream. Both report the same 0-bytes-written/consumed
// refusal their underlying Stream calls do, but surface it as a
// sticky error after the first failure so a chain of calls can be
// written without checking each one individually.

// StreamWriter sequences writes to a Stream, stopping at the first one
// that does not fit.
type StreamWriter struct {
	s   *Stream
	err error
}

// NewStreamWriter wraps s for chained writes.
func NewStreamWriter(s *Stream) *StreamWriter { return &StreamWriter{s: s} }

// Err returns the first error encountered, or nil if every call so
// far has succeeded.
func (w *StreamWriter) Err() error { return w.err }

func (w *StreamWriter) record(n int) {
	if w.err == nil && n == 0 {
		w.err = ErrCapacityExhausted
	}
}

// Uint writes an unsigned integer. It is a no-op once Err is set.
func (w *StreamWriter) Uint(v uint64) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeUint(v))
	return w
}

// Int writes a signed integer. It is a no-op once Err is set.
func (w *StreamWriter) Int(v int64) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeInt(v))
	return w
}

// Bool writes a boolean. It is a no-op once Err is set.
func (w *StreamWriter) Bool(v bool) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeBool(v))
	return w
}

// Bytes writes a byte string. It is a no-op once Err is set.
func (w *StreamWriter) Bytes(v []byte) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeByteString(v))
	return w
}

// Text writes a text string. It is a no-op once Err is set.
func (w *StreamWriter) Text(v string) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeTextString(v))
	return w
}

// ArrayHeader writes a definite-length array header. It is a no-op
// once Err is set.
func (w *StreamWriter) ArrayHeader(count uint64) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeArray(count))
	return w
}

// MapHeader writes a definite-length map header. It is a no-op once
// Err is set.
func (w *StreamWriter) MapHeader(count uint64) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeMap(count))
	return w
}

// Tag writes a semantic tag. It is a no-op once Err is set.
func (w *StreamWriter) Tag(tag uint64) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.WriteTag(tag))
	return w
}

// Float32 writes a single-precision float. It is a no-op once Err is
// set.
func (w *StreamWriter) Float32(v float32) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeFloat32(v))
	return w
}

// Float64 writes a double-precision float. It is a no-op once Err is
// set.
func (w *StreamWriter) Float64(v float64) *StreamWriter {
	if w.err != nil {
		return w
	}
	w.record(w.s.SerializeFloat64(v))
	return w
}

// StreamReader sequences reads from a Stream starting at offset 0,
// optionally enforcing canonical (shortest-form) argument encodings.
type StreamReader struct {
	s      *Stream
	offset int
	strict bool
	err    error
}

// NewStreamReader wraps s for chained sequential reads.
func NewStreamReader(s *Stream) *StreamReader { return &StreamReader{s: s} }

// SetStrict enables rejection of non-shortest-form arguments, for
// callers that need canonical CBOR rather than merely well-formed
// CBOR.
func (r *StreamReader) SetStrict(strict bool) *StreamReader {
	r.strict = strict
	return r
}

// Err returns the first error encountered, or nil.
func (r *StreamReader) Err() error { return r.err }

// Offset returns the reader's current position in the Stream.
func (r *StreamReader) Offset() int { return r.offset }

// AtEnd reports whether the reader has consumed the whole Stream.
func (r *StreamReader) AtEnd() bool { return r.s.AtEnd(r.offset) }

func (r *StreamReader) checkCanonical() bool {
	if !r.strict {
		return true
	}
	if isNonCanonicalArgument(r.s, r.offset) {
		r.err = ErrNonCanonicalLength
		return false
	}
	return true
}

// Uint reads an unsigned integer. It returns 0 once Err is set.
func (r *StreamReader) Uint() uint64 {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	v, n := DeserializeUint(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeUint}
		return 0
	}
	r.offset += n
	return v
}

// Int reads a signed integer. It returns 0 once Err is set.
func (r *StreamReader) Int() int64 {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	v, n := DeserializeInt(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset}
		return 0
	}
	r.offset += n
	return v
}

// Bool reads a boolean. It returns false once Err is set.
func (r *StreamReader) Bool() bool {
	if r.err != nil {
		return false
	}
	v, n := DeserializeBool(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeSimple}
		return false
	}
	r.offset += n
	return v
}

// Bytes reads a byte string into out. It returns 0 once Err is set.
func (r *StreamReader) Bytes(out []byte) int {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	return r.readStringLike(majorTypeBytes, out, r.s.DeserializeByteString)
}

// Text reads a text string into out. It returns 0 once Err is set.
func (r *StreamReader) Text(out []byte) int {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	return r.readStringLike(majorTypeText, out, r.s.DeserializeTextString)
}

// readStringLike classifies why deserialize (DeserializeByteString or
// DeserializeTextString) failed before delegating to it, so the
// reader can report OutputTooSmallError instead of the less precise
// TypeMismatchError when the major type was right but out was too
// small to hold the payload plus its NUL terminator.
func (r *StreamReader) readStringLike(wantMajor byte, out []byte, deserialize func(offset int, out []byte) int) int {
	lead := r.s.at(r.offset, 1)
	if lead == nil {
		r.err = &TypeMismatchError{Offset: r.offset, Want: wantMajor}
		return 0
	}
	if major, _ := splitInitialByte(lead[0]); major != wantMajor {
		r.err = &TypeMismatchError{Offset: r.offset, Want: wantMajor, Got: major}
		return 0
	}
	length, headerLen := DecodeArgument(r.s, r.offset)
	if headerLen == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: wantMajor}
		return 0
	}
	if need := int(length) + 1; len(out) < need {
		r.err = &OutputTooSmallError{Need: need, Have: len(out)}
		return 0
	}
	n := deserialize(r.offset, out)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: wantMajor}
		return 0
	}
	r.offset += n
	return n
}

// ArrayHeader reads an array header, returning its count (0 for an
// indefinite header — use AtBreak to iterate that case).
func (r *StreamReader) ArrayHeader() uint64 {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	count, n := DeserializeArray(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeArray}
		return 0
	}
	r.offset += n
	return count
}

// MapHeader reads a map header, returning its pair count.
func (r *StreamReader) MapHeader() uint64 {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	count, n := DeserializeMap(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeMap}
		return 0
	}
	r.offset += n
	return count
}

// Tag reads a semantic tag number.
func (r *StreamReader) Tag() uint64 {
	if r.err != nil || !r.checkCanonical() {
		return 0
	}
	tag, n := TagNumber(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeTag}
		return 0
	}
	r.offset += n
	return tag
}

// Float32 reads a single-precision float.
func (r *StreamReader) Float32() float32 {
	if r.err != nil {
		return 0
	}
	v, n := DeserializeFloat32(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeSimple}
		return 0
	}
	r.offset += n
	return v
}

// Float64 reads a double-precision float.
func (r *StreamReader) Float64() float64 {
	if r.err != nil {
		return 0
	}
	v, n := DeserializeFloat64(r.s, r.offset)
	if n == 0 {
		r.err = &TypeMismatchError{Offset: r.offset, Want: majorTypeSimple}
		return 0
	}
	r.offset += n
	return v
}

// isNonCanonicalArgument reports whether the argument header at
// offset uses a wider follow-up form than its value required — e.g.
// addInfoUint16 encoding a value that would fit in addInfoUint8. It
// applies uniformly to every major type that routes through
// EncodeArgument (ints, strings, arrays, maps, tags).
func isNonCanonicalArgument(s *Stream, offset int) bool {
	lead := s.at(offset, 1)
	if lead == nil {
		return false
	}
	_, addInfo := splitInitialByte(lead[0])
	switch addInfo {
	case addInfoUint8:
		b := s.at(offset, 2)
		return b != nil && b[1] <= addInfoDirect
	case addInfoUint16:
		b := s.at(offset, 3)
		return b != nil && getUint16(b[1:]) <= 0xff
	case addInfoUint32:
		b := s.at(offset, 5)
		return b != nil && getUint32(b[1:]) <= 0xffff
	case addInfoUint64:
		b := s.at(offset, 9)
		return b != nil && getUint64(b[1:]) <= 0xffffffff
	default:
		return false
	}
}
