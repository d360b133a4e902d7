package cbor

// Stream is a fixed-capacity byte window with a write cursor. Every
// serializer in this package appends to a Stream; every deserializer
// reads from one at a caller-given offset. A Stream never grows: once
// its backing buffer is full, writes return 0 and leave it untouched.
//
// The zero Stream is not usable; call Init (or NewStream) first.
type Stream struct {
	buf      []byte
	pos      int
	owned    bool
}

// NewStream allocates an internally owned buffer of the given
// capacity and returns an initialized Stream. Destroy releases it.
func NewStream(capacity int) *Stream {
	s := &Stream{}
	s.Init(capacity, nil)
	return s
}

// NewStreamOver initializes a Stream over caller-owned storage. The
// Stream never reallocates external, and Destroy only drops the
// Stream's reference to it without touching its bytes.
func NewStreamOver(external []byte) *Stream {
	s := &Stream{}
	s.Init(len(external), external)
	return s
}

// NewStreamFromBytes initializes a read-only Stream directly over an
// already-encoded byte slice: position starts at len(data) rather than
// 0, so the whole slice is immediately visible to Deserialize*,
// Validate, and StreamDecode. Writing through the returned Stream is
// still possible but will typically refuse immediately, since
// capacity equals len(data).
func NewStreamFromBytes(data []byte) *Stream {
	s := &Stream{buf: data, pos: len(data), owned: false}
	return s
}

// Init binds capacity and, if external is nil, acquires an internally
// owned buffer of that capacity; position is reset to 0. Mixing modes
// on the same Stream (external then internal, or vice versa) is not
// supported — Init always rebinds from scratch per the mode given.
func (s *Stream) Init(capacity int, external []byte) {
	if external != nil {
		s.buf = external[:capacity]
		s.owned = false
	} else {
		s.buf = make([]byte, capacity)
		s.owned = true
	}
	s.pos = 0
}

// Clear resets the write position to 0. It does not zero the buffer,
// matching the C-derived semantics this package models: bytes below
// the new position are simply no longer considered "in" the stream.
func (s *Stream) Clear() {
	s.pos = 0
}

// Destroy releases an internally acquired buffer and zeroes the
// Stream's fields. For a Stream bound to external storage it only
// drops the reference; the storage's bytes are left untouched.
func (s *Stream) Destroy() {
	s.buf = nil
	s.pos = 0
	s.owned = false
}

// Cap returns the Stream's total capacity.
func (s *Stream) Cap() int { return len(s.buf) }

// Len returns the number of bytes currently holding encoded data;
// equivalently, the write position.
func (s *Stream) Len() int { return s.pos }

// Bytes returns the encoded prefix of the Stream's buffer, i.e.
// buf[:position]. The returned slice aliases the Stream's storage and
// is only valid until the next write or Clear/Destroy.
func (s *Stream) Bytes() []byte { return s.buf[:s.pos] }

// AtEnd reports whether offset is at or past the write position, i.e.
// no further item could start there. AtEnd is defined against
// position, not position-1.
func (s *Stream) AtEnd(offset int) bool {
	return offset >= s.pos
}

// fits reports whether n more bytes can be written at the current
// position without crossing capacity. Every serializer in this
// package funnels its bounds check through this one predicate;
// duplicating it per call site is a common source of off-by-ones.
func (s *Stream) fits(n int) bool {
	return s.pos+n <= len(s.buf)
}

// reserve returns the byte slice of length n starting at the current
// position and advances position by n. The caller must have already
// checked fits(n); reserve itself does not check bounds, so every
// caller in this package calls fits first and bails out (returning 0)
// on failure before ever reaching reserve.
func (s *Stream) reserve(n int) []byte {
	start := s.pos
	s.pos += n
	return s.buf[start:s.pos]
}

// at returns the byte slice of length n starting at offset, or nil if
// that range would run past the write position. Deserializers use
// this instead of slicing s.buf directly so that reads past position
// (even if physically present in the backing array) are rejected —
// position is the authoritative boundary of "encoded data", matching
// Stream's invariant.
func (s *Stream) at(offset, n int) []byte {
	if offset < 0 || n < 0 || offset+n > s.pos {
		return nil
	}
	return s.buf[offset : offset+n]
}
