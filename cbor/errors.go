package cbor

import "fmt"

// The core serializer/deserializer functions return a plain byte
// count; 0 means refusal and carries no further detail, matching the
// embedded C ABI this package models. Validate, StreamWriter and
// StreamReader need more than a count to produce a useful error, so
// they classify failures with the small error taxonomy below. Nothing in the typed serializers/deserializers themselves
// returns one of these; they are strictly an ambient, internal-facing
// layer.

// Error is satisfied by every error this package's ambient layer
// (Validate, StreamWriter, StreamReader) produces.
type Error interface {
	error

	// Resumable reports whether the byte stream is still aligned
	// after this error, i.e. whether a caller could skip the
	// offending item and keep decoding the rest of the stream.
	Resumable() bool
}

var (
	// ErrShortBytes means a header or payload needed more bytes
	// than remain before the stream's write position.
	ErrShortBytes error = errShort{}

	// ErrMaxDepthExceeded means nested container recursion passed
	// MaxDepth.
	ErrMaxDepthExceeded error = errDepth{}

	// ErrReservedAddInfo means the initial byte's additional info
	// was one of the reserved values 28, 29, or 30.
	ErrReservedAddInfo error = errReserved{}

	// ErrCapacityExhausted means a StreamWriter call could not fit
	// its bytes in the remaining Stream capacity.
	ErrCapacityExhausted error = errCapacity{}

	// ErrNonCanonicalLength means a StreamReader configured with
	// SetStrict(true) found an argument encoded in a wider form than
	// its value required.
	ErrNonCanonicalLength error = errNonCanonical{}
)

type errCapacity struct{}

func (errCapacity) Error() string   { return "cbor: capacity exhausted" }
func (errCapacity) Resumable() bool { return false }

type errNonCanonical struct{}

func (errNonCanonical) Error() string   { return "cbor: non-canonical argument length" }
func (errNonCanonical) Resumable() bool { return true }

type errShort struct{}

func (errShort) Error() string   { return "cbor: short buffer" }
func (errShort) Resumable() bool { return false }

type errDepth struct{}

func (errDepth) Error() string   { return "cbor: max nesting depth exceeded" }
func (errDepth) Resumable() bool { return false }

type errReserved struct{}

func (errReserved) Error() string   { return "cbor: reserved additional info value" }
func (errReserved) Resumable() bool { return false }

// TypeMismatchError reports that a deserializer was asked for a major
// type that does not match the initial byte at the given offset.
type TypeMismatchError struct {
	Offset int
	Want   byte
	Got    byte
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cbor: at offset %d: want major type %d, got %d", e.Offset, e.Want, e.Got)
}

// Resumable is true: the caller can still step over the mistyped item.
func (e *TypeMismatchError) Resumable() bool { return true }

// OutputTooSmallError reports that a string deserializer's caller
// supplied output buffer cannot hold payload+terminator.
type OutputTooSmallError struct {
	Need int
	Have int
}

func (e *OutputTooSmallError) Error() string {
	return fmt.Sprintf("cbor: output buffer too small: need %d, have %d", e.Need, e.Have)
}

func (e *OutputTooSmallError) Resumable() bool { return true }
