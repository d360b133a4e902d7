// Package cbor implements a CBOR (RFC 8949) encoder/decoder for
// constrained environments.
//
// Unlike general-purpose CBOR libraries, every serializer writes
// in-place into a caller-supplied, fixed-capacity byte buffer and
// every deserializer reads from such a buffer starting at a caller
// supplied offset. Nothing in this package grows a buffer or
// allocates on the hot path: a write that would not fit returns 0 and
// leaves the buffer untouched, and a read that would run past the end
// of the encoded data also returns 0. Callers that need to distinguish
// why a call returned 0 can reach for Validate or the error types in
// errors.go instead.
//
// The wire format is RFC 8949 compliant for the subset implemented
// here: unsigned/negative integers, byte and text strings, arrays and
// maps (definite and indefinite length), a single-item semantic tag,
// booleans, null/undefined, and 16/32/64-bit IEEE 754 floats. Encoders
// always emit the shortest argument form; decoders accept any valid,
// possibly non-shortest, form.
package cbor
