package cbor

import (
	"encoding/binary"
	"math"
)

// CBOR's multi-byte arguments and floats are always network byte
// order (big-endian), regardless of host endianness, and a float's
// wire representation is its IEEE 754 bit pattern reinterpreted as an
// unsigned integer of the same width. encoding/binary.BigEndian
// already gives the correct byte order, and math.Float32bits/
// Float64bits already give the bit-preserving reinterpretation, so
// those are used directly rather than hand-rolled. Only the
// half-precision conversion in halffloat.go has no standard-library
// equivalent and is hand-rolled.

func putUint16(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func putUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func putUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

func getUint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func getUint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func getUint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func float32Bits(f float32) uint32 { return math.Float32bits(f) }
func bitsToFloat32(u uint32) float32 { return math.Float32frombits(u) }
func float64Bits(f float64) uint64 { return math.Float64bits(f) }
func bitsToFloat64(u uint64) float64 { return math.Float64frombits(u) }
