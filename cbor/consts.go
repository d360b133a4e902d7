package cbor

// CBOR major types (top 3 bits of the initial byte).
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8, content unvalidated)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // floats, simple values, break
)

// Additional info values (low 5 bits of the initial byte).
const (
	addInfoDirect     = 23 // 0..23 encode the argument directly
	addInfoUint8      = 24 // 1-byte argument follows
	addInfoUint16     = 25 // 2-byte argument follows
	addInfoUint32     = 26 // 4-byte argument follows
	addInfoUint64     = 27 // 8-byte argument follows
	addInfoIndefinite = 31 // indefinite length / break
)

// Simple values under major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// The two tags this package gives first-class encoder/decoder support
// to. Any other tag number can still be written/observed through
// WriteTag/AtTag/TagNumber.
const (
	tagDateTimeString = 0 // RFC 3339 date/time text string
	tagEpochSeconds   = 1 // unsigned epoch seconds
)

// MaxDepth bounds the recursion of Validate and the pretty-printer
// against pathological nesting in untrusted input. It is a variable,
// not a constant, so a caller embedding this package can raise or
// lower it for their platform's stack.
var MaxDepth = 32

// scratchSize is the default size of the pretty-printer's string
// decode scratch buffer.
const scratchSize = 1024

func makeInitialByte(majorType, addInfo byte) byte {
	return (majorType << 5) | (addInfo & 0x1f)
}

func splitInitialByte(b byte) (majorType, addInfo byte) {
	return b >> 5, b & 0x1f
}
