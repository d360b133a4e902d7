package cbor

// Worst-case encoded sizes for fixed-width items, useful for sizing a
// Stream's capacity up front. Variable-length items (strings, and any
// container's nested items) add their own length on top of the prefix
// size listed here.
const (
	IntSize         = 9 // worst case: 9-byte argument form
	UintSize        = 9
	BoolSize        = 1
	NilSize         = 1
	Float16Size     = 3
	Float32Size     = 5
	Float64Size     = 9
	ArrayHeaderSize = 9
	MapHeaderSize   = 9
	TagHeaderSize   = 9
	BreakSize       = 1
	// BytesHeaderSize/TextHeaderSize: add len(payload) for the total.
	BytesHeaderSize = 9
	TextHeaderSize  = 9
)
