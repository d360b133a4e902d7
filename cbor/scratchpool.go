package cbor

import "sync"

// The pretty-printer (diag.go) needs a scratch buffer to copy string
// payloads into before formatting them, since DeserializeByteString/
// DeserializeTextString require a caller-supplied destination. The
// pool hands out fixed-size buffers rather than letting them grow: a
// pretty-printer scratch buffer is diagnostic tooling, not the
// codec's hot path, but there's still no reason to let it grow
// without bound.

var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, scratchSize)
		return &b
	},
}

func getScratch() *[]byte {
	return scratchPool.Get().(*[]byte)
}

func putScratch(b *[]byte) {
	scratchPool.Put(b)
}
