// Package tests holds the rfc-examples table: definite/indefinite
// containers, tags and primitives drawn from RFC 7049 Appendix A,
// checked against both the decoder's diagnostic notation and the
// well-formedness validator. The table drives StreamDecode and
// Validate directly, and expected output is matched against this
// package's indented, multi-line diagnostic format.
package tests

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/corvid-labs/microcbor/cbor"
)

type rfcExample struct {
	name string
	want string
	hex  string
}

var rfcExamples = []rfcExample{
	{
		name: "text-a",
		want: "\"a\"\n",
		hex:  "6161",
	},
	{
		name: "zero",
		want: "0\n",
		hex:  "00",
	},
	{
		name: "minus-one",
		want: "-1\n",
		hex:  "20",
	},
	{
		name: "bytes-010203",
		want: "h'010203'\n",
		hex:  "43010203",
	},
	{
		name: "array-1-2-3",
		want: "(array, length: 3)\n  1\n  2\n  3\n",
		hex:  "83010203",
	},
	{
		name: "map-a1-b2",
		want: "(map, length: 2)\n \"a\"\n  1\n \"b\"\n  2\n",
		hex:  "a2616101616202",
	},
	{
		name: "indef-array-1-2",
		want: "(array, length: [indefinite])\n  1\n  2\n",
		hex:  "9f0102ff",
	},
	{
		name: "tag-epoch-datetime",
		want: "tag 1\n  2013-03-21T20:04:00Z\n",
		hex:  "c11a514b67b0",
	},
}

func TestRFCExamplesDecodeAndWellFormed(t *testing.T) {
	for _, ex := range rfcExamples {
		ex := ex
		t.Run(ex.name, func(t *testing.T) {
			raw, err := hex.DecodeString(ex.hex)
			if err != nil {
				t.Fatalf("bad hex %q: %v", ex.hex, err)
			}

			s := cbor.NewStreamFromBytes(raw)

			var buf bytes.Buffer
			cbor.StreamDecode(&buf, s)
			if buf.String() != ex.want {
				t.Errorf("StreamDecode: got %q, want %q", buf.String(), ex.want)
			}

			if err := cbor.Validate(s); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
