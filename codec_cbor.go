package configfile

import cbor "github.com/fxamacker/cbor/v2"

type cborCodec struct{}

// CBOR (RFC 8949) is binary; stored files are not human-readable.
func (cborCodec) Name() string { return "cbor" }

func (cborCodec) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (cborCodec) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
