package configfile

import "github.com/vmihailenco/msgpack/v5"

type msgpackCodec struct{}

// MessagePack is binary; stored files are not human-readable.
func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
