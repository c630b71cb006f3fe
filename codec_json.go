package configfile

import "encoding/json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

// Marshal emits indented JSON so stored files stay human-readable.
func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
