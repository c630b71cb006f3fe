package configfile

import "github.com/pelletier/go-toml/v2"

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
