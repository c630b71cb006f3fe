package configfile

import "encoding/xml"

type xmlCodec struct{}

func (xmlCodec) Name() string { return "xml" }

// Marshal emits indented XML. Records must be XML-encodable structs;
// encoding/xml does not support bare maps.
func (xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.MarshalIndent(v, "", "  ")
}

func (xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
