package configfile

// Codec encodes and decodes records for one format. Implementations wrap an
// external serialization library; this package owns no parsing or printing
// logic of its own, so output for a given format is exactly what the bound
// library produces.
type Codec interface {
	// Name returns the codec identifier used for diagnostics.
	Name() string
	// Marshal serializes v into bytes, pretty-printed where the underlying
	// library supports it.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
}

// codecs binds each Format to its codec. A format absent from this map has
// no collaborator in this build: its extension does not resolve and explicit
// dispatch to it fails with ErrUnsupportedFormat. RON stays unbound because
// no RON codec exists for Go.
var codecs = map[Format]Codec{
	JSON:        jsonCodec{},
	TOML:        tomlCodec{},
	XML:         xmlCodec{},
	YAML:        yamlCodec{},
	CBOR:        cborCodec{},
	MessagePack: msgpackCodec{},
}

func codecFor(f Format) Codec { return codecs[f] }
