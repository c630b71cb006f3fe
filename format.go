package configfile

import (
	"path/filepath"
	"strings"
)

// Format identifies one of the serialization encodings this package can
// dispatch to. The set is closed; a new format is added by extending the
// constant list and binding a codec in codec.go.
type Format int

const (
	JSON Format = iota
	TOML
	XML
	YAML
	RON
	CBOR
	MessagePack
)

// String returns the lowercase format name used in diagnostics.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case XML:
		return "xml"
	case YAML:
		return "yaml"
	case RON:
		return "ron"
	case CBOR:
		return "cbor"
	case MessagePack:
		return "msgpack"
	}
	return "unknown"
}

// Ext returns the canonical file extension for the format, without the
// leading dot.
func (f Format) Ext() string {
	if f == YAML {
		return "yml"
	}
	return f.String()
}

// extensions maps lowercased file extensions to formats. Resolution only
// admits formats that have a codec bound in this build.
var extensions = map[string]Format{
	"json":    JSON,
	"toml":    TOML,
	"xml":     XML,
	"yaml":    YAML,
	"yml":     YAML,
	"ron":     RON,
	"cbor":    CBOR,
	"msgpack": MessagePack,
	"mp":      MessagePack,
}

// ParseFormat maps a file extension to its Format. The comparison is
// case-insensitive and a leading dot is accepted. It reports false for
// unknown extensions and for extensions whose format has no codec bound,
// leaving the caller to decide whether that is fatal.
func ParseFormat(ext string) (Format, bool) {
	f, ok := extensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok || codecFor(f) == nil {
		return 0, false
	}
	return f, true
}

// ResolveFormat infers the Format from the final dot-suffix of the file
// name at path. A path with no extension resolves as unrecognized.
func ResolveFormat(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, false
	}
	return ParseFormat(ext)
}
