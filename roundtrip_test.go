package configfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// record exercised across every bound format. XML cannot encode maps, so the
// shape sticks to structs, slices and scalars.
type rtRecord struct {
	Host  string   `json:"host" yaml:"host" toml:"host" xml:"host"`
	Port  int      `json:"port" yaml:"port" toml:"port" xml:"port"`
	Tags  []string `json:"tags" yaml:"tags" toml:"tags" xml:"tags"`
	Inner rtInner  `json:"inner" yaml:"inner" toml:"inner" xml:"inner"`
}

type rtInner struct {
	Answer int `json:"answer" yaml:"answer" toml:"answer" xml:"answer"`
}

func exampleRecord() rtRecord {
	return rtRecord{
		Host:  "example.com",
		Port:  443,
		Tags:  []string{"example", "test"},
		Inner: rtInner{Answer: 42},
	}
}

func TestRoundTrip(t *testing.T) {
	formats := []Format{JSON, TOML, XML, YAML, CBOR, MessagePack}

	for _, f := range formats {
		f := f
		t.Run(f.String(), func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "config."+f.Ext())
			in := exampleRecord()

			require.NoError(t, Store(&in, p))

			var out rtRecord
			found, err := Load(p, &out)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, in, out)
		})
	}
}

func TestRoundTripUppercaseExtension(t *testing.T) {
	p := filepath.Join(t.TempDir(), "CONFIG.YML")
	in := exampleRecord()

	require.NoError(t, Store(&in, p))

	var out rtRecord
	found, err := Load(p, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestFormatOverrideRoundTrip(t *testing.T) {
	// Extension says json, stored bytes are yaml.
	p := filepath.Join(t.TempDir(), "config.json")
	in := exampleRecord()

	require.NoError(t, StoreWithFormat(&in, p, YAML))

	var out rtRecord
	found, err := LoadWithFormat(p, YAML, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)

	// Extension-based load now tries the json codec and fails to decode.
	var wrong rtRecord
	_, err = Load(p, &wrong)
	require.ErrorIs(t, err, ErrDecode)
}
