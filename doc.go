// Package configfile loads and stores structured records in configuration
// files, selecting the serialization format from the file extension.
//
// Supported formats are JSON, TOML, XML, YAML, CBOR and MessagePack; the
// actual encoding and decoding is delegated to one external codec per
// format. Extension matching is case-insensitive (".toml" and ".TOML" are
// the same), and yaml/yml are synonyms.
//
// Missing files are not errors on the load path: Load reports found=false
// so callers can fall back to defaults, and LoadOrDefault does exactly that
// with the record type's zero value.
//
// Typical usage:
//
//	type Cfg struct {
//	    Host string `json:"host" yaml:"host" toml:"host"`
//	    Port int    `json:"port" yaml:"port" toml:"port"`
//	}
//
//	// write
//	err := configfile.Store(Cfg{Host: "example.com", Port: 443}, "/tmp/myapp.toml")
//
//	// read
//	var cfg Cfg
//	found, err := configfile.Load("/tmp/myapp.toml", &cfg)
//
// For application-lifecycle concerns (a config file under the user config
// directory, created on first run with defaults), use Provider:
//
//	p := configfile.New[Cfg](
//	    configfile.WithPersistence[Cfg]("myapp"),
//	    configfile.WithFileName[Cfg]("config.toml"),
//	    configfile.WithDefaultFn(func() *Cfg { return &Cfg{Port: 443} }),
//	)
//	cfg, path, created, err := p.Get()
package configfile
