package configfile

// Addressable is implemented by record types that declare their own
// canonical persistence path, letting callers load and store without
// repeating the location on every call.
type Addressable interface {
	ConfigPath() string
}

// LoadSelf loads v from its canonical path. Semantics are those of Load.
func LoadSelf(v Addressable) (bool, error) {
	return Load(v.ConfigPath(), v)
}

// StoreSelf stores v at its canonical path. Semantics are those of Store.
func StoreSelf(v Addressable) error {
	return Store(v, v.ConfigPath())
}

// StoreSelfWithoutOverwrite stores v at its canonical path unless a file is
// already present there.
func StoreSelfWithoutOverwrite(v Addressable) error {
	return StoreWithoutOverwrite(v, v.ConfigPath())
}
