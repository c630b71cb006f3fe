package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads the file at path, infers its format from the file extension and
// decodes the contents into v. It reports found=false with a nil error when
// the file does not exist, so callers can distinguish "nothing there" from
// "something went wrong"; every other read failure is returned. An
// unrecognized extension fails with ErrUnsupportedFormat.
func Load(path string, v any) (found bool, err error) {
	f, ok := ResolveFormat(path)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return LoadWithFormat(path, f, v)
}

// LoadWithFormat decodes the file at path into v using the codec bound to f,
// ignoring the path's extension. Missing-file semantics are those of Load.
func LoadWithFormat(path string, f Format, v any) (bool, error) {
	c := codecFor(f)
	if c == nil {
		return false, fmt.Errorf("%w: no codec bound for %s", ErrUnsupportedFormat, f)
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := c.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w %s as %s: %w", ErrDecode, path, c.Name(), err)
	}
	return true, nil
}

// LoadOrDefault loads the record at path, returning a zero-valued *T when
// the file does not exist. Decode and other I/O failures still propagate.
// Callers needing richer defaults than the zero value should use a Provider
// with WithDefaultFn or WithModel.
func LoadOrDefault[T any](path string) (*T, error) {
	v := new(T)
	if _, err := Load(path, v); err != nil {
		return nil, err
	}
	return v, nil
}
