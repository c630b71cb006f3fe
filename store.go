package configfile

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Store encodes v using the format inferred from path's extension and writes
// it to path, creating parent directories as needed and replacing any
// existing file. An unrecognized extension fails with ErrUnsupportedFormat;
// StoreWithFormat covers extensionless or mismatched paths.
func Store(v any, path string) error {
	f, ok := ResolveFormat(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return StoreWithFormat(v, path, f)
}

// StoreWithFormat encodes v with the codec bound to f, ignoring the path's
// extension, and writes the result to path with overwrite semantics.
func StoreWithFormat(v any, path string, f Format) error {
	data, err := encode(v, f)
	if err != nil {
		return err
	}
	if err := EnsurePath(path); err != nil {
		return errors.Join(ErrEnsureDir, err)
	}
	return writeFile(path, data)
}

// StoreWithoutOverwrite behaves like Store but refuses to replace an
// existing file, failing with ErrFileExists and leaving the target
// untouched. The create is exclusive (O_EXCL), so a concurrent writer
// cannot slip in between the existence check and the write.
func StoreWithoutOverwrite(v any, path string) error {
	f, ok := ResolveFormat(path)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	data, err := encode(v, f)
	if err != nil {
		return err
	}
	if err := EnsurePath(path); err != nil {
		return errors.Join(ErrEnsureDir, err)
	}
	return createNew(path, data)
}

// encode runs the codec bound to f over v. Encoders that panic on
// unsupported kinds (yaml does, on funcs) are converted to ErrEncode.
func encode(v any, f Format) (data []byte, retErr error) {
	c := codecFor(f)
	if c == nil {
		return nil, fmt.Errorf("%w: no codec bound for %s", ErrUnsupportedFormat, f)
	}
	defer func() {
		if r := recover(); r != nil {
			data, retErr = nil, fmt.Errorf("%w as %s: %v", ErrEncode, c.Name(), r)
		}
	}()
	data, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w as %s: %w", ErrEncode, c.Name(), err)
	}
	return data, nil
}
