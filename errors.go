package configfile

import (
	"errors"
	"io/fs"
)

// Exported error categories returned by this package. Failures are wrapped,
// so callers detect classes with errors.Is/As.
//   - ErrUnsupportedFormat: extension unrecognized, or no codec bound for
//     the requested format.
//   - ErrFileExists: StoreWithoutOverwrite found the target already present.
//   - ErrDecode: the codec could not parse the file's contents.
//   - ErrEncode: the codec could not serialize the record.
//   - ErrEnsureDir: failure to create parent directories for a target file.
//   - ErrWrite: failure to write the encoded bytes to disk.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrFileExists        = errors.New("file already exists")
	ErrDecode            = errors.New("decode file")
	ErrEncode            = errors.New("encode record")
	ErrEnsureDir         = errors.New("ensure parent dir")
	ErrWrite             = errors.New("write file")
)

// ErrNotExist is the missing-file sub-kind of read failures. Load maps it to
// an absent result rather than an error; it is re-exported so callers that
// want the strict policy can test for it without importing io/fs.
var ErrNotExist = fs.ErrNotExist
