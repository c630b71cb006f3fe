package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	modellib "github.com/ygrebnov/model"

	"github.com/ygrebnov/configfile/streams"
)

const defaultFileName = "config.yml"

// Provider manages the lifecycle of a configuration record of type T on top
// of the package-level load/store operations.
//
// A Provider[T] performs the following steps exactly once (it is safe to
// call Get from multiple goroutines):
//  1. Construct a new *T using the factory set via WithDefaultFn (or a
//     zero-value fallback).
//  2. If WithModel is set, bind a model.Model[T] to the same *T and call
//     SetDefaults() to populate zero values using `default` struct tags.
//  3. Resolve the configuration file path from either ${ENV_PREFIX}_CONFIG_PATH
//     or a standard user config directory (if persistence is enabled with
//     WithPersistence).
//  4. Load the record from the resolved file if it exists; in persistent
//     mode, create the file with the defaults when it is missing.
//
// Subsequent calls to Get() return the same pointer and metadata.
type Provider[T any] struct {
	mu          sync.RWMutex
	initOnce    sync.Once
	persist     bool
	dirName     string
	fileName    string
	envPrefix   string
	configPath  string
	cfg         *T
	defaultFn   func() *T
	streams     streams.IOStreams
	fileCreated bool
	initErr     error
	modelInit   ModelInit[T]
	model       *modellib.Model[T]
}

// Option configures a Provider at construction time. Options are composable
// and can be passed to New in any order.
type Option[T any] func(*Provider[T])

// New constructs a Provider[T] and applies all given options.
// If no WithDefaultFn is provided, New uses a zero-value factory.
func New[T any](opts ...Option[T]) *Provider[T] {
	p := &Provider[T]{fileName: defaultFileName}
	for _, opt := range opts {
		opt(p)
	}

	if p.defaultFn == nil {
		p.defaultFn = func() *T { var t T; return &t }
	}

	return p
}

// WithPersistence enables reading/writing the config file under a directory
// named `dirName` inside the OS user config directory (e.g.
// XDG_CONFIG_HOME/<dirName>/config.yml). The provider will create the file
// with defaults when it does not exist. Panics if dirName is empty.
func WithPersistence[T any](dirName string) Option[T] {
	return func(p *Provider[T]) {
		if dirName == "" {
			panic("configfile: WithPersistence: dirName cannot be empty")
		}
		p.persist = true
		p.dirName = dirName
	}
}

// WithFileName overrides the config file name used in persistent mode. The
// name's extension selects the storage format; any extension with a bound
// codec works (e.g. "settings.toml", "state.json"). Panics if the name is
// empty or its extension does not resolve to a supported format.
func WithFileName[T any](name string) Option[T] {
	return func(p *Provider[T]) {
		if name == "" {
			panic("configfile: WithFileName: name cannot be empty")
		}
		if _, ok := ResolveFormat(name); !ok {
			panic(fmt.Sprintf("configfile: WithFileName: unsupported extension in %q", name))
		}
		p.fileName = name
	}
}

// WithEnvPrefix sets the prefix used to honor ${PREFIX}_CONFIG_PATH as an
// absolute path to the config file, which takes precedence over persistence.
// Panics if prefix is empty.
func WithEnvPrefix[T any](prefix string) Option[T] {
	return func(p *Provider[T]) {
		if prefix == "" {
			panic("configfile: WithEnvPrefix: prefix cannot be empty")
		}
		p.envPrefix = prefix
	}
}

// WithDefaultFn registers a factory that returns a new *T. The factory is
// invoked once during Get() to construct the base record before the file is
// read. Panics if fn is nil.
func WithDefaultFn[T any](fn func() *T) Option[T] {
	return func(p *Provider[T]) {
		if fn == nil {
			panic("configfile: WithDefaultFn: fn cannot be nil")
		}
		p.defaultFn = fn
	}
}

// WithStreams wires user-facing message streams (e.g., for "created new
// config"/"loaded from" notifications and non-fatal warnings). Pass adapters
// from the companion streams package to route output to buffers, logs, or
// io.Discard.
func WithStreams[T any](s streams.IOStreams) Option[T] {
	return func(p *Provider[T]) {
		p.streams = s
	}
}

// ModelInit is a constructor hook that binds a model.Model[T] to the
// Provider-managed *T. Return the constructed model.Model[T] or an error.
type ModelInit[T any] func(*T) (*modellib.Model[T], error)

// WithModel enables integration with github.com/ygrebnov/model. The provided
// init function is called exactly once during the first Get() to build a
// model.Model[T] bound to the Provider's *T; the Provider then calls
// SetDefaults() before reading the file, so `default` struct tags only fill
// zero values. Panics if init is nil.
func WithModel[T any](init ModelInit[T]) Option[T] {
	return func(p *Provider[T]) {
		if init == nil {
			panic("configfile: WithModel: init cannot be nil")
		}
		p.modelInit = init
	}
}

// Get initializes and returns the final record pointer, the resolved file
// path (if any), whether the file was created on this run, and an error if
// initialization failed. Get is safe for concurrent use; initialization runs
// at most once.
func (p *Provider[T]) Get() (cfg *T, path string, fileCreated bool, err error) {
	p.initOnce.Do(func() {
		// 1) Construct default record instance
		p.cfg = p.defaultFn()

		// 2) Optionally construct model wrapper around the record to apply
		// `default`-tag values before the file is read.
		if p.modelInit != nil {
			mdl, err := p.modelInit(p.cfg)
			if err != nil {
				p.initErr = err
				return
			}
			p.model = mdl

			if err := p.model.SetDefaults(); err != nil {
				p.initErr = err
				return
			}
		}

		// 3) Resolve config path. If this fails, abort initialization.
		if err := p.resolveConfigPath(); err != nil {
			p.initErr = err
			return
		}
		if p.configPath == "" {
			// Non-persistent mode without a path override: defaults only.
			return
		}

		// 4) File operations. Read the record if the file exists; in
		// persistent mode, create it with the defaults when missing.
		found, e := Load(p.configPath, p.cfg)
		switch {
		case e != nil:
			p.initErr = e

		case !found && p.persist:
			if we := Store(p.cfg, p.configPath); we != nil {
				p.initErr = we
				return
			}
			p.fileCreated = true
			if p.streams != nil && p.streams.Out() != nil {
				fmt.Fprintf(p.streams.Out(), "configfile: created new config at %s\n", p.configPath)
			}
		case found && p.persist:
			if p.streams != nil && p.streams.Out() != nil {
				fmt.Fprintf(p.streams.Out(), "configfile: loaded from %s\n", p.configPath)
			}
		}
	})

	// After once: return cached state or error
	if p.initErr != nil {
		return nil, "", false, p.initErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg, p.configPath, p.fileCreated, nil
}

func (p *Provider[T]) resolveConfigPath() error {
	if p.envPrefix != "" {
		if configPath := os.Getenv(p.envPrefix + "_CONFIG_PATH"); configPath != "" {
			p.configPath = configPath
			return nil
		}
	}
	if p.dirName == "" {
		// Non-persistent mode.
		return nil
	}
	// Prefer XDG_CONFIG_HOME explicitly when set, then fall back to os.UserConfigDir.
	userConfigDir := os.Getenv("XDG_CONFIG_HOME")
	if userConfigDir == "" {
		var err error
		userConfigDir, err = os.UserConfigDir()
		if err != nil {
			// Critical when persistent; otherwise emit a note to streams if available.
			if p.persist {
				return fmt.Errorf("cannot determine user config dir: %w", err)
			}
			if p.streams != nil && p.streams.ErrOut() != nil {
				fmt.Fprintf(
					p.streams.ErrOut(),
					"configfile: warning: cannot determine user config dir (%v); proceeding without reading a config file\n",
					err,
				)
			}
			return nil
		}
	}
	p.configPath = filepath.Join(userConfigDir, p.dirName, p.fileName)
	return nil
}
