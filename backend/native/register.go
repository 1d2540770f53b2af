package native

import (
	"os"
	"sync"

	"github.com/gogpu/azure/backend"
)

type loader struct {
	path string
	once sync.Once
	lib  backend.Library
	err  error
}

func (ld *loader) load() backend.Library {
	ld.once.Do(func() {
		ld.lib, ld.err = open(ld.path)
	})
	return ld.lib
}

var (
	mu      sync.Mutex
	current *loader
)

func init() {
	Register("")
}

// Register installs the "native" factory for the library at path,
// replacing any earlier registration. An empty path means the
// EnvLibraryPath variable, or DefaultLibraryName when that is unset. The
// file is opened on first use.
func Register(path string) {
	if path == "" {
		path = os.Getenv(EnvLibraryPath)
	}
	if path == "" {
		path = DefaultLibraryName
	}
	ld := &loader{path: path}
	mu.Lock()
	current = ld
	mu.Unlock()
	backend.Register(backend.LibraryNative, ld.load)
}

// LoadError returns why the registered factory declined, or nil when it
// has not run yet or loaded successfully.
func LoadError() error {
	mu.Lock()
	ld := current
	mu.Unlock()
	return ld.err
}
