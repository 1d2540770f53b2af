package azure

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/azure/backend"
)

type libraryBox struct {
	lib backend.Library
}

var pinned atomic.Pointer[libraryBox]

// UseLibrary pins the library used by wrappers created afterwards.
// Existing wrappers keep the library that created them. Pass nil to go
// back to registry selection.
func UseLibrary(lib backend.Library) {
	if lib == nil {
		pinned.Store(nil)
		return
	}
	propagateLogger(lib, Logger())
	pinned.Store(&libraryBox{lib: lib})
	Logger().Debug("azure: library pinned", "library", lib.Name())
}

func pinnedLibrary() backend.Library {
	if b := pinned.Load(); b != nil {
		return b.lib
	}
	return nil
}

// CurrentLibrary returns the library new wrappers use: the pinned one, or
// the highest priority registered library.
func CurrentLibrary() (backend.Library, error) {
	if lib := pinnedLibrary(); lib != nil {
		return lib, nil
	}
	lib := backend.Default()
	if lib == nil {
		return nil, fmt.Errorf("%w (registered: %v)", ErrNoLibrary, backend.Available())
	}
	return lib, nil
}
