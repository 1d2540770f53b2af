package backend

import (
	"fmt"
	"sort"

	"github.com/gogpu/gpucontext"
)

// Library names.
const (
	LibraryNative   = "native"
	LibrarySoftware = "software"
)

// LibraryFactory creates a library instance. A factory may return nil when
// the library cannot be used on this system.
type LibraryFactory func() Library

// Priority order for library selection (first available wins).
// Native > Software (software is the fallback).
var libraries = gpucontext.NewRegistry[Library](
	gpucontext.WithPriority(LibraryNative, LibrarySoftware),
)

// Register registers a library factory with the given name.
// This is typically called from init() functions in library packages.
// If a library with the same name is already registered, it is replaced.
func Register(name string, factory LibraryFactory) {
	if factory == nil {
		panic("backend: Register factory is nil")
	}
	libraries.Register(name, factory)
}

// Unregister removes a library from the registry.
// This is useful for testing.
func Unregister(name string) {
	libraries.Unregister(name)
}

// Available returns the sorted list of registered library names.
func Available() []string {
	names := libraries.Available()
	sort.Strings(names)
	return names
}

// IsRegistered checks if a library with the given name is registered.
func IsRegistered(name string) bool {
	return libraries.Has(name)
}

// Get returns a library instance by name.
// Returns nil if the library is not registered.
func Get(name string) Library {
	return libraries.Get(name)
}

// Lookup is like Get but reports an unknown name as an error.
func Lookup(name string) (Library, error) {
	if !libraries.Has(name) {
		return nil, fmt.Errorf("backend: unknown library %q (forgotten import?)", name)
	}
	lib := libraries.Get(name)
	if lib == nil {
		return nil, fmt.Errorf("backend: library %q: %w", name, ErrLibraryNotAvailable)
	}
	return lib, nil
}

// Default returns the best available library based on priority.
// Returns nil if no library is registered or every factory declines.
func Default() Library {
	if lib := libraries.Best(); lib != nil {
		return lib
	}
	for _, name := range Available() {
		if lib := libraries.Get(name); lib != nil {
			return lib
		}
	}
	return nil
}

// MustDefault returns the default library or panics.
func MustDefault() Library {
	lib := Default()
	if lib == nil {
		panic(ErrLibraryNotAvailable)
	}
	return lib
}
