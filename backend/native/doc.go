// Package native implements backend.Library over the Azure C API of a
// shared library loaded at run time. Calls go through purego, so the
// package builds without cgo.
//
// Loading is lazy. Importing the package registers a "native" factory
// that opens the library named by the AZURE_LIBRARY_PATH environment
// variable, or DefaultLibraryName, on first use:
//
//	import _ "github.com/gogpu/azure/backend/native"
//
// When the library cannot be opened the factory declines and selection
// falls through to the next registered library. Register points the
// factory at another file and Open loads one directly.
//
// Entry points present in every Azure build are required. Stroke, the
// curve builders, Close and the scaled font calls are optional; builds
// lacking them get a degraded fallback and a warning.
package native
