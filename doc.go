// Package azure provides safe Go wrappers over a 2D draw-target library.
//
// # Overview
//
// The library behind the wrappers renders paths, rectangles, glyphs and
// surfaces into draw targets. It is reached only through the
// backend.Library call contract, so the same wrappers drive the pure-Go
// software library and the native shared library.
//
// Every wrapper owns exactly one library handle and frees it on Release.
// DrawTarget.Clone is the only form of shared ownership: it retains the
// handle at the library, and each clone must be released on its own.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/azure"
//		_ "github.com/gogpu/azure/backend/software"
//	)
//
//	dt := azure.NewDrawTarget(azure.SkiaBackend, azure.IntSize{Width: 64, Height: 64}, azure.FormatB8G8R8A8)
//	defer dt.Release()
//
//	black := azure.NewColorPattern(azure.Black)
//	defer black.Release()
//	dt.FillRect(azure.Rect{Width: 64, Height: 64}, black, nil)
//
// # Failure Model
//
// A null handle from an allocating call means the library could not
// allocate; the New* constructors panic with an error wrapping
// ErrAllocationFailed and the Create* constructors return it. Caller bugs
// such as a pixel buffer shorter than stride*height panic with
// ErrContractViolation.
//
// # Libraries
//
// Libraries register themselves on import. UseLibrary pins one
// explicitly; otherwise the highest priority registered library is used
// (native before software).
//
// # Logging
//
// The package is silent by default. See SetLogger.
package azure
