// Package backend defines the call contract between package azure and a 2D
// draw-target library.
//
// The contract mirrors the native Azure C API: every method of [Library] is
// one entry point (AzCreateDrawTarget, AzDrawTargetFillRect, ...), handles
// are opaque uintptr-sized values where zero means null, and the structs in
// this package ([Point], [Rect], [IntSize], [Color], [Matrix],
// [StrokeOptions], [DrawOptions], [DrawSurfaceOptions], [Glyph],
// [GlyphBuffer]) have the same memory layout as their C counterparts.
//
// # Library Registration
//
// Libraries are registered via init() functions and selected at runtime.
// The pure-Go library registers itself on import:
//
//	import _ "github.com/gogpu/azure/backend/software"
//
// The native library is opt-in because it needs a shared object on disk:
//
//	if err := native.Register("/usr/lib/libazure.so"); err != nil {
//		log.Fatal(err)
//	}
//
// # Library Selection
//
// Use Default() to get the best available library, or Get() to request
// a specific one by name:
//
//	lib := backend.Default()
//	lib = backend.Get("software")
//
// # Available Libraries
//
//   - "native": libazure through purego, no cgo required
//   - "software": CPU rasterizer built on github.com/gogpu/gg
package backend
