package backend

import "github.com/gogpu/gpucontext"

// Opaque handles. The zero value of every handle type is the null handle.
type (
	DrawTargetRef            uintptr
	PatternRef               uintptr
	PathRef                  uintptr
	PathBuilderRef           uintptr
	SourceSurfaceRef         uintptr
	DataSourceSurfaceRef     uintptr
	ScaledFontRef            uintptr
	GlyphRenderingOptionsRef uintptr
	SkiaSharedGLContextRef   uintptr
	SharedSurfaceRef         uintptr
	GLContext                uintptr
)

// NativeGraphicsContext describes the platform GL context a shared Skia
// context is created against.
//
// Handle is the platform pointer the native library expects (an X11 or EGL
// display, or a CGL pixel format). Provider is consulted by libraries that
// render through a WebGPU device instead of GL; it may be nil.
type NativeGraphicsContext struct {
	Handle   uintptr
	Provider gpucontext.DeviceProvider
}
