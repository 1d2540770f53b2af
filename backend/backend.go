package backend

import (
	"errors"
	"log/slog"
)

// Common library errors.
var (
	// ErrLibraryNotAvailable is returned when no library is registered.
	ErrLibraryNotAvailable = errors.New("backend: no library available")

	// ErrSymbolNotFound is returned when a native library lacks an entry point.
	ErrSymbolNotFound = errors.New("backend: symbol not found")
)

// Library is the call contract of a 2D draw-target library.
//
// Methods returning a handle return the null handle on failure; the
// library offers no richer failure signal. Pointer arguments documented as
// optional may be nil, in which case the library applies its defaults.
// Handles passed to a library must have been created by that library.
//
// Implementations are not required to be safe for concurrent use on the
// same draw target. Retain and release must be safe to call from any
// goroutine.
type Library interface {
	// Name returns the library identifier (e.g., "software", "native").
	Name() string

	CreateColorPattern(color *Color) PatternRef
	ReleaseColorPattern(pattern PatternRef)

	CreateDrawTarget(backend BackendType, size *IntSize, format SurfaceFormat) DrawTargetRef
	// CreateDrawTargetForData binds data as the backing store. data starts at
	// the first pixel and holds at least stride*size.Height bytes.
	CreateDrawTargetForData(backend BackendType, data []byte, size *IntSize, stride int32, format SurfaceFormat) DrawTargetRef
	RetainDrawTarget(dt DrawTargetRef)
	ReleaseDrawTarget(dt DrawTargetRef)

	DrawTargetGetSize(dt DrawTargetRef) IntSize
	DrawTargetFlush(dt DrawTargetRef)
	DrawTargetClearRect(dt DrawTargetRef, rect *Rect)
	DrawTargetFill(dt DrawTargetRef, path PathRef, pattern PatternRef, options *DrawOptions)
	// DrawTargetFillRect accepts a nil options pointer.
	DrawTargetFillRect(dt DrawTargetRef, rect *Rect, pattern PatternRef, options *DrawOptions)
	DrawTargetStroke(dt DrawTargetRef, path PathRef, pattern PatternRef, stroke *StrokeOptions, options *DrawOptions)
	DrawTargetStrokeLine(dt DrawTargetRef, start, end *Point, pattern PatternRef, stroke *StrokeOptions, options *DrawOptions)
	DrawTargetStrokeRect(dt DrawTargetRef, rect *Rect, pattern PatternRef, stroke *StrokeOptions, options *DrawOptions)
	DrawTargetDrawSurface(dt DrawTargetRef, surface SourceSurfaceRef, dest, source *Rect, surfOptions *DrawSurfaceOptions, options *DrawOptions)
	DrawTargetGetSnapshot(dt DrawTargetRef) SourceSurfaceRef
	DrawTargetCreateSourceSurfaceFromData(dt DrawTargetRef, data []byte, size *IntSize, stride int32, format SurfaceFormat) SourceSurfaceRef
	DrawTargetSetTransform(dt DrawTargetRef, m *Matrix)
	// DrawTargetFillGlyphs accepts a null rendering options handle.
	DrawTargetFillGlyphs(dt DrawTargetRef, font ScaledFontRef, glyphs *GlyphBuffer, pattern PatternRef, options *DrawOptions, renderingOptions GlyphRenderingOptionsRef)
	DrawTargetPushClip(dt DrawTargetRef, path PathRef)
	DrawTargetPopClip(dt DrawTargetRef)

	CreatePathBuilder(dt DrawTargetRef) PathBuilderRef
	PathBuilderMoveTo(pb PathBuilderRef, p *Point)
	PathBuilderLineTo(pb PathBuilderRef, p *Point)
	PathBuilderQuadraticBezierTo(pb PathBuilderRef, ctrl, end *Point)
	PathBuilderBezierTo(pb PathBuilderRef, ctrl1, ctrl2, end *Point)
	PathBuilderClose(pb PathBuilderRef)
	PathBuilderFinish(pb PathBuilderRef) PathRef
	ReleasePathBuilder(pb PathBuilderRef)
	ReleasePath(path PathRef)

	ReleaseSourceSurface(surface SourceSurfaceRef)
	SourceSurfaceGetSize(surface SourceSurfaceRef) IntSize
	SourceSurfaceGetFormat(surface SourceSurfaceRef) SurfaceFormat
	SourceSurfaceGetDataSurface(surface SourceSurfaceRef) DataSourceSurfaceRef
	// DataSourceSurfaceGetData returns the pixel bytes, stride*height long.
	// The slice aliases library memory and is valid until the surface is
	// released.
	DataSourceSurfaceGetData(surface DataSourceSurfaceRef) []byte
	DataSourceSurfaceGetStride(surface DataSourceSurfaceRef) int32

	CreateScaledFontForData(backend BackendType, data []byte, index uint32, size float32) ScaledFontRef
	ReleaseScaledFont(font ScaledFontRef)

	CreateSkiaSharedGLContext(ctx *NativeGraphicsContext, size *IntSize) SkiaSharedGLContextRef
	RetainSkiaSharedGLContext(ctx SkiaSharedGLContextRef)
	ReleaseSkiaSharedGLContext(ctx SkiaSharedGLContextRef)
	SkiaSharedGLContextMakeCurrent(ctx SkiaSharedGLContextRef)
	SkiaSharedGLContextStealSurface(ctx SkiaSharedGLContextRef) SharedSurfaceRef
	SkiaSharedGLContextFlush(ctx SkiaSharedGLContextRef)
	CreateSkiaDrawTargetForFBO(ctx SkiaSharedGLContextRef, size *IntSize, format SurfaceFormat) DrawTargetRef
	SkiaGetCurrentGLContext() GLContext
}

// LoggerSetter is implemented by libraries that accept a logger.
type LoggerSetter interface {
	SetLogger(l *slog.Logger)
}

// SharedSurfaceReleaser is implemented by libraries that own the memory of
// stolen shared surfaces and can free it.
type SharedSurfaceReleaser interface {
	ReleaseSharedSurface(surface SharedSurfaceRef)
}
