//go:build linux || darwin

package native

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/gogpu/azure/backend"
)

// Library calls into a loaded Azure shared library.
//
// Handles are the library's own pointers. Optional entry points the
// library lacks are nil.
type Library struct {
	path   string
	handle uintptr
	logger atomic.Pointer[slog.Logger]

	data pinned
	pens pens

	createColorPattern  func(color unsafe.Pointer) uintptr
	releaseColorPattern func(pattern uintptr)

	createDrawTarget        func(kind int32, size unsafe.Pointer, format int32) uintptr
	createDrawTargetForData func(kind int32, data, size unsafe.Pointer, stride, format int32) uintptr
	retainDrawTarget        func(dt uintptr)
	releaseDrawTarget       func(dt uintptr)

	drawTargetGetSize                     func(dt uintptr) uint64
	drawTargetFlush                       func(dt uintptr)
	drawTargetClearRect                   func(dt uintptr, rect unsafe.Pointer)
	drawTargetFill                        func(dt, path, pattern uintptr, options unsafe.Pointer)
	drawTargetFillRect                    func(dt uintptr, rect unsafe.Pointer, pattern uintptr, options unsafe.Pointer)
	drawTargetStroke                      func(dt, path, pattern uintptr, stroke, options unsafe.Pointer)
	drawTargetStrokeLine                  func(dt uintptr, start, end unsafe.Pointer, pattern uintptr, stroke, options unsafe.Pointer)
	drawTargetStrokeRect                  func(dt uintptr, rect unsafe.Pointer, pattern uintptr, stroke, options unsafe.Pointer)
	drawTargetDrawSurface                 func(dt, surface uintptr, dest, source, surfOptions, options unsafe.Pointer)
	drawTargetGetSnapshot                 func(dt uintptr) uintptr
	drawTargetCreateSourceSurfaceFromData func(dt uintptr, data, size unsafe.Pointer, stride, format int32) uintptr
	drawTargetSetTransform                func(dt uintptr, m unsafe.Pointer)
	drawTargetFillGlyphs                  func(dt, font uintptr, glyphs unsafe.Pointer, pattern uintptr, options unsafe.Pointer, renderingOptions uintptr)
	drawTargetPushClip                    func(dt, path uintptr)
	drawTargetPopClip                     func(dt uintptr)

	createPathBuilder            func(dt uintptr) uintptr
	pathBuilderMoveTo            func(pb uintptr, p unsafe.Pointer)
	pathBuilderLineTo            func(pb uintptr, p unsafe.Pointer)
	pathBuilderQuadraticBezierTo func(pb uintptr, ctrl, end unsafe.Pointer)
	pathBuilderBezierTo          func(pb uintptr, ctrl1, ctrl2, end unsafe.Pointer)
	pathBuilderClose             func(pb uintptr)
	pathBuilderFinish            func(pb uintptr) uintptr
	releasePathBuilder           func(pb uintptr)
	releasePath                  func(path uintptr)

	releaseSourceSurface        func(surface uintptr)
	sourceSurfaceGetSize        func(surface uintptr) uint64
	sourceSurfaceGetFormat      func(surface uintptr) int32
	sourceSurfaceGetDataSurface func(surface uintptr) uintptr
	dataSourceSurfaceGetData    func(surface uintptr) unsafe.Pointer
	dataSourceSurfaceGetStride  func(surface uintptr) int32

	createScaledFontForData func(kind int32, data unsafe.Pointer, length, index uint32, size float32) uintptr
	releaseScaledFont       func(font uintptr)

	createSkiaSharedGLContext       func(native uintptr, size unsafe.Pointer) uintptr
	retainSkiaSharedGLContext       func(ctx uintptr)
	releaseSkiaSharedGLContext      func(ctx uintptr)
	skiaSharedGLContextMakeCurrent  func(ctx uintptr)
	skiaSharedGLContextStealSurface func(ctx uintptr) uintptr
	skiaSharedGLContextFlush        func(ctx uintptr)
	createSkiaDrawTargetForFBO      func(ctx uintptr, size unsafe.Pointer, format int32) uintptr
	skiaGetCurrentGLContext         func() uintptr
}

var (
	_ backend.Library      = (*Library)(nil)
	_ backend.LoggerSetter = (*Library)(nil)
)

type symbol struct {
	name     string
	fn       any
	optional bool
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"AzCreateColorPattern", &l.createColorPattern, false},
		{"AzReleaseColorPattern", &l.releaseColorPattern, false},

		{"AzCreateDrawTarget", &l.createDrawTarget, false},
		{"AzCreateDrawTargetForData", &l.createDrawTargetForData, false},
		{"AzRetainDrawTarget", &l.retainDrawTarget, false},
		{"AzReleaseDrawTarget", &l.releaseDrawTarget, false},

		{"AzDrawTargetGetSize", &l.drawTargetGetSize, false},
		{"AzDrawTargetFlush", &l.drawTargetFlush, false},
		{"AzDrawTargetClearRect", &l.drawTargetClearRect, false},
		{"AzDrawTargetFill", &l.drawTargetFill, false},
		{"AzDrawTargetFillRect", &l.drawTargetFillRect, false},
		{"AzDrawTargetStroke", &l.drawTargetStroke, true},
		{"AzDrawTargetStrokeLine", &l.drawTargetStrokeLine, false},
		{"AzDrawTargetStrokeRect", &l.drawTargetStrokeRect, false},
		{"AzDrawTargetDrawSurface", &l.drawTargetDrawSurface, false},
		{"AzDrawTargetGetSnapshot", &l.drawTargetGetSnapshot, false},
		{"AzDrawTargetCreateSourceSurfaceFromData", &l.drawTargetCreateSourceSurfaceFromData, false},
		{"AzDrawTargetSetTransform", &l.drawTargetSetTransform, false},
		{"AzDrawTargetFillGlyphs", &l.drawTargetFillGlyphs, false},
		{"AzDrawTargetPushClip", &l.drawTargetPushClip, false},
		{"AzDrawTargetPopClip", &l.drawTargetPopClip, false},

		{"AzCreatePathBuilder", &l.createPathBuilder, false},
		{"AzPathBuilderMoveTo", &l.pathBuilderMoveTo, false},
		{"AzPathBuilderLineTo", &l.pathBuilderLineTo, false},
		{"AzPathBuilderQuadraticBezierTo", &l.pathBuilderQuadraticBezierTo, true},
		{"AzPathBuilderBezierTo", &l.pathBuilderBezierTo, true},
		{"AzPathBuilderClose", &l.pathBuilderClose, true},
		{"AzPathBuilderFinish", &l.pathBuilderFinish, false},
		{"AzReleasePathBuilder", &l.releasePathBuilder, false},
		{"AzReleasePath", &l.releasePath, false},

		{"AzReleaseSourceSurface", &l.releaseSourceSurface, false},
		{"AzSourceSurfaceGetSize", &l.sourceSurfaceGetSize, false},
		{"AzSourceSurfaceGetFormat", &l.sourceSurfaceGetFormat, false},
		{"AzSourceSurfaceGetDataSurface", &l.sourceSurfaceGetDataSurface, false},
		{"AzDataSourceSurfaceGetData", &l.dataSourceSurfaceGetData, false},
		{"AzDataSourceSurfaceGetStride", &l.dataSourceSurfaceGetStride, false},

		{"AzCreateScaledFontForData", &l.createScaledFontForData, true},
		{"AzReleaseScaledFont", &l.releaseScaledFont, true},

		{"AzCreateSkiaSharedGLContext", &l.createSkiaSharedGLContext, false},
		{"AzRetainSkiaSharedGLContext", &l.retainSkiaSharedGLContext, false},
		{"AzReleaseSkiaSharedGLContext", &l.releaseSkiaSharedGLContext, false},
		{"AzSkiaSharedGLContextMakeCurrent", &l.skiaSharedGLContextMakeCurrent, false},
		{"AzSkiaSharedGLContextStealSurface", &l.skiaSharedGLContextStealSurface, false},
		{"AzSkiaSharedGLContextFlush", &l.skiaSharedGLContextFlush, false},
		{"AzCreateSkiaDrawTargetForFBO", &l.createSkiaDrawTargetForFBO, false},
		{"AzSkiaGetCurrentGLContext", &l.skiaGetCurrentGLContext, false},
	}
}

// Open loads the Azure library at path and binds its entry points. A
// missing required entry point is reported as an error wrapping
// backend.ErrSymbolNotFound and the library is closed again.
func Open(path string, opts ...Option) (*Library, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("native: open %s: %w: %w", path, backend.ErrLibraryNotAvailable, err)
	}
	l := &Library{path: path, handle: h}
	l.SetLogger(o.logger)

	var missing []string
	for _, s := range l.symbols() {
		addr, err := purego.Dlsym(h, s.name)
		if err != nil || addr == 0 {
			if !s.optional {
				_ = purego.Dlclose(h)
				return nil, fmt.Errorf("native: %s: %s: %w", path, s.name, backend.ErrSymbolNotFound)
			}
			missing = append(missing, s.name)
			continue
		}
		purego.RegisterFunc(s.fn, addr)
	}
	if len(missing) > 0 {
		l.log().Warn("native: optional entry points missing, using fallbacks", "path", path, "symbols", missing)
	}
	l.log().Debug("native: library loaded", "path", path)
	return l, nil
}

func open(path string, opts ...Option) (backend.Library, error) {
	l, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Close unloads the library. Handles it issued become invalid.
func (l *Library) Close() error {
	if n := l.data.len(); n > 0 {
		l.log().Warn("native: closing with draw targets over caller memory still live", "count", n)
	}
	return purego.Dlclose(l.handle)
}

// Name implements backend.Library.
func (l *Library) Name() string { return backend.LibraryNative }

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// SetLogger implements backend.LoggerSetter. Pass nil to silence logging.
func (l *Library) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}
	l.logger.Store(lg)
}

func (l *Library) log() *slog.Logger {
	return l.logger.Load()
}

// CreateColorPattern implements backend.Library.
func (l *Library) CreateColorPattern(color *backend.Color) backend.PatternRef {
	return backend.PatternRef(l.createColorPattern(unsafe.Pointer(color)))
}

// ReleaseColorPattern implements backend.Library.
func (l *Library) ReleaseColorPattern(pattern backend.PatternRef) {
	l.releaseColorPattern(uintptr(pattern))
}

// CreateDrawTarget implements backend.Library.
func (l *Library) CreateDrawTarget(kind backend.BackendType, size *backend.IntSize, format backend.SurfaceFormat) backend.DrawTargetRef {
	return backend.DrawTargetRef(l.createDrawTarget(int32(kind), unsafe.Pointer(size), int32(format)))
}

// CreateDrawTargetForData implements backend.Library. data stays pinned
// until the last reference to the target is released.
func (l *Library) CreateDrawTargetForData(kind backend.BackendType, data []byte, size *backend.IntSize, stride int32, format backend.SurfaceFormat) backend.DrawTargetRef {
	dt := backend.DrawTargetRef(l.createDrawTargetForData(int32(kind), unsafe.Pointer(unsafe.SliceData(data)), unsafe.Pointer(size), stride, int32(format)))
	if dt != 0 {
		l.data.pin(dt, data)
	}
	return dt
}

// RetainDrawTarget implements backend.Library.
func (l *Library) RetainDrawTarget(dt backend.DrawTargetRef) {
	l.retainDrawTarget(uintptr(dt))
	l.data.retain(dt)
}

// ReleaseDrawTarget implements backend.Library.
func (l *Library) ReleaseDrawTarget(dt backend.DrawTargetRef) {
	l.releaseDrawTarget(uintptr(dt))
	if l.data.release(dt) {
		l.log().Debug("native: caller memory unpinned", "handle", uintptr(dt))
	}
}

// DrawTargetGetSize implements backend.Library.
func (l *Library) DrawTargetGetSize(dt backend.DrawTargetRef) backend.IntSize {
	return unpackIntSize(l.drawTargetGetSize(uintptr(dt)))
}

// DrawTargetFlush implements backend.Library.
func (l *Library) DrawTargetFlush(dt backend.DrawTargetRef) {
	l.drawTargetFlush(uintptr(dt))
}

// DrawTargetClearRect implements backend.Library.
func (l *Library) DrawTargetClearRect(dt backend.DrawTargetRef, rect *backend.Rect) {
	l.drawTargetClearRect(uintptr(dt), unsafe.Pointer(rect))
}

// DrawTargetFill implements backend.Library.
func (l *Library) DrawTargetFill(dt backend.DrawTargetRef, path backend.PathRef, pattern backend.PatternRef, options *backend.DrawOptions) {
	l.drawTargetFill(uintptr(dt), uintptr(path), uintptr(pattern), unsafe.Pointer(options))
}

// DrawTargetFillRect implements backend.Library.
func (l *Library) DrawTargetFillRect(dt backend.DrawTargetRef, rect *backend.Rect, pattern backend.PatternRef, options *backend.DrawOptions) {
	l.drawTargetFillRect(uintptr(dt), unsafe.Pointer(rect), uintptr(pattern), unsafe.Pointer(options))
}

// withStroke pins the dash pattern stroke points at for the duration of f.
func withStroke(stroke *backend.StrokeOptions, f func()) {
	var p runtime.Pinner
	defer p.Unpin()
	if stroke != nil && stroke.DashPattern != nil {
		p.Pin(stroke.DashPattern)
	}
	f()
}

// DrawTargetStroke implements backend.Library. Libraries without the
// entry point draw nothing.
func (l *Library) DrawTargetStroke(dt backend.DrawTargetRef, path backend.PathRef, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	if l.drawTargetStroke == nil {
		l.log().Warn("native: AzDrawTargetStroke unavailable, stroke skipped")
		return
	}
	withStroke(stroke, func() {
		l.drawTargetStroke(uintptr(dt), uintptr(path), uintptr(pattern), unsafe.Pointer(stroke), unsafe.Pointer(options))
	})
}

// DrawTargetStrokeLine implements backend.Library.
func (l *Library) DrawTargetStrokeLine(dt backend.DrawTargetRef, start, end *backend.Point, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	withStroke(stroke, func() {
		l.drawTargetStrokeLine(uintptr(dt), unsafe.Pointer(start), unsafe.Pointer(end), uintptr(pattern), unsafe.Pointer(stroke), unsafe.Pointer(options))
	})
}

// DrawTargetStrokeRect implements backend.Library.
func (l *Library) DrawTargetStrokeRect(dt backend.DrawTargetRef, rect *backend.Rect, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	withStroke(stroke, func() {
		l.drawTargetStrokeRect(uintptr(dt), unsafe.Pointer(rect), uintptr(pattern), unsafe.Pointer(stroke), unsafe.Pointer(options))
	})
}

// DrawTargetDrawSurface implements backend.Library.
func (l *Library) DrawTargetDrawSurface(dt backend.DrawTargetRef, surface backend.SourceSurfaceRef, dest, source *backend.Rect, surfOptions *backend.DrawSurfaceOptions, options *backend.DrawOptions) {
	l.drawTargetDrawSurface(uintptr(dt), uintptr(surface), unsafe.Pointer(dest), unsafe.Pointer(source), unsafe.Pointer(surfOptions), unsafe.Pointer(options))
}

// DrawTargetGetSnapshot implements backend.Library.
func (l *Library) DrawTargetGetSnapshot(dt backend.DrawTargetRef) backend.SourceSurfaceRef {
	return backend.SourceSurfaceRef(l.drawTargetGetSnapshot(uintptr(dt)))
}

// DrawTargetCreateSourceSurfaceFromData implements backend.Library.
func (l *Library) DrawTargetCreateSourceSurfaceFromData(dt backend.DrawTargetRef, data []byte, size *backend.IntSize, stride int32, format backend.SurfaceFormat) backend.SourceSurfaceRef {
	h := l.drawTargetCreateSourceSurfaceFromData(uintptr(dt), unsafe.Pointer(unsafe.SliceData(data)), unsafe.Pointer(size), stride, int32(format))
	runtime.KeepAlive(data)
	return backend.SourceSurfaceRef(h)
}

// DrawTargetSetTransform implements backend.Library.
func (l *Library) DrawTargetSetTransform(dt backend.DrawTargetRef, m *backend.Matrix) {
	l.drawTargetSetTransform(uintptr(dt), unsafe.Pointer(m))
}

// DrawTargetFillGlyphs implements backend.Library.
func (l *Library) DrawTargetFillGlyphs(dt backend.DrawTargetRef, font backend.ScaledFontRef, glyphs *backend.GlyphBuffer, pattern backend.PatternRef, options *backend.DrawOptions, renderingOptions backend.GlyphRenderingOptionsRef) {
	var p runtime.Pinner
	defer p.Unpin()
	if glyphs != nil && glyphs.Glyphs != nil {
		p.Pin(glyphs.Glyphs)
	}
	l.drawTargetFillGlyphs(uintptr(dt), uintptr(font), unsafe.Pointer(glyphs), uintptr(pattern), unsafe.Pointer(options), uintptr(renderingOptions))
}

// DrawTargetPushClip implements backend.Library.
func (l *Library) DrawTargetPushClip(dt backend.DrawTargetRef, path backend.PathRef) {
	l.drawTargetPushClip(uintptr(dt), uintptr(path))
}

// DrawTargetPopClip implements backend.Library.
func (l *Library) DrawTargetPopClip(dt backend.DrawTargetRef) {
	l.drawTargetPopClip(uintptr(dt))
}

// CreatePathBuilder implements backend.Library.
func (l *Library) CreatePathBuilder(dt backend.DrawTargetRef) backend.PathBuilderRef {
	return backend.PathBuilderRef(l.createPathBuilder(uintptr(dt)))
}

// PathBuilderMoveTo implements backend.Library.
func (l *Library) PathBuilderMoveTo(pb backend.PathBuilderRef, p *backend.Point) {
	l.pathBuilderMoveTo(uintptr(pb), unsafe.Pointer(p))
	l.pens.moveTo(pb, *p)
}

// PathBuilderLineTo implements backend.Library.
func (l *Library) PathBuilderLineTo(pb backend.PathBuilderRef, p *backend.Point) {
	l.pathBuilderLineTo(uintptr(pb), unsafe.Pointer(p))
	l.pens.lineTo(pb, *p)
}

// PathBuilderQuadraticBezierTo implements backend.Library. Without the
// entry point the curve is sent as the equivalent cubic, or as a line
// when cubics are missing too.
func (l *Library) PathBuilderQuadraticBezierTo(pb backend.PathBuilderRef, ctrl, end *backend.Point) {
	switch {
	case l.pathBuilderQuadraticBezierTo != nil:
		l.pathBuilderQuadraticBezierTo(uintptr(pb), unsafe.Pointer(ctrl), unsafe.Pointer(end))
	case l.pathBuilderBezierTo != nil:
		p0, ok := l.pens.current(pb)
		if !ok {
			p0 = *ctrl
		}
		c1, c2 := elevateQuad(p0, *ctrl, *end)
		l.pathBuilderBezierTo(uintptr(pb), unsafe.Pointer(&c1), unsafe.Pointer(&c2), unsafe.Pointer(end))
	default:
		l.pathBuilderLineTo(uintptr(pb), unsafe.Pointer(end))
	}
	l.pens.lineTo(pb, *end)
}

// PathBuilderBezierTo implements backend.Library. Without the entry point
// the curve degrades to a line to its end point.
func (l *Library) PathBuilderBezierTo(pb backend.PathBuilderRef, ctrl1, ctrl2, end *backend.Point) {
	if l.pathBuilderBezierTo != nil {
		l.pathBuilderBezierTo(uintptr(pb), unsafe.Pointer(ctrl1), unsafe.Pointer(ctrl2), unsafe.Pointer(end))
	} else {
		l.pathBuilderLineTo(uintptr(pb), unsafe.Pointer(end))
	}
	l.pens.lineTo(pb, *end)
}

// PathBuilderClose implements backend.Library. Without the entry point
// the figure is closed with a line back to its start.
func (l *Library) PathBuilderClose(pb backend.PathBuilderRef) {
	if l.pathBuilderClose != nil {
		l.pathBuilderClose(uintptr(pb))
	} else if start, ok := l.pens.start(pb); ok {
		l.pathBuilderLineTo(uintptr(pb), unsafe.Pointer(&start))
	}
	l.pens.close(pb)
}

// PathBuilderFinish implements backend.Library.
func (l *Library) PathBuilderFinish(pb backend.PathBuilderRef) backend.PathRef {
	return backend.PathRef(l.pathBuilderFinish(uintptr(pb)))
}

// ReleasePathBuilder implements backend.Library.
func (l *Library) ReleasePathBuilder(pb backend.PathBuilderRef) {
	l.releasePathBuilder(uintptr(pb))
	l.pens.forget(pb)
}

// ReleasePath implements backend.Library.
func (l *Library) ReleasePath(path backend.PathRef) {
	l.releasePath(uintptr(path))
}

// ReleaseSourceSurface implements backend.Library.
func (l *Library) ReleaseSourceSurface(surface backend.SourceSurfaceRef) {
	l.releaseSourceSurface(uintptr(surface))
}

// SourceSurfaceGetSize implements backend.Library.
func (l *Library) SourceSurfaceGetSize(surface backend.SourceSurfaceRef) backend.IntSize {
	return unpackIntSize(l.sourceSurfaceGetSize(uintptr(surface)))
}

// SourceSurfaceGetFormat implements backend.Library.
func (l *Library) SourceSurfaceGetFormat(surface backend.SourceSurfaceRef) backend.SurfaceFormat {
	return backend.SurfaceFormat(l.sourceSurfaceGetFormat(uintptr(surface)))
}

// SourceSurfaceGetDataSurface implements backend.Library.
func (l *Library) SourceSurfaceGetDataSurface(surface backend.SourceSurfaceRef) backend.DataSourceSurfaceRef {
	return backend.DataSourceSurfaceRef(l.sourceSurfaceGetDataSurface(uintptr(surface)))
}

// DataSourceSurfaceGetData implements backend.Library. The slice aliases
// library memory.
func (l *Library) DataSourceSurfaceGetData(surface backend.DataSourceSurfaceRef) []byte {
	p := l.dataSourceSurfaceGetData(uintptr(surface))
	if p == nil {
		return nil
	}
	size := unpackIntSize(l.sourceSurfaceGetSize(uintptr(surface)))
	n := int(l.dataSourceSurfaceGetStride(uintptr(surface))) * int(size.Height)
	return unsafe.Slice((*byte)(p), n)
}

// DataSourceSurfaceGetStride implements backend.Library.
func (l *Library) DataSourceSurfaceGetStride(surface backend.DataSourceSurfaceRef) int32 {
	return l.dataSourceSurfaceGetStride(uintptr(surface))
}

// CreateScaledFontForData implements backend.Library. Libraries without
// the entry point return the null handle.
func (l *Library) CreateScaledFontForData(kind backend.BackendType, data []byte, index uint32, size float32) backend.ScaledFontRef {
	if l.createScaledFontForData == nil || len(data) == 0 {
		return 0
	}
	h := l.createScaledFontForData(int32(kind), unsafe.Pointer(unsafe.SliceData(data)), uint32(len(data)), index, size)
	runtime.KeepAlive(data)
	return backend.ScaledFontRef(h)
}

// ReleaseScaledFont implements backend.Library.
func (l *Library) ReleaseScaledFont(font backend.ScaledFontRef) {
	if l.releaseScaledFont != nil {
		l.releaseScaledFont(uintptr(font))
	}
}

// CreateSkiaSharedGLContext implements backend.Library. Only the native
// handle of ctx reaches the library.
func (l *Library) CreateSkiaSharedGLContext(ctx *backend.NativeGraphicsContext, size *backend.IntSize) backend.SkiaSharedGLContextRef {
	if ctx == nil {
		return 0
	}
	return backend.SkiaSharedGLContextRef(l.createSkiaSharedGLContext(ctx.Handle, unsafe.Pointer(size)))
}

// RetainSkiaSharedGLContext implements backend.Library.
func (l *Library) RetainSkiaSharedGLContext(ctx backend.SkiaSharedGLContextRef) {
	l.retainSkiaSharedGLContext(uintptr(ctx))
}

// ReleaseSkiaSharedGLContext implements backend.Library.
func (l *Library) ReleaseSkiaSharedGLContext(ctx backend.SkiaSharedGLContextRef) {
	l.releaseSkiaSharedGLContext(uintptr(ctx))
}

// SkiaSharedGLContextMakeCurrent implements backend.Library.
func (l *Library) SkiaSharedGLContextMakeCurrent(ctx backend.SkiaSharedGLContextRef) {
	l.skiaSharedGLContextMakeCurrent(uintptr(ctx))
}

// SkiaSharedGLContextStealSurface implements backend.Library.
func (l *Library) SkiaSharedGLContextStealSurface(ctx backend.SkiaSharedGLContextRef) backend.SharedSurfaceRef {
	return backend.SharedSurfaceRef(l.skiaSharedGLContextStealSurface(uintptr(ctx)))
}

// SkiaSharedGLContextFlush implements backend.Library.
func (l *Library) SkiaSharedGLContextFlush(ctx backend.SkiaSharedGLContextRef) {
	l.skiaSharedGLContextFlush(uintptr(ctx))
}

// CreateSkiaDrawTargetForFBO implements backend.Library.
func (l *Library) CreateSkiaDrawTargetForFBO(ctx backend.SkiaSharedGLContextRef, size *backend.IntSize, format backend.SurfaceFormat) backend.DrawTargetRef {
	return backend.DrawTargetRef(l.createSkiaDrawTargetForFBO(uintptr(ctx), unsafe.Pointer(size), int32(format)))
}

// SkiaGetCurrentGLContext implements backend.Library.
func (l *Library) SkiaGetCurrentGLContext() backend.GLContext {
	return backend.GLContext(l.skiaGetCurrentGLContext())
}
