package recording

import (
	"log/slog"
	"sync"

	"github.com/gogpu/azure/backend"
)

// Library records calls and forwards them to an inner library. Handles
// are the inner library's handles, unchanged.
type Library struct {
	inner backend.Library

	mu       sync.Mutex
	commands []Command
}

var (
	_ backend.Library               = (*Library)(nil)
	_ backend.LoggerSetter          = (*Library)(nil)
	_ backend.SharedSurfaceReleaser = (*Library)(nil)
)

// New wraps inner.
func New(inner backend.Library) *Library {
	if inner == nil {
		panic("recording: New inner library is nil")
	}
	return &Library{inner: inner}
}

// Inner returns the wrapped library.
func (l *Library) Inner() backend.Library { return l.inner }

func (l *Library) record(t CommandType, handle, result uintptr) {
	l.mu.Lock()
	l.commands = append(l.commands, Command{Type: t, Handle: handle, Result: result})
	l.mu.Unlock()
}

// Commands returns a copy of the recorded commands in call order.
func (l *Library) Commands() []Command {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Command(nil), l.commands...)
}

// Count returns how many commands of type t were recorded.
func (l *Library) Count(t CommandType) int {
	return l.CountFor(t, 0)
}

// CountFor returns how many commands of type t acted on handle. A zero
// handle matches every command.
func (l *Library) CountFor(t CommandType, handle uintptr) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.commands {
		if c.Type == t && (handle == 0 || c.Handle == handle) {
			n++
		}
	}
	return n
}

// Reset discards the recorded commands.
func (l *Library) Reset() {
	l.mu.Lock()
	l.commands = nil
	l.mu.Unlock()
}

// Name implements backend.Library.
func (l *Library) Name() string { return "recording(" + l.inner.Name() + ")" }

// SetLogger implements backend.LoggerSetter by forwarding to the inner
// library when it accepts a logger.
func (l *Library) SetLogger(lg *slog.Logger) {
	if ls, ok := l.inner.(backend.LoggerSetter); ok {
		ls.SetLogger(lg)
	}
}

// ReleaseSharedSurface implements backend.SharedSurfaceReleaser. The call
// is recorded even when the inner library cannot free shared surfaces.
func (l *Library) ReleaseSharedSurface(s backend.SharedSurfaceRef) {
	l.record(CmdReleaseSharedSurface, uintptr(s), 0)
	if rel, ok := l.inner.(backend.SharedSurfaceReleaser); ok {
		rel.ReleaseSharedSurface(s)
	}
}

func (l *Library) CreateColorPattern(color *backend.Color) backend.PatternRef {
	h := l.inner.CreateColorPattern(color)
	l.record(CmdCreateColorPattern, 0, uintptr(h))
	return h
}

func (l *Library) ReleaseColorPattern(p backend.PatternRef) {
	l.record(CmdReleaseColorPattern, uintptr(p), 0)
	l.inner.ReleaseColorPattern(p)
}

func (l *Library) CreateDrawTarget(kind backend.BackendType, size *backend.IntSize, format backend.SurfaceFormat) backend.DrawTargetRef {
	h := l.inner.CreateDrawTarget(kind, size, format)
	l.record(CmdCreateDrawTarget, 0, uintptr(h))
	return h
}

func (l *Library) CreateDrawTargetForData(kind backend.BackendType, data []byte, size *backend.IntSize, stride int32, format backend.SurfaceFormat) backend.DrawTargetRef {
	h := l.inner.CreateDrawTargetForData(kind, data, size, stride, format)
	l.record(CmdCreateDrawTargetForData, 0, uintptr(h))
	return h
}

func (l *Library) RetainDrawTarget(dt backend.DrawTargetRef) {
	l.record(CmdRetainDrawTarget, uintptr(dt), 0)
	l.inner.RetainDrawTarget(dt)
}

func (l *Library) ReleaseDrawTarget(dt backend.DrawTargetRef) {
	l.record(CmdReleaseDrawTarget, uintptr(dt), 0)
	l.inner.ReleaseDrawTarget(dt)
}

func (l *Library) DrawTargetGetSize(dt backend.DrawTargetRef) backend.IntSize {
	l.record(CmdGetSize, uintptr(dt), 0)
	return l.inner.DrawTargetGetSize(dt)
}

func (l *Library) DrawTargetFlush(dt backend.DrawTargetRef) {
	l.record(CmdFlush, uintptr(dt), 0)
	l.inner.DrawTargetFlush(dt)
}

func (l *Library) DrawTargetClearRect(dt backend.DrawTargetRef, rect *backend.Rect) {
	l.record(CmdClearRect, uintptr(dt), 0)
	l.inner.DrawTargetClearRect(dt, rect)
}

func (l *Library) DrawTargetFill(dt backend.DrawTargetRef, path backend.PathRef, pattern backend.PatternRef, options *backend.DrawOptions) {
	l.record(CmdFill, uintptr(dt), 0)
	l.inner.DrawTargetFill(dt, path, pattern, options)
}

func (l *Library) DrawTargetFillRect(dt backend.DrawTargetRef, rect *backend.Rect, pattern backend.PatternRef, options *backend.DrawOptions) {
	l.record(CmdFillRect, uintptr(dt), 0)
	l.inner.DrawTargetFillRect(dt, rect, pattern, options)
}

func (l *Library) DrawTargetStroke(dt backend.DrawTargetRef, path backend.PathRef, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	l.record(CmdStroke, uintptr(dt), 0)
	l.inner.DrawTargetStroke(dt, path, pattern, stroke, options)
}

func (l *Library) DrawTargetStrokeLine(dt backend.DrawTargetRef, start, end *backend.Point, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	l.record(CmdStrokeLine, uintptr(dt), 0)
	l.inner.DrawTargetStrokeLine(dt, start, end, pattern, stroke, options)
}

func (l *Library) DrawTargetStrokeRect(dt backend.DrawTargetRef, rect *backend.Rect, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	l.record(CmdStrokeRect, uintptr(dt), 0)
	l.inner.DrawTargetStrokeRect(dt, rect, pattern, stroke, options)
}

func (l *Library) DrawTargetDrawSurface(dt backend.DrawTargetRef, surface backend.SourceSurfaceRef, dest, source *backend.Rect, surfOptions *backend.DrawSurfaceOptions, options *backend.DrawOptions) {
	l.record(CmdDrawSurface, uintptr(dt), 0)
	l.inner.DrawTargetDrawSurface(dt, surface, dest, source, surfOptions, options)
}

func (l *Library) DrawTargetGetSnapshot(dt backend.DrawTargetRef) backend.SourceSurfaceRef {
	h := l.inner.DrawTargetGetSnapshot(dt)
	l.record(CmdGetSnapshot, uintptr(dt), uintptr(h))
	return h
}

func (l *Library) DrawTargetCreateSourceSurfaceFromData(dt backend.DrawTargetRef, data []byte, size *backend.IntSize, stride int32, format backend.SurfaceFormat) backend.SourceSurfaceRef {
	h := l.inner.DrawTargetCreateSourceSurfaceFromData(dt, data, size, stride, format)
	l.record(CmdCreateSourceSurfaceFromData, uintptr(dt), uintptr(h))
	return h
}

func (l *Library) DrawTargetSetTransform(dt backend.DrawTargetRef, m *backend.Matrix) {
	l.record(CmdSetTransform, uintptr(dt), 0)
	l.inner.DrawTargetSetTransform(dt, m)
}

func (l *Library) DrawTargetFillGlyphs(dt backend.DrawTargetRef, font backend.ScaledFontRef, glyphs *backend.GlyphBuffer, pattern backend.PatternRef, options *backend.DrawOptions, renderingOptions backend.GlyphRenderingOptionsRef) {
	l.record(CmdFillGlyphs, uintptr(dt), 0)
	l.inner.DrawTargetFillGlyphs(dt, font, glyphs, pattern, options, renderingOptions)
}

func (l *Library) DrawTargetPushClip(dt backend.DrawTargetRef, path backend.PathRef) {
	l.record(CmdPushClip, uintptr(dt), 0)
	l.inner.DrawTargetPushClip(dt, path)
}

func (l *Library) DrawTargetPopClip(dt backend.DrawTargetRef) {
	l.record(CmdPopClip, uintptr(dt), 0)
	l.inner.DrawTargetPopClip(dt)
}

func (l *Library) CreatePathBuilder(dt backend.DrawTargetRef) backend.PathBuilderRef {
	h := l.inner.CreatePathBuilder(dt)
	l.record(CmdCreatePathBuilder, uintptr(dt), uintptr(h))
	return h
}

func (l *Library) PathBuilderMoveTo(pb backend.PathBuilderRef, p *backend.Point) {
	l.record(CmdMoveTo, uintptr(pb), 0)
	l.inner.PathBuilderMoveTo(pb, p)
}

func (l *Library) PathBuilderLineTo(pb backend.PathBuilderRef, p *backend.Point) {
	l.record(CmdLineTo, uintptr(pb), 0)
	l.inner.PathBuilderLineTo(pb, p)
}

func (l *Library) PathBuilderQuadraticBezierTo(pb backend.PathBuilderRef, ctrl, end *backend.Point) {
	l.record(CmdQuadraticBezierTo, uintptr(pb), 0)
	l.inner.PathBuilderQuadraticBezierTo(pb, ctrl, end)
}

func (l *Library) PathBuilderBezierTo(pb backend.PathBuilderRef, ctrl1, ctrl2, end *backend.Point) {
	l.record(CmdBezierTo, uintptr(pb), 0)
	l.inner.PathBuilderBezierTo(pb, ctrl1, ctrl2, end)
}

func (l *Library) PathBuilderClose(pb backend.PathBuilderRef) {
	l.record(CmdClosePath, uintptr(pb), 0)
	l.inner.PathBuilderClose(pb)
}

func (l *Library) PathBuilderFinish(pb backend.PathBuilderRef) backend.PathRef {
	h := l.inner.PathBuilderFinish(pb)
	l.record(CmdFinishPath, uintptr(pb), uintptr(h))
	return h
}

func (l *Library) ReleasePathBuilder(pb backend.PathBuilderRef) {
	l.record(CmdReleasePathBuilder, uintptr(pb), 0)
	l.inner.ReleasePathBuilder(pb)
}

func (l *Library) ReleasePath(path backend.PathRef) {
	l.record(CmdReleasePath, uintptr(path), 0)
	l.inner.ReleasePath(path)
}

func (l *Library) ReleaseSourceSurface(surface backend.SourceSurfaceRef) {
	l.record(CmdReleaseSourceSurface, uintptr(surface), 0)
	l.inner.ReleaseSourceSurface(surface)
}

func (l *Library) SourceSurfaceGetSize(surface backend.SourceSurfaceRef) backend.IntSize {
	l.record(CmdGetSurfaceSize, uintptr(surface), 0)
	return l.inner.SourceSurfaceGetSize(surface)
}

func (l *Library) SourceSurfaceGetFormat(surface backend.SourceSurfaceRef) backend.SurfaceFormat {
	l.record(CmdGetSurfaceFormat, uintptr(surface), 0)
	return l.inner.SourceSurfaceGetFormat(surface)
}

func (l *Library) SourceSurfaceGetDataSurface(surface backend.SourceSurfaceRef) backend.DataSourceSurfaceRef {
	h := l.inner.SourceSurfaceGetDataSurface(surface)
	l.record(CmdGetDataSurface, uintptr(surface), uintptr(h))
	return h
}

func (l *Library) DataSourceSurfaceGetData(surface backend.DataSourceSurfaceRef) []byte {
	l.record(CmdGetData, uintptr(surface), 0)
	return l.inner.DataSourceSurfaceGetData(surface)
}

func (l *Library) DataSourceSurfaceGetStride(surface backend.DataSourceSurfaceRef) int32 {
	l.record(CmdGetStride, uintptr(surface), 0)
	return l.inner.DataSourceSurfaceGetStride(surface)
}

func (l *Library) CreateScaledFontForData(kind backend.BackendType, data []byte, index uint32, size float32) backend.ScaledFontRef {
	h := l.inner.CreateScaledFontForData(kind, data, index, size)
	l.record(CmdCreateScaledFont, 0, uintptr(h))
	return h
}

func (l *Library) ReleaseScaledFont(font backend.ScaledFontRef) {
	l.record(CmdReleaseScaledFont, uintptr(font), 0)
	l.inner.ReleaseScaledFont(font)
}

func (l *Library) CreateSkiaSharedGLContext(ctx *backend.NativeGraphicsContext, size *backend.IntSize) backend.SkiaSharedGLContextRef {
	h := l.inner.CreateSkiaSharedGLContext(ctx, size)
	l.record(CmdCreateSharedGLContext, 0, uintptr(h))
	return h
}

func (l *Library) RetainSkiaSharedGLContext(ctx backend.SkiaSharedGLContextRef) {
	l.record(CmdRetainSharedGLContext, uintptr(ctx), 0)
	l.inner.RetainSkiaSharedGLContext(ctx)
}

func (l *Library) ReleaseSkiaSharedGLContext(ctx backend.SkiaSharedGLContextRef) {
	l.record(CmdReleaseSharedGLContext, uintptr(ctx), 0)
	l.inner.ReleaseSkiaSharedGLContext(ctx)
}

func (l *Library) SkiaSharedGLContextMakeCurrent(ctx backend.SkiaSharedGLContextRef) {
	l.record(CmdMakeCurrent, uintptr(ctx), 0)
	l.inner.SkiaSharedGLContextMakeCurrent(ctx)
}

func (l *Library) SkiaSharedGLContextStealSurface(ctx backend.SkiaSharedGLContextRef) backend.SharedSurfaceRef {
	h := l.inner.SkiaSharedGLContextStealSurface(ctx)
	l.record(CmdStealSurface, uintptr(ctx), uintptr(h))
	return h
}

func (l *Library) SkiaSharedGLContextFlush(ctx backend.SkiaSharedGLContextRef) {
	l.record(CmdFlushSharedGLContext, uintptr(ctx), 0)
	l.inner.SkiaSharedGLContextFlush(ctx)
}

func (l *Library) CreateSkiaDrawTargetForFBO(ctx backend.SkiaSharedGLContextRef, size *backend.IntSize, format backend.SurfaceFormat) backend.DrawTargetRef {
	h := l.inner.CreateSkiaDrawTargetForFBO(ctx, size, format)
	l.record(CmdCreateDrawTargetForFBO, uintptr(ctx), uintptr(h))
	return h
}

func (l *Library) SkiaGetCurrentGLContext() backend.GLContext {
	h := l.inner.SkiaGetCurrentGLContext()
	l.record(CmdGetCurrentGLContext, 0, uintptr(h))
	return h
}
