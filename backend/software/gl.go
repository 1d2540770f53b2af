package software

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/internal/pixfmt"
)

// glContext stands in for a Skia shared GL context. texture plays the
// FBO color attachment; it is nil once stolen.
type glContext struct {
	handle  uintptr
	native  backend.NativeGraphicsContext
	size    backend.IntSize
	texture *surface
	target  *drawTarget
}

// CreateSkiaSharedGLContext implements backend.Library.
func (l *Library) CreateSkiaSharedGLContext(ctx *backend.NativeGraphicsContext, size *backend.IntSize) backend.SkiaSharedGLContextRef {
	if ctx == nil || !l.validSize(size) {
		return 0
	}
	if p := ctx.Provider; p != nil {
		info := p.AdapterInfo()
		l.log().Debug("software: shared GL context on device", "adapter", info.Name, "type", info.Type)
		switch f := p.SurfaceFormat(); f {
		case gputypes.TextureFormatUndefined, gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm:
		default:
			l.log().Warn("software: device surface format is not 8-bit RGBA, presenting will convert", "format", f)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.newHandle()
	l.glContexts.add(h, &glContext{
		handle:  h,
		native:  *ctx,
		size:    *size,
		texture: newSurface(int(size.Width), int(size.Height), backend.FormatB8G8R8A8),
	})
	l.log().Debug("software: shared GL context created", "handle", h, "width", size.Width, "height", size.Height)
	return backend.SkiaSharedGLContextRef(h)
}

// RetainSkiaSharedGLContext implements backend.Library.
func (l *Library) RetainSkiaSharedGLContext(ctx backend.SkiaSharedGLContextRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.glContexts.retain(uintptr(ctx))
}

// ReleaseSkiaSharedGLContext implements backend.Library.
func (l *Library) ReleaseSkiaSharedGLContext(ctx backend.SkiaSharedGLContextRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releaseGLContextLocked(uintptr(ctx))
}

func (l *Library) releaseGLContextLocked(h uintptr) {
	if _, freed := l.glContexts.release(h); !freed {
		return
	}
	if uintptr(l.current) == h {
		l.current = 0
	}
	l.log().Debug("software: shared GL context freed", "handle", h)
}

func (l *Library) glContext(ctx backend.SkiaSharedGLContextRef) *glContext {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.glContexts.get(uintptr(ctx))
}

// SkiaSharedGLContextMakeCurrent implements backend.Library.
func (l *Library) SkiaSharedGLContextMakeCurrent(ctx backend.SkiaSharedGLContextRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.glContexts.get(uintptr(ctx))
	l.current = ctx
}

// SkiaSharedGLContextStealSurface implements backend.Library. The bound
// target is resolved first, then the texture moves to the caller; a
// second steal returns the null handle.
func (l *Library) SkiaSharedGLContextStealSurface(ctx backend.SkiaSharedGLContextRef) backend.SharedSurfaceRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	g := l.glContexts.get(uintptr(ctx))
	if g.texture == nil {
		return 0
	}
	g.resolve()
	h := l.newHandle()
	l.stolen.add(h, g.texture)
	g.texture = nil
	return backend.SharedSurfaceRef(h)
}

// SkiaSharedGLContextFlush implements backend.Library. The bound
// target's pixels are resolved into the texture.
func (l *Library) SkiaSharedGLContextFlush(ctx backend.SkiaSharedGLContextRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.glContexts.get(uintptr(ctx)).resolve()
}

// resolve copies the bound target into the texture. Callers hold l.mu.
func (g *glContext) resolve() {
	t := g.target
	if g.texture == nil || t == nil {
		return
	}
	s := newSurface(t.width, t.height, backend.FormatB8G8R8A8)
	pixfmt.Encode(backend.FormatB8G8R8A8, s.data, s.stride, t.pm.Data(), t.width, t.height)
	g.texture = s
}

// CreateSkiaDrawTargetForFBO implements backend.Library. The target
// holds a reference on ctx until it is freed.
func (l *Library) CreateSkiaDrawTargetForFBO(ctx backend.SkiaSharedGLContextRef, size *backend.IntSize, format backend.SurfaceFormat) backend.DrawTargetRef {
	g := l.glContext(ctx)
	if !l.validSize(size) || format.BytesPerPixel() == 0 {
		return 0
	}
	t := newDrawTarget(backend.BackendSkia, int(size.Width), int(size.Height), format, l.opts.rasterizer)
	t.gl = g

	l.mu.Lock()
	defer l.mu.Unlock()
	l.glContexts.retain(uintptr(ctx))
	g.target = t
	h := l.newHandle()
	l.targets.add(h, t)
	return backend.DrawTargetRef(h)
}

// SkiaGetCurrentGLContext implements backend.Library. It returns the
// native context of the current shared context, or 0.
func (l *Library) SkiaGetCurrentGLContext() backend.GLContext {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == 0 {
		return 0
	}
	s, ok := l.glContexts.live[uintptr(l.current)]
	if !ok {
		return 0
	}
	return backend.GLContext(s.v.native.Handle)
}
