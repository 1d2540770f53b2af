package software

import (
	"errors"
	"image"

	"github.com/chewxy/math32"
	"github.com/gogpu/gg"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/internal/pixfmt"
)

// ErrClipUnderflow is the panic value of DrawTargetPopClip on a target
// with no pushed clip.
var ErrClipUnderflow = errors.New("software: PopClip without matching PushClip")

// validSize reports whether a w x h surface may be allocated.
func (l *Library) validSize(size *backend.IntSize) bool {
	return size != nil &&
		size.Width > 0 && size.Height > 0 &&
		int(size.Width) <= l.opts.maxSurfaceSize && int(size.Height) <= l.opts.maxSurfaceSize
}

// CreateDrawTarget implements backend.Library.
func (l *Library) CreateDrawTarget(kind backend.BackendType, size *backend.IntSize, format backend.SurfaceFormat) backend.DrawTargetRef {
	if kind == backend.BackendNone || !l.validSize(size) || format.BytesPerPixel() == 0 {
		l.log().Debug("software: refusing draw target", "backend", kind, "size", size, "format", format)
		return 0
	}
	t := newDrawTarget(kind, int(size.Width), int(size.Height), format, l.opts.rasterizer)
	return l.addTarget(t)
}

// CreateDrawTargetForData implements backend.Library. Existing pixels in
// data become the initial content.
func (l *Library) CreateDrawTargetForData(kind backend.BackendType, data []byte, size *backend.IntSize, stride int32, format backend.SurfaceFormat) backend.DrawTargetRef {
	bpp := format.BytesPerPixel()
	if kind == backend.BackendNone || !l.validSize(size) || bpp == 0 ||
		int(stride) < int(size.Width)*bpp || len(data) < int(stride)*int(size.Height) {
		l.log().Debug("software: refusing draw target for data", "backend", kind, "size", size, "stride", stride, "len", len(data))
		return 0
	}
	t := newDrawTarget(kind, int(size.Width), int(size.Height), format, l.opts.rasterizer)
	t.store = data
	t.stride = int(stride)
	pixfmt.Decode(format, t.pm.Data(), data, t.stride, t.width, t.height)
	t.pm.NotifyPixelsChanged()
	return l.addTarget(t)
}

func (l *Library) addTarget(t *drawTarget) backend.DrawTargetRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.newHandle()
	l.targets.add(h, t)
	l.log().Debug("software: draw target created", "handle", h, "width", t.width, "height", t.height, "format", t.format)
	return backend.DrawTargetRef(h)
}

func (l *Library) target(dt backend.DrawTargetRef) *drawTarget {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.targets.get(uintptr(dt))
}

// RetainDrawTarget implements backend.Library.
func (l *Library) RetainDrawTarget(dt backend.DrawTargetRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	refs := l.targets.retain(uintptr(dt))
	l.log().Debug("software: draw target retained", "handle", uintptr(dt), "refs", refs)
}

// ReleaseDrawTarget implements backend.Library.
func (l *Library) ReleaseDrawTarget(dt backend.DrawTargetRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, freed := l.targets.release(uintptr(dt))
	if !freed {
		return
	}
	t.close()
	if t.gl != nil {
		if t.gl.target == t {
			t.gl.target = nil
		}
		l.releaseGLContextLocked(t.gl.handle)
	}
	l.log().Debug("software: draw target freed", "handle", uintptr(dt))
}

// ClipDepth returns the number of clips pushed on dt.
func (l *Library) ClipDepth(dt backend.DrawTargetRef) int {
	return len(l.target(dt).clips)
}

// DrawTargetGetSize implements backend.Library.
func (l *Library) DrawTargetGetSize(dt backend.DrawTargetRef) backend.IntSize {
	t := l.target(dt)
	return backend.IntSize{Width: int32(t.width), Height: int32(t.height)}
}

// DrawTargetFlush implements backend.Library. Drawing is immediate, so
// only caller memory needs refreshing.
func (l *Library) DrawTargetFlush(dt backend.DrawTargetRef) {
	t := l.target(dt)
	if err := t.ctx.FlushGPU(); err != nil {
		l.log().Debug("software: gpu flush failed", "handle", uintptr(dt), "err", err)
	}
	t.writeBack()
}

// DrawTargetClearRect implements backend.Library. The rectangle is
// transformed and clipped like any other drawing.
func (l *Library) DrawTargetClearRect(dt backend.DrawTargetRef, rect *backend.Rect) {
	t := l.target(dt)
	opts := backend.DrawOptions{Alpha: 1, Fields: uint16(backend.OpDestOut)}
	t.paint(l, &opts, func(c *gg.Context, _ float64, _ bool) {
		c.SetRGBA(1, 1, 1, 1)
		c.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
		_ = c.Fill()
	})
}

// DrawTargetFill implements backend.Library.
func (l *Library) DrawTargetFill(dt backend.DrawTargetRef, path backend.PathRef, pattern backend.PatternRef, options *backend.DrawOptions) {
	t, p, color := l.target(dt), l.path(path), l.pattern(pattern)
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		setPaint(c, color, alpha, coverageOnly)
		_ = c.FillPath(p)
	})
}

// DrawTargetFillRect implements backend.Library.
func (l *Library) DrawTargetFillRect(dt backend.DrawTargetRef, rect *backend.Rect, pattern backend.PatternRef, options *backend.DrawOptions) {
	t, color := l.target(dt), l.pattern(pattern)
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		setPaint(c, color, alpha, coverageOnly)
		c.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
		_ = c.Fill()
	})
}

// DrawTargetStroke implements backend.Library.
func (l *Library) DrawTargetStroke(dt backend.DrawTargetRef, path backend.PathRef, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	t, p, color := l.target(dt), l.path(path), l.pattern(pattern)
	style := strokeFor(stroke)
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		setPaint(c, color, alpha, coverageOnly)
		c.SetStroke(style)
		_ = c.StrokePath(p)
	})
}

// DrawTargetStrokeLine implements backend.Library.
func (l *Library) DrawTargetStrokeLine(dt backend.DrawTargetRef, start, end *backend.Point, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	t, color := l.target(dt), l.pattern(pattern)
	style := strokeFor(stroke)
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		setPaint(c, color, alpha, coverageOnly)
		c.SetStroke(style)
		c.ClearPath()
		c.DrawLine(float64(start.X), float64(start.Y), float64(end.X), float64(end.Y))
		_ = c.Stroke()
	})
}

// DrawTargetStrokeRect implements backend.Library.
func (l *Library) DrawTargetStrokeRect(dt backend.DrawTargetRef, rect *backend.Rect, pattern backend.PatternRef, stroke *backend.StrokeOptions, options *backend.DrawOptions) {
	t, color := l.target(dt), l.pattern(pattern)
	style := strokeFor(stroke)
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		setPaint(c, color, alpha, coverageOnly)
		c.SetStroke(style)
		c.ClearPath()
		c.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
		_ = c.Stroke()
	})
}

// DrawTargetDrawSurface implements backend.Library. source is in surface
// pixels and is rounded outwards to whole pixels.
func (l *Library) DrawTargetDrawSurface(dt backend.DrawTargetRef, surf backend.SourceSurfaceRef, dest, source *backend.Rect, surfOptions *backend.DrawSurfaceOptions, options *backend.DrawOptions) {
	t, s := l.target(dt), l.surface(surf)
	img := gg.ImageBufFromImage(pixfmt.ToNRGBA(s.format, s.data, s.stride, s.width, s.height))
	src := image.Rect(
		int(math32.Floor(source.X)), int(math32.Floor(source.Y)),
		int(math32.Ceil(source.X+source.Width)), int(math32.Ceil(source.Y+source.Height)),
	).Intersect(image.Rect(0, 0, s.width, s.height))
	if src.Empty() {
		return
	}
	interp := gg.InterpBilinear
	if surfOptions != nil && surfOptions.Filter() == backend.FilterPoint {
		interp = gg.InterpNearest
	}
	x, y := float64(dest.X), float64(dest.Y)
	w, h := float64(dest.Width), float64(dest.Height)
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		if coverageOnly {
			c.SetRGBA(1, 1, 1, 1)
			c.DrawRectangle(x, y, w, h)
			_ = c.Fill()
			return
		}
		c.DrawImageEx(img, gg.DrawImageOptions{
			X:             x,
			Y:             y,
			DstWidth:      w,
			DstHeight:     h,
			SrcRect:       &src,
			Interpolation: interp,
			Opacity:       alpha,
		})
	})
}

// DrawTargetGetSnapshot implements backend.Library.
func (l *Library) DrawTargetGetSnapshot(dt backend.DrawTargetRef) backend.SourceSurfaceRef {
	s := l.target(dt).encode()
	return l.addSurface(s)
}

// DrawTargetCreateSourceSurfaceFromData implements backend.Library. The
// bytes are copied.
func (l *Library) DrawTargetCreateSourceSurfaceFromData(dt backend.DrawTargetRef, data []byte, size *backend.IntSize, stride int32, format backend.SurfaceFormat) backend.SourceSurfaceRef {
	l.target(dt)
	bpp := format.BytesPerPixel()
	if !l.validSize(size) || bpp == 0 || int(stride) < int(size.Width)*bpp || len(data) < int(stride)*int(size.Height) {
		return 0
	}
	s := &surface{
		width:  int(size.Width),
		height: int(size.Height),
		format: format,
		stride: int(stride),
		data:   append([]byte(nil), data[:int(stride)*int(size.Height)]...),
	}
	return l.addSurface(s)
}

// DrawTargetSetTransform implements backend.Library.
func (l *Library) DrawTargetSetTransform(dt backend.DrawTargetRef, m *backend.Matrix) {
	l.target(dt).setTransform(matrixFor(m))
}

// DrawTargetPushClip implements backend.Library.
func (l *Library) DrawTargetPushClip(dt backend.DrawTargetRef, path backend.PathRef) {
	t, p := l.target(dt), l.path(path)
	t.pushClip(p)
}

// DrawTargetPopClip implements backend.Library. It panics with
// ErrClipUnderflow when no clip is pushed.
func (l *Library) DrawTargetPopClip(dt backend.DrawTargetRef) {
	l.target(dt).popClip()
}
