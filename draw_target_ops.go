package azure

import (
	"github.com/gogpu/azure/backend"
)

// Size returns the target size in pixels.
func (dt *DrawTarget) Size() IntSize {
	return intSizeFromWire(dt.lib.DrawTargetGetSize(dt.ref()))
}

// Flush completes pending drawing. For GL-backed targets the shared
// context is flushed too.
func (dt *DrawTarget) Flush() {
	dt.lib.DrawTargetFlush(dt.ref())
	if dt.gl != 0 {
		dt.lib.SkiaSharedGLContextFlush(dt.gl)
	}
}

// ClearRect makes rect transparent, subject to transform and clip.
func (dt *DrawTarget) ClearRect(rect Rect) {
	r := rect.wire()
	dt.lib.DrawTargetClearRect(dt.ref(), &r)
}

// Fill fills path with pattern.
func (dt *DrawTarget) Fill(path *Path, pattern *ColorPattern, opts DrawOptions) {
	o := opts.wire()
	dt.lib.DrawTargetFill(dt.ref(), path.ref(), pattern.ref(), &o)
}

// FillRect fills rect with pattern. A nil opts selects the library
// defaults.
func (dt *DrawTarget) FillRect(rect Rect, pattern *ColorPattern, opts *DrawOptions) {
	r := rect.wire()
	var o *backend.DrawOptions
	if opts != nil {
		w := opts.wire()
		o = &w
	}
	dt.lib.DrawTargetFillRect(dt.ref(), &r, pattern.ref(), o)
}

// Stroke strokes the outline of path.
func (dt *DrawTarget) Stroke(path *Path, pattern *ColorPattern, stroke StrokeOptions, opts DrawOptions) {
	s, o := stroke.wire(), opts.wire()
	dt.lib.DrawTargetStroke(dt.ref(), path.ref(), pattern.ref(), &s, &o)
}

// StrokeLine strokes the segment from start to end.
func (dt *DrawTarget) StrokeLine(start, end Point2D, pattern *ColorPattern, stroke StrokeOptions, opts DrawOptions) {
	p0, p1 := start.wire(), end.wire()
	s, o := stroke.wire(), opts.wire()
	dt.lib.DrawTargetStrokeLine(dt.ref(), &p0, &p1, pattern.ref(), &s, &o)
}

// StrokeRect strokes the outline of rect.
func (dt *DrawTarget) StrokeRect(rect Rect, pattern *ColorPattern, stroke StrokeOptions, opts DrawOptions) {
	r := rect.wire()
	s, o := stroke.wire(), opts.wire()
	dt.lib.DrawTargetStrokeRect(dt.ref(), &r, pattern.ref(), &s, &o)
}

// DrawSurface draws the source rectangle of surface, in surface pixels,
// scaled into dest.
func (dt *DrawTarget) DrawSurface(surface *SourceSurface, dest, source Rect, surfOpts DrawSurfaceOptions, opts DrawOptions) {
	d, s := dest.wire(), source.wire()
	so, o := surfOpts.wire(), opts.wire()
	dt.lib.DrawTargetDrawSurface(dt.ref(), surface.ref(), &d, &s, &so, &o)
}

// Snapshot returns the current pixels as a surface. Later drawing does
// not change the snapshot.
func (dt *DrawTarget) Snapshot() *SourceSurface {
	h := dt.lib.DrawTargetGetSnapshot(dt.ref())
	if h == 0 {
		panic(allocationFailed("DrawTargetGetSnapshot"))
	}
	return &SourceSurface{lib: dt.lib, handle: h}
}

// CreateSourceSurfaceFromData copies data into a new surface compatible
// with the target. data must be exactly stride*size.Height bytes long;
// anything else panics with ErrContractViolation.
func (dt *DrawTarget) CreateSourceSurfaceFromData(data []byte, size IntSize, stride int32, format SurfaceFormat) *SourceSurface {
	if need := int(stride) * int(size.Height); len(data) != need {
		panic(contractViolation("surface data has %d bytes, stride*height is %d", len(data), need))
	}
	ws := size.wire()
	h := dt.lib.DrawTargetCreateSourceSurfaceFromData(dt.ref(), data, &ws, stride, format.wire())
	if h == 0 {
		panic(allocationFailed("DrawTargetCreateSourceSurfaceFromData"))
	}
	return &SourceSurface{lib: dt.lib, handle: h}
}

// SetTransform replaces the transform applied to later drawing.
func (dt *DrawTarget) SetTransform(m Matrix2D) {
	w := m.wire()
	dt.lib.DrawTargetSetTransform(dt.ref(), &w)
}

// FillGlyphs fills glyphs of font with pattern. Glyph positions are pen
// positions on the baseline.
func (dt *DrawTarget) FillGlyphs(font *ScaledFont, glyphs []Glyph, pattern *ColorPattern, opts DrawOptions) {
	wg := make([]backend.Glyph, len(glyphs))
	for i, g := range glyphs {
		wg[i] = g.wire()
	}
	buf := backend.NewGlyphBuffer(wg)
	o := opts.wire()
	dt.lib.DrawTargetFillGlyphs(dt.ref(), font.ref(), &buf, pattern.ref(), &o, 0)
}

// CreatePathBuilder returns an empty builder for paths drawn on this
// target.
func (dt *DrawTarget) CreatePathBuilder() *PathBuilder {
	h := dt.lib.CreatePathBuilder(dt.ref())
	if h == 0 {
		panic(allocationFailed("CreatePathBuilder"))
	}
	return &PathBuilder{lib: dt.lib, handle: h}
}

// PushClip intersects the clip with path until the matching PopClip.
func (dt *DrawTarget) PushClip(path *Path) {
	dt.lib.DrawTargetPushClip(dt.ref(), path.ref())
}

// PopClip removes the most recently pushed clip. Popping with no clip
// pushed is a caller bug; libraries are free to abort.
func (dt *DrawTarget) PopClip() {
	dt.lib.DrawTargetPopClip(dt.ref())
}
