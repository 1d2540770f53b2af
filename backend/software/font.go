package software

import (
	"bytes"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/gogpu/gg"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/internal/cache"
)

// scaledFont is one face of a font file at a fixed pixel size.
type scaledFont struct {
	face  *font.Face
	scale float64 // pixels per font unit

	outlines *cache.LRU[font.GID, *gg.Path]
}

// outline returns the glyph outline in pixels with the origin on the
// baseline and Y growing down. Glyphs without an outline return nil.
func (f *scaledFont) outline(gid font.GID) *gg.Path {
	return f.outlines.GetOrCreate(gid, func() *gg.Path { return f.buildOutline(gid) })
}

func (f *scaledFont) buildOutline(gid font.GID) *gg.Path {
	var p *gg.Path
	if o, ok := f.face.GlyphData(gid).(font.GlyphOutline); ok && len(o.Segments) > 0 {
		p = gg.NewPath()
		pt := func(sp ot.SegmentPoint) (float64, float64) {
			return float64(sp.X) * f.scale, -float64(sp.Y) * f.scale
		}
		for _, seg := range o.Segments {
			switch seg.Op {
			case ot.SegmentOpMoveTo:
				if p.HasCurrentPoint() {
					p.Close()
				}
				p.MoveTo(pt(seg.Args[0]))
			case ot.SegmentOpLineTo:
				p.LineTo(pt(seg.Args[0]))
			case ot.SegmentOpQuadTo:
				cx, cy := pt(seg.Args[0])
				x, y := pt(seg.Args[1])
				p.QuadraticTo(cx, cy, x, y)
			case ot.SegmentOpCubeTo:
				c1x, c1y := pt(seg.Args[0])
				c2x, c2y := pt(seg.Args[1])
				x, y := pt(seg.Args[2])
				p.CubicTo(c1x, c1y, c2x, c2y, x, y)
			}
		}
		p.Close()
	}
	return p
}

// CreateScaledFontForData implements backend.Library. data holds an
// OpenType font or collection and index selects the face.
func (l *Library) CreateScaledFontForData(kind backend.BackendType, data []byte, index uint32, size float32) backend.ScaledFontRef {
	if kind == backend.BackendNone || size <= 0 {
		return 0
	}
	faces, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		l.log().Debug("software: font data rejected", "err", err)
		return 0
	}
	if int(index) >= len(faces) {
		l.log().Debug("software: font index out of range", "index", index, "faces", len(faces))
		return 0
	}
	face := faces[index]
	upem := face.Upem()
	if upem == 0 {
		upem = 1000
	}
	f := &scaledFont{
		face:     face,
		scale:    float64(size) / float64(upem),
		outlines: cache.New[font.GID, *gg.Path](l.opts.glyphCacheSize),
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.newHandle()
	l.fonts.add(h, f)
	return backend.ScaledFontRef(h)
}

// ReleaseScaledFont implements backend.Library.
func (l *Library) ReleaseScaledFont(h backend.ScaledFontRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fonts.release(uintptr(h))
}

// DrawTargetFillGlyphs implements backend.Library. Glyph outlines are
// filled as one path; renderingOptions is not consulted.
func (l *Library) DrawTargetFillGlyphs(dt backend.DrawTargetRef, h backend.ScaledFontRef, glyphs *backend.GlyphBuffer, pattern backend.PatternRef, options *backend.DrawOptions, _ backend.GlyphRenderingOptionsRef) {
	t, color := l.target(dt), l.pattern(pattern)
	l.mu.Lock()
	f := l.fonts.get(uintptr(h))
	l.mu.Unlock()

	run := gg.NewPath()
	for _, g := range glyphs.Slice() {
		o := f.outline(font.GID(g.Index))
		if o == nil {
			continue
		}
		run.Append(o.Transform(gg.Translate(float64(g.Position.X), float64(g.Position.Y))))
	}
	if run.NumVerbs() == 0 {
		return
	}
	t.paint(l, options, func(c *gg.Context, alpha float64, coverageOnly bool) {
		setPaint(c, color, alpha, coverageOnly)
		_ = c.FillPath(run)
	})
}
