package software

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/internal/composite"
	"github.com/gogpu/azure/internal/pixfmt"
)

// clipEntry is one pushed clip: the path and the transform it was pushed
// under.
type clipEntry struct {
	path *gg.Path
	m    gg.Matrix
}

// drawTarget renders into a premultiplied RGBA pixmap. store, when set,
// is caller memory in format that mirrors the pixmap after each call.
type drawTarget struct {
	kind          backend.BackendType
	format        backend.SurfaceFormat
	width, height int
	rasterizer    gg.RasterizerMode

	pm        *gg.Pixmap
	ctx       *gg.Context
	transform gg.Matrix
	clips     []clipEntry

	store  []byte
	stride int

	gl *glContext
}

func newDrawTarget(kind backend.BackendType, w, h int, format backend.SurfaceFormat, rasterizer gg.RasterizerMode) *drawTarget {
	t := &drawTarget{
		kind:       kind,
		format:     format,
		width:      w,
		height:     h,
		rasterizer: rasterizer,
		pm:         gg.NewPixmap(w, h),
		transform:  gg.Identity(),
	}
	t.ctx = gg.NewContextForPixmap(t.pm)
	t.ctx.SetRasterizerMode(rasterizer)
	return t
}

func (t *drawTarget) close() {
	_ = t.ctx.Close()
}

// layer is a transparent scratch surface sharing the target's transform
// and clip stack.
type layer struct {
	pm  *gg.Pixmap
	ctx *gg.Context
}

func (t *drawTarget) newLayer() layer {
	pm := gg.NewPixmap(t.width, t.height)
	ctx := gg.NewContextForPixmap(pm)
	ctx.SetRasterizerMode(t.rasterizer)
	for _, c := range t.clips {
		ctx.SetTransform(c.m)
		ctx.DrawPath(c.path)
		ctx.Clip()
	}
	ctx.SetTransform(t.transform)
	return layer{pm: pm, ctx: ctx}
}

func (ly layer) close() {
	_ = ly.ctx.Close()
}

// drawFunc issues one drawing call on c. When coverageOnly is set it must
// paint the same shape in opaque white so the caller learns its coverage.
type drawFunc func(c *gg.Context, alpha float64, coverageOnly bool)

// paint runs draw with the composition op and alpha of opts.
func (t *drawTarget) paint(lib *Library, opts *backend.DrawOptions, draw drawFunc) {
	o := backend.DefaultDrawOptions()
	if opts != nil {
		o = *opts
	}
	if mode := o.AntialiasMode(); mode == backend.AntialiasNone {
		lib.log().Debug("software: aliased rendering not supported, drawing antialiased", "mode", mode)
	}
	alpha := min(max(float64(o.Alpha), 0), 1)

	if op := o.CompositionOp(); op == backend.OpOver {
		if alpha == 0 {
			return
		}
		draw(t.ctx, alpha, false)
	} else {
		src := t.newLayer()
		defer src.close()
		if alpha > 0 {
			draw(src.ctx, alpha, false)
		}
		mask := t.newLayer()
		defer mask.close()
		draw(mask.ctx, 1, true)

		composite.Apply(op, t.pm.Data(), src.pm.Data(), mask.pm.Data())
		t.pm.NotifyPixelsChanged()
	}
	t.writeBack()
}

// writeBack mirrors the pixmap into caller memory.
func (t *drawTarget) writeBack() {
	if t.store == nil {
		return
	}
	pixfmt.Encode(t.format, t.store, t.stride, t.pm.Data(), t.width, t.height)
}

// encode returns the target pixels in its surface format with a tight
// stride.
func (t *drawTarget) encode() *surface {
	s := newSurface(t.width, t.height, t.format)
	pixfmt.Encode(t.format, s.data, s.stride, t.pm.Data(), t.width, t.height)
	return s
}

func (t *drawTarget) setTransform(m gg.Matrix) {
	t.transform = m
	t.ctx.SetTransform(m)
}

func (t *drawTarget) pushClip(p *gg.Path) {
	t.ctx.Push()
	t.ctx.DrawPath(p)
	t.ctx.Clip()
	t.clips = append(t.clips, clipEntry{path: p, m: t.transform})
}

func (t *drawTarget) popClip() {
	if len(t.clips) == 0 {
		panic(ErrClipUnderflow)
	}
	t.ctx.Pop()
	// Pop restores the transform saved by Push; the current one wins.
	t.ctx.SetTransform(t.transform)
	t.clips[len(t.clips)-1] = clipEntry{}
	t.clips = t.clips[:len(t.clips)-1]
}

func setPaint(c *gg.Context, color backend.Color, alpha float64, coverageOnly bool) {
	if coverageOnly {
		c.SetRGBA(1, 1, 1, 1)
		return
	}
	c.SetRGBA(float64(color.R), float64(color.G), float64(color.B), float64(color.A)*alpha)
}

func matrixFor(m *backend.Matrix) gg.Matrix {
	return gg.Matrix{
		A: float64(m.M11), B: float64(m.M21), C: float64(m.M31),
		D: float64(m.M12), E: float64(m.M22), F: float64(m.M32),
	}
}

func defaultStrokeOptions() backend.StrokeOptions {
	return backend.StrokeOptions{
		LineWidth:  1,
		MiterLimit: 10,
		Fields:     uint8(backend.CapButt)<<4 | uint8(backend.JoinMiterOrBevel),
	}
}

// strokeFor converts wire stroke options to a gg stroke style.
func strokeFor(o *backend.StrokeOptions) gg.Stroke {
	if o == nil {
		d := defaultStrokeOptions()
		o = &d
	}
	s := gg.Stroke{
		Width:      float64(o.LineWidth),
		Cap:        convertCapStyle(o.CapStyle()),
		Join:       convertJoinStyle(o.JoinStyle()),
		MiterLimit: float64(o.MiterLimit),
	}
	if dashes := o.Dashes(); len(dashes) > 0 {
		lengths := make([]float64, len(dashes))
		for i, d := range dashes {
			lengths[i] = float64(d)
		}
		if dash := gg.NewDash(lengths...); dash != nil {
			s.Dash = dash.WithOffset(float64(o.DashOffset))
		}
	}
	return s
}

func convertCapStyle(c backend.CapStyle) gg.LineCap {
	switch c {
	case backend.CapRound:
		return gg.LineCapRound
	case backend.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// convertJoinStyle maps MiterOrBevel to Miter; gg falls back to bevel
// past the miter limit.
func convertJoinStyle(j backend.JoinStyle) gg.LineJoin {
	switch j {
	case backend.JoinRound:
		return gg.LineJoinRound
	case backend.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
