package software

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/azure/backend"
)

var (
	red   = backend.Color{R: 1, A: 1}
	green = backend.Color{G: 1, A: 1}
	blue  = backend.Color{B: 1, A: 1}
)

func newTarget(t *testing.T, lib *Library, w, h int32) backend.DrawTargetRef {
	t.Helper()
	dt := lib.CreateDrawTarget(backend.BackendSkia, &backend.IntSize{Width: w, Height: h}, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)
	return dt
}

func newPattern(t *testing.T, lib *Library, c backend.Color) backend.PatternRef {
	t.Helper()
	p := lib.CreateColorPattern(&c)
	t.Cleanup(func() { lib.ReleaseColorPattern(p) })
	return p
}

// pixel reads one B8G8R8A8 pixel through a snapshot.
func pixel(t *testing.T, lib *Library, dt backend.DrawTargetRef, x, y int) [4]byte {
	t.Helper()
	snap := lib.DrawTargetGetSnapshot(dt)
	require.NotZero(t, snap)
	defer lib.ReleaseSourceSurface(snap)
	ds := lib.SourceSurfaceGetDataSurface(snap)
	defer lib.ReleaseSourceSurface(backend.SourceSurfaceRef(ds))

	data := lib.DataSourceSurfaceGetData(ds)
	off := y*int(lib.DataSourceSurfaceGetStride(ds)) + x*4
	return [4]byte{data[off], data[off+1], data[off+2], data[off+3]}
}

func rectPath(lib *Library, dt backend.DrawTargetRef, x0, y0, x1, y1 float32) backend.PathRef {
	pb := lib.CreatePathBuilder(dt)
	defer lib.ReleasePathBuilder(pb)
	lib.PathBuilderMoveTo(pb, &backend.Point{X: x0, Y: y0})
	lib.PathBuilderLineTo(pb, &backend.Point{X: x1, Y: y0})
	lib.PathBuilderLineTo(pb, &backend.Point{X: x1, Y: y1})
	lib.PathBuilderLineTo(pb, &backend.Point{X: x0, Y: y1})
	lib.PathBuilderClose(pb)
	return lib.PathBuilderFinish(pb)
}

func TestCreateDrawTargetRejects(t *testing.T) {
	lib := New(WithMaxSurfaceSize(64))
	tests := []struct {
		name   string
		kind   backend.BackendType
		size   *backend.IntSize
		format backend.SurfaceFormat
	}{
		{"backend none", backend.BackendNone, &backend.IntSize{Width: 8, Height: 8}, backend.FormatB8G8R8A8},
		{"nil size", backend.BackendSkia, nil, backend.FormatB8G8R8A8},
		{"zero width", backend.BackendSkia, &backend.IntSize{Width: 0, Height: 8}, backend.FormatB8G8R8A8},
		{"negative height", backend.BackendSkia, &backend.IntSize{Width: 8, Height: -1}, backend.FormatB8G8R8A8},
		{"too large", backend.BackendSkia, &backend.IntSize{Width: 65, Height: 8}, backend.FormatB8G8R8A8},
		{"unknown format", backend.BackendSkia, &backend.IntSize{Width: 8, Height: 8}, backend.SurfaceFormat(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, lib.CreateDrawTarget(tt.kind, tt.size, tt.format))
		})
	}
	assert.Zero(t, lib.Stats().DrawTargets)
}

func TestDrawTargetSize(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 12, 7)
	defer lib.ReleaseDrawTarget(dt)
	assert.Equal(t, backend.IntSize{Width: 12, Height: 7}, lib.DrawTargetGetSize(dt))
}

func TestFillRect(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	lib.DrawTargetFillRect(dt, &backend.Rect{X: 2, Y: 2, Width: 4, Height: 4}, newPattern(t, lib, red), nil)

	assert.Equal(t, [4]byte{0, 0, 255, 255}, pixel(t, lib, dt, 3, 3))
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 0, 0))
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 7, 7))
}

func TestFillRectZeroAlphaDrawsNothing(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 4, 4)
	defer lib.ReleaseDrawTarget(dt)

	opts := backend.DefaultDrawOptions()
	opts.Alpha = 0
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 4, Height: 4}, newPattern(t, lib, red), &opts)
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 1, 1))
}

func TestDrawTargetForDataWritesBack(t *testing.T) {
	lib := New()
	const w, h, stride = 4, 4, 20
	data := make([]byte, stride*h)
	dt := lib.CreateDrawTargetForData(backend.BackendSkia, data, &backend.IntSize{Width: w, Height: h}, stride, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)
	defer lib.ReleaseDrawTarget(dt)

	lib.DrawTargetFillRect(dt, &backend.Rect{Width: w, Height: h}, newPattern(t, lib, blue), nil)

	off := 2*stride + 1*4
	assert.Equal(t, []byte{255, 0, 0, 255}, data[off:off+4])
	// Padding past the last pixel of a row is untouched.
	assert.Equal(t, []byte{0, 0, 0, 0}, data[16:20])
}

func TestDrawTargetForDataReadsExistingPixels(t *testing.T) {
	lib := New()
	data := bytes.Repeat([]byte{0, 255, 0, 255}, 4)
	dt := lib.CreateDrawTargetForData(backend.BackendSkia, data, &backend.IntSize{Width: 2, Height: 2}, 8, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)
	defer lib.ReleaseDrawTarget(dt)

	assert.Equal(t, [4]byte{0, 255, 0, 255}, pixel(t, lib, dt, 1, 1))
}

func TestDrawTargetForDataRejectsShortBuffers(t *testing.T) {
	lib := New()
	size := &backend.IntSize{Width: 4, Height: 4}
	assert.Zero(t, lib.CreateDrawTargetForData(backend.BackendSkia, make([]byte, 63), size, 16, backend.FormatB8G8R8A8))
	assert.Zero(t, lib.CreateDrawTargetForData(backend.BackendSkia, make([]byte, 64), size, 12, backend.FormatB8G8R8A8))
}

func TestClearRect(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 8, Height: 8}, newPattern(t, lib, red), nil)
	lib.DrawTargetClearRect(dt, &backend.Rect{X: 2, Y: 2, Width: 4, Height: 4})

	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 4, 4))
	assert.Equal(t, [4]byte{0, 0, 255, 255}, pixel(t, lib, dt, 0, 0))
}

func TestSourceOpReplacesInsideShapeOnly(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 8, Height: 8}, newPattern(t, lib, red), nil)
	opts := backend.DrawOptions{Alpha: 1, Fields: uint16(backend.OpSource) | uint16(backend.AntialiasDefault)<<8}
	lib.DrawTargetFillRect(dt, &backend.Rect{X: 4, Width: 4, Height: 8}, newPattern(t, lib, green), &opts)

	assert.Equal(t, [4]byte{0, 255, 0, 255}, pixel(t, lib, dt, 6, 3))
	assert.Equal(t, [4]byte{0, 0, 255, 255}, pixel(t, lib, dt, 1, 3))
}

func TestFillPath(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	path := rectPath(lib, dt, 0, 0, 4, 4)
	require.NotZero(t, path)
	defer lib.ReleasePath(path)

	lib.DrawTargetFill(dt, path, newPattern(t, lib, red), nil)
	assert.Equal(t, [4]byte{0, 0, 255, 255}, pixel(t, lib, dt, 1, 1))
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 6, 6))
}

func TestPathFinishIsSnapshot(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	pb := lib.CreatePathBuilder(dt)
	defer lib.ReleasePathBuilder(pb)
	lib.PathBuilderMoveTo(pb, &backend.Point{X: 0, Y: 0})
	lib.PathBuilderLineTo(pb, &backend.Point{X: 4, Y: 0})
	lib.PathBuilderLineTo(pb, &backend.Point{X: 4, Y: 4})
	lib.PathBuilderLineTo(pb, &backend.Point{X: 0, Y: 4})
	lib.PathBuilderClose(pb)
	path := lib.PathBuilderFinish(pb)
	defer lib.ReleasePath(path)

	lib.PathBuilderMoveTo(pb, &backend.Point{X: 5, Y: 5})
	lib.PathBuilderLineTo(pb, &backend.Point{X: 8, Y: 5})
	lib.PathBuilderLineTo(pb, &backend.Point{X: 8, Y: 8})

	lib.DrawTargetFill(dt, path, newPattern(t, lib, red), nil)
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 7, 6))
}

func TestStrokeLine(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	stroke := defaultStrokeOptions()
	stroke.LineWidth = 2
	lib.DrawTargetStrokeLine(dt, &backend.Point{X: 0, Y: 4}, &backend.Point{X: 8, Y: 4}, newPattern(t, lib, red), &stroke, nil)

	assert.Equal(t, byte(255), pixel(t, lib, dt, 4, 3)[3])
	assert.Equal(t, byte(255), pixel(t, lib, dt, 4, 4)[3])
	assert.Zero(t, pixel(t, lib, dt, 4, 0)[3])
}

func TestStrokeRect(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 16, 16)
	defer lib.ReleaseDrawTarget(dt)

	stroke := defaultStrokeOptions()
	stroke.LineWidth = 2
	lib.DrawTargetStrokeRect(dt, &backend.Rect{X: 4, Y: 4, Width: 8, Height: 8}, newPattern(t, lib, red), &stroke, nil)

	assert.Equal(t, byte(255), pixel(t, lib, dt, 8, 4)[3])
	assert.Zero(t, pixel(t, lib, dt, 8, 8)[3])
}

func TestSetTransform(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	m := backend.IdentityMatrix()
	m.M31, m.M32 = 4, 4
	lib.DrawTargetSetTransform(dt, &m)
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 2, Height: 2}, newPattern(t, lib, red), nil)

	assert.Equal(t, [4]byte{0, 0, 255, 255}, pixel(t, lib, dt, 5, 5))
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 1, 1))
}

func TestPushPopClip(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)
	pattern := newPattern(t, lib, red)

	clip := rectPath(lib, dt, 0, 0, 4, 8)
	defer lib.ReleasePath(clip)

	lib.DrawTargetPushClip(dt, clip)
	assert.Equal(t, 1, lib.ClipDepth(dt))
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 8, Height: 4}, pattern, nil)
	lib.DrawTargetPopClip(dt)
	assert.Equal(t, 0, lib.ClipDepth(dt))
	lib.DrawTargetFillRect(dt, &backend.Rect{Y: 4, Width: 8, Height: 4}, pattern, nil)

	assert.Equal(t, byte(255), pixel(t, lib, dt, 1, 1)[3])
	assert.Zero(t, pixel(t, lib, dt, 6, 1)[3])
	assert.Equal(t, byte(255), pixel(t, lib, dt, 6, 6)[3])
}

func TestClipAppliesToCompositionOps(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 8, Height: 8}, newPattern(t, lib, red), nil)

	clip := rectPath(lib, dt, 0, 0, 4, 8)
	defer lib.ReleasePath(clip)
	lib.DrawTargetPushClip(dt, clip)
	lib.DrawTargetClearRect(dt, &backend.Rect{Width: 8, Height: 8})
	lib.DrawTargetPopClip(dt)

	assert.Zero(t, pixel(t, lib, dt, 1, 1)[3])
	assert.Equal(t, byte(255), pixel(t, lib, dt, 6, 1)[3])
}

func TestPopClipUnderflowPanics(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 4, 4)
	defer lib.ReleaseDrawTarget(dt)

	assert.PanicsWithValue(t, ErrClipUnderflow, func() { lib.DrawTargetPopClip(dt) })
}

func TestInvalidHandlePanics(t *testing.T) {
	lib := New()
	assert.Panics(t, func() { lib.DrawTargetGetSize(backend.DrawTargetRef(42)) })
	assert.Panics(t, func() { lib.ReleaseDrawTarget(backend.DrawTargetRef(42)) })
}

func TestRetainRelease(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 4, 4)

	lib.RetainDrawTarget(dt)
	lib.ReleaseDrawTarget(dt)
	assert.Equal(t, 1, lib.Stats().DrawTargets)
	assert.Zero(t, lib.Stats().FreedDrawTargets)

	lib.ReleaseDrawTarget(dt)
	stats := lib.Stats()
	assert.Zero(t, stats.DrawTargets)
	assert.Equal(t, 1, stats.FreedDrawTargets)
}

func TestSnapshotOutlivesTarget(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 4, 4)
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 4, Height: 4}, newPattern(t, lib, red), nil)
	snap := lib.DrawTargetGetSnapshot(dt)
	lib.ReleaseDrawTarget(dt)

	assert.Equal(t, backend.IntSize{Width: 4, Height: 4}, lib.SourceSurfaceGetSize(snap))
	assert.Equal(t, backend.FormatB8G8R8A8, lib.SourceSurfaceGetFormat(snap))

	ds := lib.SourceSurfaceGetDataSurface(snap)
	lib.ReleaseSourceSurface(snap)
	assert.Equal(t, int32(16), lib.DataSourceSurfaceGetStride(ds))
	assert.Equal(t, []byte{0, 0, 255, 255}, lib.DataSourceSurfaceGetData(ds)[:4])
	lib.ReleaseSourceSurface(backend.SourceSurfaceRef(ds))
	assert.Zero(t, lib.Stats().Surfaces)
}

func TestSnapshotInTargetFormat(t *testing.T) {
	lib := New()
	dt := lib.CreateDrawTarget(backend.BackendSkia, &backend.IntSize{Width: 2, Height: 2}, backend.FormatA8)
	require.NotZero(t, dt)
	defer lib.ReleaseDrawTarget(dt)
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 2, Height: 2}, newPattern(t, lib, red), nil)

	snap := lib.DrawTargetGetSnapshot(dt)
	defer lib.ReleaseSourceSurface(snap)
	ds := lib.SourceSurfaceGetDataSurface(snap)
	defer lib.ReleaseSourceSurface(backend.SourceSurfaceRef(ds))

	assert.Equal(t, backend.FormatA8, lib.SourceSurfaceGetFormat(snap))
	assert.Equal(t, int32(2), lib.DataSourceSurfaceGetStride(ds))
	assert.Equal(t, []byte{255, 255, 255, 255}, lib.DataSourceSurfaceGetData(ds))
}

func TestCreateSourceSurfaceFromDataCopies(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 4, 4)
	defer lib.ReleaseDrawTarget(dt)

	data := bytes.Repeat([]byte{255, 0, 0, 255}, 4)
	s := lib.DrawTargetCreateSourceSurfaceFromData(dt, data, &backend.IntSize{Width: 2, Height: 2}, 8, backend.FormatB8G8R8A8)
	require.NotZero(t, s)
	defer lib.ReleaseSourceSurface(s)
	data[0] = 7

	ds := lib.SourceSurfaceGetDataSurface(s)
	defer lib.ReleaseSourceSurface(backend.SourceSurfaceRef(ds))
	assert.Equal(t, byte(255), lib.DataSourceSurfaceGetData(ds)[0])
}

func TestDrawSurface(t *testing.T) {
	lib := New()
	dt := newTarget(t, lib, 8, 8)
	defer lib.ReleaseDrawTarget(dt)

	src := lib.DrawTargetCreateSourceSurfaceFromData(dt, bytes.Repeat([]byte{255, 0, 0, 255}, 4), &backend.IntSize{Width: 2, Height: 2}, 8, backend.FormatB8G8R8A8)
	require.NotZero(t, src)
	defer lib.ReleaseSourceSurface(src)

	so := backend.NewDrawSurfaceOptions(backend.FilterPoint, false)
	lib.DrawTargetDrawSurface(dt, src, &backend.Rect{Width: 4, Height: 4}, &backend.Rect{Width: 2, Height: 2}, &so, nil)

	assert.Equal(t, [4]byte{255, 0, 0, 255}, pixel(t, lib, dt, 2, 2))
	assert.Equal(t, [4]byte{}, pixel(t, lib, dt, 6, 6))
}

func TestScaledFont(t *testing.T) {
	lib := New()

	f := lib.CreateScaledFontForData(backend.BackendSkia, goregular.TTF, 0, 16)
	require.NotZero(t, f)
	defer lib.ReleaseScaledFont(f)

	assert.Zero(t, lib.CreateScaledFontForData(backend.BackendSkia, []byte("not a font"), 0, 16))
	assert.Zero(t, lib.CreateScaledFontForData(backend.BackendSkia, goregular.TTF, 1, 16))
	assert.Zero(t, lib.CreateScaledFontForData(backend.BackendSkia, goregular.TTF, 0, 0))
}

func TestFillGlyphs(t *testing.T) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	gid, ok := face.NominalGlyph('H')
	require.True(t, ok)

	lib := New()
	dt := newTarget(t, lib, 24, 24)
	defer lib.ReleaseDrawTarget(dt)
	f := lib.CreateScaledFontForData(backend.BackendSkia, goregular.TTF, 0, 20)
	require.NotZero(t, f)
	defer lib.ReleaseScaledFont(f)

	glyphs := []backend.Glyph{{Index: uint32(gid), Position: backend.Point{X: 2, Y: 20}}}
	buf := backend.NewGlyphBuffer(glyphs)
	lib.DrawTargetFillGlyphs(dt, f, &buf, newPattern(t, lib, red), nil, 0)

	// The left stem of H sits just right of the pen position.
	var inked int
	for y := 6; y < 20; y++ {
		for x := 2; x < 8; x++ {
			if pixel(t, lib, dt, x, y)[3] > 0 {
				inked++
			}
		}
	}
	assert.Positive(t, inked)
	assert.Zero(t, pixel(t, lib, dt, 20, 2)[3])
}

func TestGlyphOutlineCache(t *testing.T) {
	lib := New(WithGlyphCacheSize(2))
	dt := newTarget(t, lib, 64, 24)
	defer lib.ReleaseDrawTarget(dt)
	f := lib.CreateScaledFontForData(backend.BackendSkia, goregular.TTF, 0, 16)
	require.NotZero(t, f)
	defer lib.ReleaseScaledFont(f)

	glyphs := []backend.Glyph{
		{Index: 40, Position: backend.Point{X: 2, Y: 20}},
		{Index: 40, Position: backend.Point{X: 14, Y: 20}},
		{Index: 41, Position: backend.Point{X: 26, Y: 20}},
		{Index: 42, Position: backend.Point{X: 38, Y: 20}},
	}
	buf := backend.NewGlyphBuffer(glyphs)
	lib.DrawTargetFillGlyphs(dt, f, &buf, newPattern(t, lib, red), nil, 0)

	lib.mu.Lock()
	stats := lib.fonts.get(uintptr(f)).outlines.Stats()
	lib.mu.Unlock()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(3), stats.Misses)
	assert.Equal(t, uint64(1), stats.Evictions)
	assert.Equal(t, 2, stats.Len)
}

func TestSharedGLContext(t *testing.T) {
	lib := New()
	native := backend.NativeGraphicsContext{Handle: 0x1234}
	size := backend.IntSize{Width: 4, Height: 4}

	assert.Zero(t, lib.CreateSkiaSharedGLContext(nil, &size))

	ctx := lib.CreateSkiaSharedGLContext(&native, &size)
	require.NotZero(t, ctx)
	assert.Zero(t, lib.SkiaGetCurrentGLContext())

	lib.SkiaSharedGLContextMakeCurrent(ctx)
	assert.Equal(t, backend.GLContext(0x1234), lib.SkiaGetCurrentGLContext())

	dt := lib.CreateSkiaDrawTargetForFBO(ctx, &size, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)
	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 4, Height: 4}, newPattern(t, lib, green), nil)
	lib.SkiaSharedGLContextFlush(ctx)

	surf := lib.SkiaSharedGLContextStealSurface(ctx)
	require.NotZero(t, surf)
	assert.Zero(t, lib.SkiaSharedGLContextStealSurface(ctx))

	img, ok := lib.SharedSurfaceImage(surf)
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 255, 0, 255}, img.Pix[:4])

	lib.ReleaseSkiaSharedGLContext(ctx)
	assert.Equal(t, 1, lib.Stats().GLContexts, "the FBO target keeps the context alive")
	lib.ReleaseDrawTarget(dt)

	stats := lib.Stats()
	assert.Zero(t, stats.GLContexts)
	assert.Equal(t, 1, stats.FreedGLContexts)
	assert.Zero(t, lib.SkiaGetCurrentGLContext())

	assert.Equal(t, 1, stats.SharedSurfaces)
	lib.ReleaseSharedSurface(surf)
	assert.Zero(t, lib.Stats().SharedSurfaces)
	_, ok = lib.SharedSurfaceImage(surf)
	assert.False(t, ok)
}

func TestStealSurfaceResolvesBoundTarget(t *testing.T) {
	lib := New()
	native := backend.NativeGraphicsContext{Handle: 1}
	size := backend.IntSize{Width: 2, Height: 2}
	ctx := lib.CreateSkiaSharedGLContext(&native, &size)
	require.NotZero(t, ctx)
	dt := lib.CreateSkiaDrawTargetForFBO(ctx, &size, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)
	lib.ReleaseSkiaSharedGLContext(ctx)
	defer lib.ReleaseDrawTarget(dt)

	lib.DrawTargetFillRect(dt, &backend.Rect{Width: 2, Height: 2}, newPattern(t, lib, red), nil)

	// No SkiaSharedGLContextFlush before stealing.
	surf := lib.SkiaSharedGLContextStealSurface(ctx)
	require.NotZero(t, surf)
	defer lib.ReleaseSharedSurface(surf)

	img, ok := lib.SharedSurfaceImage(surf)
	require.True(t, ok)
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[:4])
}

func TestSharedGLContextFlushDuringRelease(t *testing.T) {
	lib := New()
	native := backend.NativeGraphicsContext{Handle: 1}
	size := backend.IntSize{Width: 8, Height: 8}

	for range 20 {
		ctx := lib.CreateSkiaSharedGLContext(&native, &size)
		require.NotZero(t, ctx)
		dt := lib.CreateSkiaDrawTargetForFBO(ctx, &size, backend.FormatB8G8R8A8)
		require.NotZero(t, dt)
		lib.DrawTargetFillRect(dt, &backend.Rect{Width: 8, Height: 8}, newPattern(t, lib, green), nil)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				lib.SkiaSharedGLContextFlush(ctx)
			}
		}()
		lib.ReleaseDrawTarget(dt)
		wg.Wait()

		// The context outlives its target; flushing it is a no-op now.
		lib.SkiaSharedGLContextFlush(ctx)
		lib.ReleaseSkiaSharedGLContext(ctx)
	}

	stats := lib.Stats()
	assert.Zero(t, stats.DrawTargets)
	assert.Zero(t, stats.GLContexts)
}

func TestDrawTargetFlushWithoutAccelerator(t *testing.T) {
	var buf bytes.Buffer
	lib := New(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	const w, h = 2, 2
	data := make([]byte, w*4*h)
	dt := lib.CreateDrawTargetForData(backend.BackendSkia, data, &backend.IntSize{Width: w, Height: h}, w*4, backend.FormatB8G8R8A8)
	require.NotZero(t, dt)
	defer lib.ReleaseDrawTarget(dt)

	lib.DrawTargetFillRect(dt, &backend.Rect{Width: w, Height: h}, newPattern(t, lib, blue), nil)
	clear(data)
	lib.DrawTargetFlush(dt)

	assert.Equal(t, []byte{255, 0, 0, 255}, data[:4], "flush writes pixels back to caller memory")
	assert.NotContains(t, buf.String(), "gpu flush failed")
}

func TestRegisteredAsSoftware(t *testing.T) {
	lib, err := backend.Lookup(backend.LibrarySoftware)
	require.NoError(t, err)
	assert.Same(t, Shared(), lib)
}
