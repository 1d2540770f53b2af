package software

import (
	"image"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/internal/pixfmt"
)

// surface is an immutable pixel buffer in one surface format.
type surface struct {
	width, height int
	format        backend.SurfaceFormat
	stride        int
	data          []byte
}

func newSurface(w, h int, format backend.SurfaceFormat) *surface {
	stride := w * format.BytesPerPixel()
	return &surface{
		width:  w,
		height: h,
		format: format,
		stride: stride,
		data:   make([]byte, stride*h),
	}
}

func (s *surface) size() backend.IntSize {
	return backend.IntSize{Width: int32(s.width), Height: int32(s.height)}
}

func (l *Library) addSurface(s *surface) backend.SourceSurfaceRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.newHandle()
	l.surfaces.add(h, s)
	return backend.SourceSurfaceRef(h)
}

func (l *Library) surface(h backend.SourceSurfaceRef) *surface {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.surfaces.get(uintptr(h))
}

// ReleaseSourceSurface implements backend.Library. Data surfaces share
// the handle space of their source surface and are released here too.
func (l *Library) ReleaseSourceSurface(h backend.SourceSurfaceRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.surfaces.release(uintptr(h))
}

// SourceSurfaceGetSize implements backend.Library.
func (l *Library) SourceSurfaceGetSize(h backend.SourceSurfaceRef) backend.IntSize {
	return l.surface(h).size()
}

// SourceSurfaceGetFormat implements backend.Library.
func (l *Library) SourceSurfaceGetFormat(h backend.SourceSurfaceRef) backend.SurfaceFormat {
	return l.surface(h).format
}

// SourceSurfaceGetDataSurface implements backend.Library. Every surface
// of this library is already in memory, so the data surface is the same
// object with one more reference.
func (l *Library) SourceSurfaceGetDataSurface(h backend.SourceSurfaceRef) backend.DataSourceSurfaceRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.surfaces.retain(uintptr(h))
	return backend.DataSourceSurfaceRef(h)
}

// DataSourceSurfaceGetData implements backend.Library.
func (l *Library) DataSourceSurfaceGetData(h backend.DataSourceSurfaceRef) []byte {
	return l.surface(backend.SourceSurfaceRef(h)).data
}

// DataSourceSurfaceGetStride implements backend.Library.
func (l *Library) DataSourceSurfaceGetStride(h backend.DataSourceSurfaceRef) int32 {
	return int32(l.surface(backend.SourceSurfaceRef(h)).stride)
}

// ReleaseSharedSurface implements backend.SharedSurfaceReleaser. Unknown
// handles are ignored.
func (l *Library) ReleaseSharedSurface(h backend.SharedSurfaceRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.stolen.take(uintptr(h)); ok {
		l.log().Debug("software: shared surface freed", "handle", uintptr(h))
	}
}

// SharedSurfaceImage returns the pixels of a stolen shared surface, or
// false when h is not a live shared surface.
func (l *Library) SharedSurfaceImage(h backend.SharedSurfaceRef) (*image.NRGBA, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.stolen.live[uintptr(h)]
	if !ok {
		return nil, false
	}
	return pixfmt.ToNRGBA(s.v.format, s.v.data, s.v.stride, s.v.width, s.v.height), true
}
