package azure

import (
	"image"

	"github.com/gogpu/azure/backend"
	"github.com/gogpu/azure/internal/pixfmt"
)

// Surface is the read-only query contract shared by surface types.
type Surface interface {
	Size() IntSize
	Format() SurfaceFormat
}

var (
	_ Surface = (*SourceSurface)(nil)
	_ Surface = (*DataSourceSurface)(nil)
)

// SourceSurface is read-only pixel content, such as a snapshot.
type SourceSurface struct {
	lib    backend.Library
	handle backend.SourceSurfaceRef
}

func (s *SourceSurface) ref() backend.SourceSurfaceRef {
	if s.handle == 0 {
		panic(released("SourceSurface"))
	}
	return s.handle
}

// Size returns the surface size in pixels.
func (s *SourceSurface) Size() IntSize {
	return intSizeFromWire(s.lib.SourceSurfaceGetSize(s.ref()))
}

// Format returns the pixel format. An unknown library code panics with
// ErrUnknownSurfaceFormat.
func (s *SourceSurface) Format() SurfaceFormat {
	return surfaceFormatFromWire(s.lib.SourceSurfaceGetFormat(s.ref()))
}

// DataSurface returns a surface with pixel access to the same content.
// s stays valid; both must be released.
func (s *SourceSurface) DataSurface() *DataSourceSurface {
	h := s.lib.SourceSurfaceGetDataSurface(s.ref())
	if h == 0 {
		panic(allocationFailed("SourceSurfaceGetDataSurface"))
	}
	return &DataSourceSurface{SourceSurface{lib: s.lib, handle: backend.SourceSurfaceRef(h)}}
}

// Release frees the surface. Further calls do nothing.
func (s *SourceSurface) Release() {
	if s.handle == 0 {
		Logger().Debug("azure: SourceSurface released twice")
		return
	}
	s.lib.ReleaseSourceSurface(s.handle)
	s.handle = 0
}

// DataSourceSurface is a SourceSurface whose pixel bytes are readable.
type DataSourceSurface struct {
	SourceSurface
}

func (s *DataSourceSurface) dataRef() backend.DataSourceSurfaceRef {
	return backend.DataSourceSurfaceRef(s.ref())
}

// Stride returns the distance in bytes between rows.
func (s *DataSourceSurface) Stride() int32 {
	return s.lib.DataSourceSurfaceGetStride(s.dataRef())
}

// WithData calls f with the pixel bytes, exactly Stride()*height long.
// The slice is only valid during f and must not be modified.
func (s *DataSourceSurface) WithData(f func(data []byte)) {
	h := s.dataRef()
	n := int(s.lib.DataSourceSurfaceGetStride(h)) * int(s.lib.SourceSurfaceGetSize(s.handle).Height)
	data := s.lib.DataSourceSurfaceGetData(h)
	f(data[:n:n])
}

// Image decodes the pixels into a non-premultiplied image.
func (s *DataSourceSurface) Image() *image.NRGBA {
	size, format, stride := s.Size(), s.Format(), s.Stride()
	var img *image.NRGBA
	s.WithData(func(data []byte) {
		img = pixfmt.ToNRGBA(format.wire(), data, int(stride), int(size.Width), int(size.Height))
	})
	return img
}
