package azure

import (
	"github.com/gogpu/azure/backend"
)

// NativePaintingGraphicsContext describes the platform GL context that
// FBO draw targets share.
type NativePaintingGraphicsContext = backend.NativeGraphicsContext

// GraphicsMetadataProvider produces the graphics context descriptor of the
// current platform window. Windowing integrations supply it; this package
// only consumes its result.
type GraphicsMetadataProvider func() (*NativePaintingGraphicsContext, error)

// NewDrawTargetFromProvider creates an FBO draw target on the context
// returned by provide.
func NewDrawTargetFromProvider(provide GraphicsMetadataProvider, size IntSize, format SurfaceFormat) (*DrawTarget, error) {
	ctx, err := provide()
	if err != nil {
		return nil, err
	}
	return CreateDrawTargetWithFBO(SkiaBackend, ctx, size, format)
}

// StolenGLResources is a GL surface detached from its shared context by
// DrawTarget.StealGLResources. The caller owns it.
type StolenGLResources struct {
	lib     backend.Library
	surface backend.SharedSurfaceRef
}

// Surface returns the native surface handle.
func (r StolenGLResources) Surface() backend.SharedSurfaceRef {
	return r.surface
}

// Release frees the surface through the library that produced it. It
// does nothing when the library cannot free shared surfaces.
func (r *StolenGLResources) Release() {
	if r.surface == 0 {
		return
	}
	if rel, ok := r.lib.(backend.SharedSurfaceReleaser); ok {
		rel.ReleaseSharedSurface(r.surface)
	}
	r.surface = 0
}

// CurrentGLContext returns the library's current native GL context, or 0.
func CurrentGLContext() (backend.GLContext, error) {
	lib, err := CurrentLibrary()
	if err != nil {
		return 0, err
	}
	return lib.SkiaGetCurrentGLContext(), nil
}
