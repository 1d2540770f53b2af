package azure

import (
	"github.com/gogpu/azure/backend"
)

// pixelStore is caller memory backing a draw target. Clones share one
// store, which keeps the buffer reachable while any of them is live.
type pixelStore struct {
	data []byte
}

// DrawTarget is a surface that drawing operations render into, together
// with its transform and clip stack.
//
// A DrawTarget is not safe for concurrent use. Clones denote the same
// surface, so drawing through one is visible through all of them.
type DrawTarget struct {
	lib    backend.Library
	handle backend.DrawTargetRef
	store  *pixelStore
	gl     backend.SkiaSharedGLContextRef
}

// NewDrawTarget allocates a draw target whose pixels the library owns.
// It panics with an error wrapping ErrAllocationFailed when the library
// returns a null handle.
func NewDrawTarget(backendType BackendType, size IntSize, format SurfaceFormat) *DrawTarget {
	dt, err := CreateDrawTarget(backendType, size, format)
	if err != nil {
		panic(err)
	}
	return dt
}

// CreateDrawTarget is like NewDrawTarget but returns the error.
func CreateDrawTarget(backendType BackendType, size IntSize, format SurfaceFormat) (*DrawTarget, error) {
	lib, err := CurrentLibrary()
	if err != nil {
		return nil, err
	}
	ws := size.wire()
	h := lib.CreateDrawTarget(backendType, &ws, format.wire())
	if h == 0 {
		return nil, allocationFailed("CreateDrawTarget")
	}
	Logger().Debug("azure: draw target created", "library", lib.Name(), "backend", backendType, "width", size.Width, "height", size.Height, "format", format)
	return &DrawTarget{lib: lib, handle: h}, nil
}

// NewDrawTargetWithData creates a draw target over data[offset:], laid
// out as size.Height rows of stride bytes. The target and its clones keep
// data referenced, and drawing writes into it.
//
// A buffer shorter than stride*size.Height is a caller bug and panics
// with an error wrapping ErrContractViolation. A null handle panics with
// ErrAllocationFailed.
func NewDrawTargetWithData(backendType BackendType, data []byte, offset int, size IntSize, stride int32, format SurfaceFormat) *DrawTarget {
	dt, err := CreateDrawTargetWithData(backendType, data, offset, size, stride, format)
	if err != nil {
		panic(err)
	}
	return dt
}

// CreateDrawTargetWithData is like NewDrawTargetWithData but returns both
// kinds of failure as errors.
func CreateDrawTargetWithData(backendType BackendType, data []byte, offset int, size IntSize, stride int32, format SurfaceFormat) (*DrawTarget, error) {
	if offset < 0 || offset > len(data) {
		return nil, contractViolation("offset %d outside buffer of %d bytes", offset, len(data))
	}
	if stride < 0 || size.Height < 0 {
		return nil, contractViolation("negative stride %d or height %d", stride, size.Height)
	}
	if need := int(stride) * int(size.Height); len(data)-offset < need {
		return nil, contractViolation("buffer has %d bytes after offset %d, stride*height needs %d", len(data)-offset, offset, need)
	}
	lib, err := CurrentLibrary()
	if err != nil {
		return nil, err
	}
	store := &pixelStore{data: data[offset:]}
	ws := size.wire()
	h := lib.CreateDrawTargetForData(backendType, store.data, &ws, stride, format.wire())
	if h == 0 {
		return nil, allocationFailed("CreateDrawTargetForData")
	}
	Logger().Debug("azure: draw target created over caller memory", "library", lib.Name(), "backend", backendType, "width", size.Width, "height", size.Height, "stride", stride)
	return &DrawTarget{lib: lib, handle: h, store: store}, nil
}

// NewDrawTargetWithFBO creates a Skia draw target rendering into a frame
// buffer object of a new shared GL context. backendType must be
// SkiaBackend; anything else panics with ErrContractViolation.
func NewDrawTargetWithFBO(backendType BackendType, ctx *NativePaintingGraphicsContext, size IntSize, format SurfaceFormat) *DrawTarget {
	dt, err := CreateDrawTargetWithFBO(backendType, ctx, size, format)
	if err != nil {
		panic(err)
	}
	return dt
}

// CreateDrawTargetWithFBO is like NewDrawTargetWithFBO but returns the
// error.
func CreateDrawTargetWithFBO(backendType BackendType, ctx *NativePaintingGraphicsContext, size IntSize, format SurfaceFormat) (*DrawTarget, error) {
	if backendType != SkiaBackend {
		return nil, contractViolation("FBO draw targets need the Skia backend, got %v", backendType)
	}
	if ctx == nil {
		return nil, contractViolation("nil graphics context")
	}
	lib, err := CurrentLibrary()
	if err != nil {
		return nil, err
	}
	ws := size.wire()
	gl := lib.CreateSkiaSharedGLContext(ctx, &ws)
	if gl == 0 {
		return nil, allocationFailed("CreateSkiaSharedGLContext")
	}
	h := lib.CreateSkiaDrawTargetForFBO(gl, &ws, format.wire())
	if h == 0 {
		lib.ReleaseSkiaSharedGLContext(gl)
		return nil, allocationFailed("CreateSkiaDrawTargetForFBO")
	}
	Logger().Debug("azure: FBO draw target created", "library", lib.Name(), "width", size.Width, "height", size.Height)
	return &DrawTarget{lib: lib, handle: h, gl: gl}, nil
}

func (dt *DrawTarget) ref() backend.DrawTargetRef {
	if dt.handle == 0 {
		panic(released("DrawTarget"))
	}
	return dt.handle
}

// Clone returns a second owner of the same surface. The library reference
// counts of the draw target and of its GL context each grow by one, and
// the clone shares the pixel buffer. Release the clone separately.
func (dt *DrawTarget) Clone() *DrawTarget {
	h := dt.ref()
	dt.lib.RetainDrawTarget(h)
	if dt.gl != 0 {
		dt.lib.RetainSkiaSharedGLContext(dt.gl)
	}
	return &DrawTarget{lib: dt.lib, handle: h, store: dt.store, gl: dt.gl}
}

// Release drops this owner's references on the draw target and its GL
// context. Further calls do nothing.
func (dt *DrawTarget) Release() {
	if dt.handle == 0 {
		Logger().Debug("azure: DrawTarget released twice")
		return
	}
	dt.lib.ReleaseDrawTarget(dt.handle)
	if dt.gl != 0 {
		dt.lib.ReleaseSkiaSharedGLContext(dt.gl)
	}
	dt.handle, dt.gl, dt.store = 0, 0, nil
}

// HasGLContext reports whether the target renders into a shared GL
// context.
func (dt *DrawTarget) HasGLContext() bool {
	return dt.gl != 0
}

// MakeCurrent makes the shared GL context current. It does nothing for
// targets without one. GL contexts are bound to OS threads, so callers
// pin the goroutine with runtime.LockOSThread before drawing.
func (dt *DrawTarget) MakeCurrent() {
	dt.ref()
	if dt.gl != 0 {
		dt.lib.SkiaSharedGLContextMakeCurrent(dt.gl)
	}
}

// StealGLResources consumes the target. When it renders into a shared GL
// context, the context's surface is detached and returned with ok true;
// the caller then owns it. The draw target and context references are
// released either way.
func (dt *DrawTarget) StealGLResources() (res StolenGLResources, ok bool) {
	dt.ref()
	if dt.gl != 0 {
		if s := dt.lib.SkiaSharedGLContextStealSurface(dt.gl); s != 0 {
			res, ok = StolenGLResources{lib: dt.lib, surface: s}, true
		}
	}
	dt.Release()
	return res, ok
}

// Data returns the caller buffer the target was created over, starting at
// its first pixel, or nil.
func (dt *DrawTarget) Data() []byte {
	if dt.store == nil {
		return nil
	}
	return dt.store.data
}

// Library returns the library that owns the target's handles.
func (dt *DrawTarget) Library() backend.Library {
	return dt.lib
}
