package azure

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/azure/backend"
)

// BackendType selects the rendering engine behind a draw target.
type BackendType = backend.BackendType

// Backend types.
const (
	NoBackend                      = backend.BackendNone
	Direct2DBackend                = backend.BackendDirect2D
	CoreGraphicsBackend            = backend.BackendCoreGraphics
	CoreGraphicsAcceleratedBackend = backend.BackendCoreGraphicsAccelerated
	CairoBackend                   = backend.BackendCairo
	SkiaBackend                    = backend.BackendSkia
	RecordingBackend               = backend.BackendRecording
)

// SurfaceFormat is the pixel layout of a surface. The set is closed:
// libraries only ever report these four formats.
type SurfaceFormat uint8

const (
	FormatB8G8R8A8 SurfaceFormat = iota
	FormatB8G8R8X8
	FormatR5G6B5
	FormatA8
)

// NewSurfaceFormat maps a library format code. An unknown code means the
// library and this package disagree on the ABI, so it panics with an
// error wrapping ErrUnknownSurfaceFormat.
func NewSurfaceFormat(code int32) SurfaceFormat {
	f, err := ParseSurfaceFormat(code)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseSurfaceFormat is like NewSurfaceFormat but returns the error.
func ParseSurfaceFormat(code int32) (SurfaceFormat, error) {
	switch backend.SurfaceFormat(code) {
	case backend.FormatB8G8R8A8:
		return FormatB8G8R8A8, nil
	case backend.FormatB8G8R8X8:
		return FormatB8G8R8X8, nil
	case backend.FormatR5G6B5:
		return FormatR5G6B5, nil
	case backend.FormatA8:
		return FormatA8, nil
	default:
		return 0, fmt.Errorf("azure: format code %d: %w", code, ErrUnknownSurfaceFormat)
	}
}

// String returns the format name.
func (f SurfaceFormat) String() string {
	return f.wire().String()
}

// BytesPerPixel returns the storage size of one pixel.
func (f SurfaceFormat) BytesPerPixel() int {
	return f.wire().BytesPerPixel()
}

// TextureFormat returns the WebGPU texture format with the same memory
// layout, or TextureFormatUndefined when there is none.
func (f SurfaceFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatB8G8R8A8, FormatB8G8R8X8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatA8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

func (f SurfaceFormat) wire() backend.SurfaceFormat {
	return backend.SurfaceFormat(f)
}

func surfaceFormatFromWire(f backend.SurfaceFormat) SurfaceFormat {
	return NewSurfaceFormat(int32(f))
}
