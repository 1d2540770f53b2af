package software

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// DefaultMaxSurfaceSize is the largest width or height a draw target may
// have unless WithMaxSurfaceSize says otherwise.
const DefaultMaxSurfaceSize = 16384

// DefaultGlyphCacheSize is the number of glyph outlines each scaled font
// keeps unless WithGlyphCacheSize says otherwise.
const DefaultGlyphCacheSize = 512

// Option configures a Library.
type Option func(*options)

type options struct {
	maxSurfaceSize int
	logger         *slog.Logger
	rasterizer     gg.RasterizerMode
	glyphCacheSize int
}

func defaultOptions() options {
	return options{
		maxSurfaceSize: DefaultMaxSurfaceSize,
		rasterizer:     gg.RasterizerAuto,
		glyphCacheSize: DefaultGlyphCacheSize,
	}
}

// WithMaxSurfaceSize limits the width and height of draw targets and
// surfaces. Larger requests return a null handle, which is how the
// library reports allocation failure.
func WithMaxSurfaceSize(n int) Option {
	return func(o *options) {
		o.maxSurfaceSize = n
	}
}

// WithLogger sets the logger used for handle lifecycle diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRasterizerMode selects the gg rasterizer for every draw target.
func WithRasterizerMode(mode gg.RasterizerMode) Option {
	return func(o *options) {
		o.rasterizer = mode
	}
}

// WithGlyphCacheSize bounds the glyph outlines cached per scaled font.
func WithGlyphCacheSize(n int) Option {
	return func(o *options) {
		o.glyphCacheSize = n
	}
}
