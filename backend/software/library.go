// Package software implements backend.Library on the gg CPU rasterizer.
//
// Every draw target is a gg.Context over a premultiplied RGBA gg.Pixmap.
// Pixels are converted to the requested surface format when they leave
// the library: on snapshots and, for targets created over caller memory,
// after every drawing call. The Skia shared GL context entry points are
// emulated with an offscreen pixmap standing in for the FBO texture.
//
// The library registers itself under the name "software" on import:
//
//	import _ "github.com/gogpu/azure/backend/software"
package software

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"

	"github.com/gogpu/azure/backend"
)

func init() {
	backend.Register(backend.LibrarySoftware, func() backend.Library {
		return Shared()
	})
}

var (
	sharedOnce sync.Once
	shared     *Library
)

// Shared returns the process-wide library instance used by the registry.
func Shared() *Library {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// Library is the pure-Go implementation of backend.Library.
//
// Handles are only meaningful to the Library that issued them.
type Library struct {
	opts   options
	logger atomic.Pointer[slog.Logger]

	mu         sync.Mutex
	next       uintptr
	targets    table[*drawTarget]
	patterns   table[backend.Color]
	builders   table[*pathBuilder]
	paths      table[*gg.Path]
	surfaces   table[*surface]
	fonts      table[*scaledFont]
	glContexts table[*glContext]
	stolen     table[*surface]
	current    backend.SkiaSharedGLContextRef
}

var (
	_ backend.Library               = (*Library)(nil)
	_ backend.LoggerSetter          = (*Library)(nil)
	_ backend.SharedSurfaceReleaser = (*Library)(nil)
)

// New creates a library with its own handle space.
func New(opts ...Option) *Library {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &Library{
		opts:       o,
		targets:    newTable[*drawTarget]("draw target"),
		patterns:   newTable[backend.Color]("pattern"),
		builders:   newTable[*pathBuilder]("path builder"),
		paths:      newTable[*gg.Path]("path"),
		surfaces:   newTable[*surface]("source surface"),
		fonts:      newTable[*scaledFont]("scaled font"),
		glContexts: newTable[*glContext]("shared GL context"),
		stolen:     newTable[*surface]("shared surface"),
	}
	l.SetLogger(o.logger)
	return l
}

// Name implements backend.Library.
func (l *Library) Name() string { return backend.LibrarySoftware }

// SetLogger implements backend.LoggerSetter. Pass nil to silence logging.
func (l *Library) SetLogger(lg *slog.Logger) {
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}
	l.logger.Store(lg)
}

func (l *Library) log() *slog.Logger {
	return l.logger.Load()
}

// newHandle returns a fresh non-zero handle value. Callers hold l.mu.
func (l *Library) newHandle() uintptr {
	l.next++
	return l.next
}

// Stats is a snapshot of the library's handle tables.
type Stats struct {
	DrawTargets    int
	Patterns       int
	PathBuilders   int
	Paths          int
	Surfaces       int
	ScaledFonts    int
	GLContexts     int
	SharedSurfaces int

	// Freed counts objects destroyed because their last reference went away.
	FreedDrawTargets int
	FreedGLContexts  int
	FreedSurfaces    int
}

// Stats returns the current handle counts.
func (l *Library) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		DrawTargets:      len(l.targets.live),
		Patterns:         len(l.patterns.live),
		PathBuilders:     len(l.builders.live),
		Paths:            len(l.paths.live),
		Surfaces:         len(l.surfaces.live),
		ScaledFonts:      len(l.fonts.live),
		GLContexts:       len(l.glContexts.live),
		SharedSurfaces:   len(l.stolen.live),
		FreedDrawTargets: l.targets.freed,
		FreedGLContexts:  l.glContexts.freed,
		FreedSurfaces:    l.surfaces.freed,
	}
}

// CreateColorPattern implements backend.Library.
func (l *Library) CreateColorPattern(color *backend.Color) backend.PatternRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.newHandle()
	l.patterns.add(h, *color)
	return backend.PatternRef(h)
}

// ReleaseColorPattern implements backend.Library.
func (l *Library) ReleaseColorPattern(pattern backend.PatternRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.patterns.release(uintptr(pattern))
}

func (l *Library) pattern(p backend.PatternRef) backend.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.patterns.get(uintptr(p))
}
