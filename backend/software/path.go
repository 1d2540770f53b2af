package software

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/azure/backend"
)

// pathBuilder accumulates segments in target coordinates.
type pathBuilder struct {
	path *gg.Path
}

// CreatePathBuilder implements backend.Library.
func (l *Library) CreatePathBuilder(dt backend.DrawTargetRef) backend.PathBuilderRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targets.get(uintptr(dt))
	h := l.newHandle()
	l.builders.add(h, &pathBuilder{path: gg.NewPath()})
	return backend.PathBuilderRef(h)
}

func (l *Library) builder(pb backend.PathBuilderRef) *pathBuilder {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.builders.get(uintptr(pb))
}

// PathBuilderMoveTo implements backend.Library.
func (l *Library) PathBuilderMoveTo(pb backend.PathBuilderRef, p *backend.Point) {
	l.builder(pb).path.MoveTo(float64(p.X), float64(p.Y))
}

// PathBuilderLineTo implements backend.Library. A segment with no current
// point starts a new figure at p.
func (l *Library) PathBuilderLineTo(pb backend.PathBuilderRef, p *backend.Point) {
	b := l.builder(pb)
	if !b.path.HasCurrentPoint() {
		b.path.MoveTo(float64(p.X), float64(p.Y))
		return
	}
	b.path.LineTo(float64(p.X), float64(p.Y))
}

// PathBuilderQuadraticBezierTo implements backend.Library.
func (l *Library) PathBuilderQuadraticBezierTo(pb backend.PathBuilderRef, ctrl, end *backend.Point) {
	b := l.builder(pb)
	if !b.path.HasCurrentPoint() {
		b.path.MoveTo(float64(ctrl.X), float64(ctrl.Y))
	}
	b.path.QuadraticTo(float64(ctrl.X), float64(ctrl.Y), float64(end.X), float64(end.Y))
}

// PathBuilderBezierTo implements backend.Library.
func (l *Library) PathBuilderBezierTo(pb backend.PathBuilderRef, ctrl1, ctrl2, end *backend.Point) {
	b := l.builder(pb)
	if !b.path.HasCurrentPoint() {
		b.path.MoveTo(float64(ctrl1.X), float64(ctrl1.Y))
	}
	b.path.CubicTo(
		float64(ctrl1.X), float64(ctrl1.Y),
		float64(ctrl2.X), float64(ctrl2.Y),
		float64(end.X), float64(end.Y),
	)
}

// PathBuilderClose implements backend.Library.
func (l *Library) PathBuilderClose(pb backend.PathBuilderRef) {
	b := l.builder(pb)
	if b.path.HasCurrentPoint() {
		b.path.Close()
	}
}

// PathBuilderFinish implements backend.Library. The path is a snapshot;
// the builder stays usable.
func (l *Library) PathBuilderFinish(pb backend.PathBuilderRef) backend.PathRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.builders.get(uintptr(pb))
	h := l.newHandle()
	l.paths.add(h, b.path.Clone())
	return backend.PathRef(h)
}

// ReleasePathBuilder implements backend.Library.
func (l *Library) ReleasePathBuilder(pb backend.PathBuilderRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.builders.release(uintptr(pb))
}

// ReleasePath implements backend.Library.
func (l *Library) ReleasePath(path backend.PathRef) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths.release(uintptr(path))
}

func (l *Library) path(p backend.PathRef) *gg.Path {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paths.get(uintptr(p))
}
