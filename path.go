package azure

import (
	"github.com/gogpu/azure/backend"
)

// Path is an immutable outline produced by PathBuilder.Finish.
type Path struct {
	lib    backend.Library
	handle backend.PathRef
}

func (p *Path) ref() backend.PathRef {
	if p.handle == 0 {
		panic(released("Path"))
	}
	return p.handle
}

// Release frees the path. Further calls do nothing.
func (p *Path) Release() {
	if p.handle == 0 {
		Logger().Debug("azure: Path released twice")
		return
	}
	p.lib.ReleasePath(p.handle)
	p.handle = 0
}

// PathBuilder records figure commands in order and turns them into a
// Path once.
//
// After Finish the builder is terminal: further commands are dropped and
// recorded as ErrPathBuilderFinished, which Err reports. The builder
// still has to be released.
type PathBuilder struct {
	lib      backend.Library
	handle   backend.PathBuilderRef
	finished bool
	err      error
}

func (b *PathBuilder) ref() backend.PathBuilderRef {
	if b.handle == 0 {
		panic(released("PathBuilder"))
	}
	return b.handle
}

// open reports whether a command may be forwarded.
func (b *PathBuilder) open() bool {
	b.ref()
	if b.finished {
		if b.err == nil {
			b.err = ErrPathBuilderFinished
		}
		return false
	}
	return true
}

// MoveTo starts a new figure at p.
func (b *PathBuilder) MoveTo(p Point2D) {
	if !b.open() {
		return
	}
	w := p.wire()
	b.lib.PathBuilderMoveTo(b.handle, &w)
}

// LineTo adds a straight segment to p.
func (b *PathBuilder) LineTo(p Point2D) {
	if !b.open() {
		return
	}
	w := p.wire()
	b.lib.PathBuilderLineTo(b.handle, &w)
}

// QuadraticBezierTo adds a quadratic curve through control point ctrl.
func (b *PathBuilder) QuadraticBezierTo(ctrl, end Point2D) {
	if !b.open() {
		return
	}
	c, e := ctrl.wire(), end.wire()
	b.lib.PathBuilderQuadraticBezierTo(b.handle, &c, &e)
}

// BezierTo adds a cubic curve.
func (b *PathBuilder) BezierTo(ctrl1, ctrl2, end Point2D) {
	if !b.open() {
		return
	}
	c1, c2, e := ctrl1.wire(), ctrl2.wire(), end.wire()
	b.lib.PathBuilderBezierTo(b.handle, &c1, &c2, &e)
}

// Close closes the current figure.
func (b *PathBuilder) Close() {
	if !b.open() {
		return
	}
	b.lib.PathBuilderClose(b.handle)
}

// Finish returns the path of every command issued so far and makes the
// builder terminal. A second call returns ErrPathBuilderFinished.
func (b *PathBuilder) Finish() (*Path, error) {
	if !b.open() {
		return nil, ErrPathBuilderFinished
	}
	b.finished = true
	h := b.lib.PathBuilderFinish(b.handle)
	if h == 0 {
		return nil, allocationFailed("PathBuilderFinish")
	}
	return &Path{lib: b.lib, handle: h}, nil
}

// Err returns ErrPathBuilderFinished if a command was issued after
// Finish, and nil otherwise.
func (b *PathBuilder) Err() error {
	return b.err
}

// Release frees the builder, finished or not. Paths it produced stay
// valid. Further calls do nothing.
func (b *PathBuilder) Release() {
	if b.handle == 0 {
		Logger().Debug("azure: PathBuilder released twice")
		return
	}
	b.lib.ReleasePathBuilder(b.handle)
	b.handle = 0
}
