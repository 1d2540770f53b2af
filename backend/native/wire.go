package native

import (
	"runtime"
	"sync"

	"github.com/gogpu/azure/backend"
)

// EnvLibraryPath names the environment variable that overrides the
// library file the registered factory opens.
const EnvLibraryPath = "AZURE_LIBRARY_PATH"

// DefaultLibraryName is the file the registered factory opens when
// EnvLibraryPath is unset. The dynamic loader resolves it on its search
// path.
var DefaultLibraryName = map[string]string{
	"darwin": "libazure.dylib",
	"linux":  "libazure.so",
}[runtime.GOOS]

// unpackIntSize decodes an AzIntSize returned by value. Both supported
// ABIs return an 8-byte struct of two int32 in one integer register,
// Width in the low half.
func unpackIntSize(v uint64) backend.IntSize {
	return backend.IntSize{
		Width:  int32(uint32(v)),
		Height: int32(uint32(v >> 32)),
	}
}

// pinned tracks caller buffers handed to the library for the lifetime of
// a draw target. The library keeps the raw pointer, so the memory stays
// pinned until the last reference to the target is released.
type pinned struct {
	mu   sync.Mutex
	bufs map[backend.DrawTargetRef]*pinnedBuf
}

type pinnedBuf struct {
	pinner runtime.Pinner
	refs   int
}

func (p *pinned) pin(dt backend.DrawTargetRef, data []byte) {
	if len(data) == 0 {
		return
	}
	b := &pinnedBuf{refs: 1}
	b.pinner.Pin(&data[0])
	p.mu.Lock()
	if p.bufs == nil {
		p.bufs = make(map[backend.DrawTargetRef]*pinnedBuf)
	}
	p.bufs[dt] = b
	p.mu.Unlock()
}

func (p *pinned) retain(dt backend.DrawTargetRef) {
	p.mu.Lock()
	if b, ok := p.bufs[dt]; ok {
		b.refs++
	}
	p.mu.Unlock()
}

// release drops one reference and reports whether the buffer was
// unpinned.
func (p *pinned) release(dt backend.DrawTargetRef) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.bufs[dt]
	if !ok {
		return false
	}
	b.refs--
	if b.refs > 0 {
		return false
	}
	b.pinner.Unpin()
	delete(p.bufs, dt)
	return true
}

func (p *pinned) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.bufs)
}

// pens tracks the current point of each path builder. Libraries without
// a quadratic entry point get the curve as an equivalent cubic, which
// needs the start point.
type pens struct {
	mu  sync.Mutex
	pos map[backend.PathBuilderRef]pen
}

type pen struct {
	cur, start backend.Point
}

func (p *pens) moveTo(pb backend.PathBuilderRef, pt backend.Point) {
	p.mu.Lock()
	if p.pos == nil {
		p.pos = make(map[backend.PathBuilderRef]pen)
	}
	p.pos[pb] = pen{cur: pt, start: pt}
	p.mu.Unlock()
}

func (p *pens) lineTo(pb backend.PathBuilderRef, pt backend.Point) {
	p.mu.Lock()
	if p.pos == nil {
		p.pos = make(map[backend.PathBuilderRef]pen)
	}
	s, ok := p.pos[pb]
	if !ok {
		s.start = pt
	}
	s.cur = pt
	p.pos[pb] = s
	p.mu.Unlock()
}

func (p *pens) close(pb backend.PathBuilderRef) {
	p.mu.Lock()
	if s, ok := p.pos[pb]; ok {
		s.cur = s.start
		p.pos[pb] = s
	}
	p.mu.Unlock()
}

func (p *pens) current(pb backend.PathBuilderRef) (backend.Point, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.pos[pb]
	return s.cur, ok
}

func (p *pens) start(pb backend.PathBuilderRef) (backend.Point, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.pos[pb]
	return s.start, ok
}

func (p *pens) forget(pb backend.PathBuilderRef) {
	p.mu.Lock()
	delete(p.pos, pb)
	p.mu.Unlock()
}

// elevateQuad returns the control points of the cubic equal to the
// quadratic p0 ctrl end.
func elevateQuad(p0, ctrl, end backend.Point) (c1, c2 backend.Point) {
	c1 = backend.Point{X: p0.X + 2.0/3*(ctrl.X-p0.X), Y: p0.Y + 2.0/3*(ctrl.Y-p0.Y)}
	c2 = backend.Point{X: end.X + 2.0/3*(ctrl.X-end.X), Y: end.Y + 2.0/3*(ctrl.Y-end.Y)}
	return c1, c2
}
