package software

import "fmt"

// slot holds one live object and its reference count.
type slot[T any] struct {
	v    T
	refs int
}

// table maps handles to objects of one kind. It is not synchronized;
// Library.mu guards every table.
type table[T any] struct {
	kind  string
	live  map[uintptr]*slot[T]
	freed int
}

func newTable[T any](kind string) table[T] {
	return table[T]{kind: kind, live: make(map[uintptr]*slot[T])}
}

func (t *table[T]) add(h uintptr, v T) {
	t.live[h] = &slot[T]{v: v, refs: 1}
}

func (t *table[T]) get(h uintptr) T {
	s, ok := t.live[h]
	if !ok {
		panic(fmt.Errorf("software: invalid %s handle %#x", t.kind, h))
	}
	return s.v
}

func (t *table[T]) retain(h uintptr) int {
	s, ok := t.live[h]
	if !ok {
		panic(fmt.Errorf("software: retain of invalid %s handle %#x", t.kind, h))
	}
	s.refs++
	return s.refs
}

// release drops one reference and reports whether the object was freed.
func (t *table[T]) release(h uintptr) (T, bool) {
	s, ok := t.live[h]
	if !ok {
		panic(fmt.Errorf("software: release of invalid %s handle %#x", t.kind, h))
	}
	s.refs--
	if s.refs > 0 {
		var zero T
		return zero, false
	}
	delete(t.live, h)
	t.freed++
	return s.v, true
}

// take removes h regardless of its reference count.
func (t *table[T]) take(h uintptr) (T, bool) {
	s, ok := t.live[h]
	if !ok {
		var zero T
		return zero, false
	}
	delete(t.live, h)
	t.freed++
	return s.v, true
}
