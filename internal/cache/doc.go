// Package cache provides a small generic LRU cache.
//
// The software library keeps one per scaled font, holding glyph outlines
// already converted to paths:
//
//	outlines := cache.New[font.GID, *gg.Path](512)
//	p := outlines.GetOrCreate(gid, func() *gg.Path { return build(gid) })
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
