// Package pixel implements the surface type shared by display backends
// and their callers.
//
// A [Surface] is a plain byte-backed pixel rectangle that is also a
// [draw.Image], so Go's native image and drawing code can paint into
// it. Surfaces either own their backing slice (the drawing surface
// callers render into) or are non-owning views into memory owned
// elsewhere, such as a memory-mapped framebuffer.
package pixel
