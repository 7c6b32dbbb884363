package service

import (
	"context"

	"stampcard/internal/domain/strip"
	"stampcard/internal/errors"
)

// ErrStripNotFound is returned by StripStore.Get for an unknown key.
var ErrStripNotFound = errors.New("strip not found")

// StripRasterizer draws a scene into a PNG. Identical scenes must produce
// identical bytes.
type StripRasterizer interface {
	Rasterize(scene *strip.Scene) ([]byte, error)
}

// StripStore hosts rendered strips at durable public URLs.
type StripStore interface {
	// Put stores png and returns its public URL. The key is derived from the
	// content, so storing the same bytes twice yields the same URL. An empty
	// URL means hosting is disabled.
	Put(ctx context.Context, png []byte) (string, error)

	// Get returns a stored strip by the file name at the end of its URL.
	Get(ctx context.Context, name string) ([]byte, error)
}
