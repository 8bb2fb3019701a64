package service

import (
	"context"
	"io"
)

// Uploader stores opaque files (JSON snapshots) in remote object storage and
// returns their public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
