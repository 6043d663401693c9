// Package datasource abstracts where input bytes come from so the ledger
// pipeline can be fed from disk in production and from buffers in tests.
package datasource

import (
	"context"
	"io"
)

// Source opens a stream of input bytes. Callers own the returned reader and
// must Close it when done.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
