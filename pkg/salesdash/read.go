package salesdash

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

const readChunkSize = 32 << 10

// ReadAll buffers r in memory. It stops when ctx is done and fails with
// ErrFileTooLarge once more than limit bytes arrive (limit <= 0 disables
// the check).
func ReadAll(ctx context.Context, r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := r.Read(chunk)
		buf.Write(chunk[:n])
		if limit > 0 && int64(buf.Len()) > limit {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, limit)
		}

		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
