package compression

import (
	"bytes"
	"io"

	"github.com/MShaffar19/riegeli/internal/core/domain"
	"github.com/MShaffar19/riegeli/pkg/errors"
	"github.com/MShaffar19/riegeli/pkg/pool"
	"github.com/andybalholm/brotli"
)

// Brotli's encoder caps its window log at 24 without the large-window
// extension, below the type-level maximum of the configuration value.
const maxBrotliEncoderWindowLog = 24

// Initial capacity for pooled encode buffers.
const brotliBufferSize = 64 * 1024

// BrotliCompression implements ports.CompressionPort using Brotli.
// Writers are created per call (the brotli encoder is not reusable
// across inputs), with output buffers drawn from a shared pool.
type BrotliCompression struct {
	level     int
	windowLog int
	buffers   *pool.BufferPool
}

// NewBrotliCompression creates a Brotli backend from a configuration
// whose algorithm is CompressionBrotli (anything else is a programming
// error and panics, matching the window log translation contract).
//
// When no explicit window log is configured, the backend default (22)
// is used.
func NewBrotliCompression(opts domain.CompressorOptions) *BrotliCompression {
	windowLog := opts.BrotliWindowLog()
	if windowLog > maxBrotliEncoderWindowLog {
		windowLog = maxBrotliEncoderWindowLog
	}

	return &BrotliCompression{
		windowLog: windowLog,
		level:     opts.CompressionLevel(),
		buffers:   pool.NewBufferPool(brotliBufferSize),
	}
}

// Compress compresses the input data with Brotli.
// The operation is thread-safe and can be called concurrently.
func (b *BrotliCompression) Compress(data []byte) ([]byte, error) {
	buf := b.buffers.Get()
	defer b.buffers.Put(buf)

	writer := brotli.NewWriterOptions(buf, brotli.WriterOptions{
		Quality: b.level,
		LGWin:   b.windowLog,
	})
	if _, err := writer.Write(data); err != nil {
		return nil, errors.NewCodecError("brotli compress", errors.ErrorCompress, err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.NewCodecError("brotli compress", errors.ErrorCompress, err)
	}

	compressed := make([]byte, buf.Len())
	copy(compressed, buf.Bytes())
	return compressed, nil
}

// Decompress restores the original data from its compressed form.
// The operation is thread-safe and can be called concurrently.
//
// Returns an error if the input is not a valid Brotli stream.
func (b *BrotliCompression) Decompress(data []byte) ([]byte, error) {
	decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.NewCodecError("brotli decompress", errors.ErrorDecompress, err)
	}
	return decompressed, nil
}

// Type returns the frozen byte tag for Brotli.
func (b *BrotliCompression) Type() domain.CompressionType {
	return domain.CompressionBrotli
}

// Level returns the configured quality level.
func (b *BrotliCompression) Level() int {
	return b.level
}

// Close releases resources. The Brotli backend holds none beyond its
// buffer pool, which the garbage collector reclaims.
func (b *BrotliCompression) Close() error {
	return nil
}
