package ports

import "github.com/MShaffar19/riegeli/internal/core/domain"

// Defines the interface for compression backends.
// This allows us to swap compression algorithms without changing core logic.
type CompressionPort interface {
	// Compress reduces data size.
	// Returns compressed data and any error that occurred.
	Compress(data []byte) ([]byte, error)

	// Decompress restores original data.
	// Returns decompressed data and any error that occurred.
	Decompress(data []byte) ([]byte, error)

	// Close cleans up compression resources.
	Close() error

	// Type returns the algorithm this backend implements. The value is
	// the frozen byte tag written into chunk headers.
	Type() domain.CompressionType

	// Level returns the configured compression level.
	Level() int
}
