package compression

import (
	"github.com/MShaffar19/riegeli/internal/core/domain"
	"github.com/MShaffar19/riegeli/pkg/errors"
	"github.com/klauspost/compress/snappy"
)

// SnappyCompression implements ports.CompressionPort using Snappy
// block encoding. Snappy has no tunable level or window size, so the
// backend is stateless and trivially safe for concurrent use.
type SnappyCompression struct{}

// NewSnappyCompression creates a Snappy backend.
func NewSnappyCompression() *SnappyCompression {
	return &SnappyCompression{}
}

// Compress compresses the input data with Snappy.
func (s *SnappyCompression) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

// Decompress restores the original data from its compressed form.
//
// Returns an error if the input is not a valid Snappy block.
func (s *SnappyCompression) Decompress(data []byte) ([]byte, error) {
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, errors.NewCodecError("snappy decompress", errors.ErrorDecompress, err)
	}
	return decompressed, nil
}

// Type returns the frozen byte tag for Snappy.
func (s *SnappyCompression) Type() domain.CompressionType {
	return domain.CompressionSnappy
}

// Level returns 0; Snappy has no compression levels.
func (s *SnappyCompression) Level() int {
	return 0
}

// Close is a no-op; the Snappy backend holds no resources.
func (s *SnappyCompression) Close() error {
	return nil
}
