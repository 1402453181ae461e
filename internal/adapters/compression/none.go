package compression

import "github.com/MShaffar19/riegeli/internal/core/domain"

// Uncompressed implements ports.CompressionPort without compressing:
// chunk data is stored verbatim. Used when compression is turned off.
type Uncompressed struct{}

// NewUncompressed creates a passthrough backend.
func NewUncompressed() *Uncompressed {
	return &Uncompressed{}
}

// Compress returns the input unchanged.
func (u *Uncompressed) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input unchanged.
func (u *Uncompressed) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// Type returns the frozen byte tag for uncompressed data.
func (u *Uncompressed) Type() domain.CompressionType {
	return domain.CompressionNone
}

// Level returns 0; there is nothing to tune.
func (u *Uncompressed) Level() int {
	return 0
}

// Close is a no-op.
func (u *Uncompressed) Close() error {
	return nil
}
