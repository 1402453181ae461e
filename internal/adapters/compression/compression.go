package compression

import (
	"fmt"

	"github.com/MShaffar19/riegeli/internal/core/domain"
	"github.com/MShaffar19/riegeli/internal/core/ports"
	"github.com/MShaffar19/riegeli/pkg/errors"
)

// DefaultOptions returns the recommended compression configuration:
// Brotli at its default level with the window size chosen by the
// backend. This matches what parsing an empty option string yields.
func DefaultOptions() domain.CompressorOptions {
	return domain.NewCompressorOptions()
}

// New builds the compression backend selected by opts. The returned
// backend holds resources and must be closed when no longer needed.
//
// Returns an error if the configuration names an algorithm without a
// backend, or if the backend rejects its derived parameters.
func New(opts domain.CompressorOptions) (ports.CompressionPort, error) {
	switch opts.CompressionType() {
	case domain.CompressionNone:
		return NewUncompressed(), nil
	case domain.CompressionBrotli:
		return NewBrotliCompression(opts), nil
	case domain.CompressionZstd:
		return NewZstdCompression(opts)
	case domain.CompressionSnappy:
		return NewSnappyCompression(), nil
	default:
		return nil, errors.NewCodecError(
			"new", errors.ErrorConfig,
			fmt.Errorf("unsupported compression type %d", uint8(opts.CompressionType())),
		)
	}
}
