// Package compression provides the compression backends behind
// ports.CompressionPort, one per algorithm of the chunk format.
// Each backend obtains its parameters from a validated
// domain.CompressorOptions and is safe for concurrent use.
package compression

import (
	"fmt"
	"sync"

	"github.com/MShaffar19/riegeli/internal/core/domain"
	"github.com/MShaffar19/riegeli/pkg/errors"
	"github.com/klauspost/compress/zstd"
)

// The zstd encoder caps its window at 1<<29 bytes, below the
// type-level maximum window log of the configuration value.
const maxZstdEncoderWindowLog = 29

// ZstdCompression implements ports.CompressionPort using Zstandard.
// It provides thread-safe compression and decompression with the level
// and window size taken from a CompressorOptions value.
type ZstdCompression struct {
	level   int
	mu      sync.RWMutex  // Protects encoder/decoder against Close.
	decoder *zstd.Decoder // Thread-safe decoder instance.
	encoder *zstd.Encoder // Thread-safe encoder instance.
}

// NewZstdCompression creates a zstd backend from a configuration whose
// algorithm is CompressionZstd (anything else is a programming error
// and panics, matching the window log translation contract).
//
// Level 0 behaves identically to the default level. When no explicit
// window log is configured, the encoder derives the window from the
// level and expected input size.
//
// Returns an error if the encoder or decoder initialization fails.
func NewZstdCompression(opts domain.CompressorOptions) (*ZstdCompression, error) {
	level := opts.CompressionLevel()
	if level == 0 {
		level = domain.DefaultZstdLevel
	}

	encoderOptions := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
	}
	if windowLog, ok := opts.ZstdWindowLog(); ok {
		if windowLog > maxZstdEncoderWindowLog {
			windowLog = maxZstdEncoderWindowLog
		}
		encoderOptions = append(encoderOptions, zstd.WithWindowSize(1<<uint(windowLog)))
	}

	encoder, err := zstd.NewWriter(nil, encoderOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.CompressionLevel()}, nil
}

// Compress compresses the input data with zstd.
// The operation is thread-safe and can be called concurrently.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.encoder.EncodeAll(data, nil), nil
}

// Decompress restores the original data from its compressed form.
// The operation is thread-safe and can be called concurrently.
//
// Returns an error if the input is not valid zstd compressed data.
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.NewCodecError("zstd decompress", errors.ErrorDecompress, err)
	}

	return decompressed, nil
}

// Type returns the frozen byte tag for Zstandard.
func (z *ZstdCompression) Type() domain.CompressionType {
	return domain.CompressionZstd
}

// Level returns the configured compression level, including a literal
// 0 when that was configured.
func (z *ZstdCompression) Level() int {
	return z.level
}

// Close releases the encoder and decoder. After closing, the instance
// cannot be used for compression or decompression.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if err := z.encoder.Close(); err != nil {
		return fmt.Errorf("error closing encoder: %w", err)
	}

	z.decoder.Close()
	return nil
}
