package domain

import "fmt"

// CompressionType identifies the algorithm used to compress chunk data.
// Like ChunkType, the numeric values are frozen in the file format and
// must never be renumbered.
type CompressionType uint8

const (
	// CompressionNone stores chunk data uncompressed.
	CompressionNone CompressionType = 0

	// CompressionBrotli compresses chunk data with Brotli.
	// This is the default algorithm.
	CompressionBrotli CompressionType = 'b'

	// CompressionZstd compresses chunk data with Zstandard.
	CompressionZstd CompressionType = 'z'

	// CompressionSnappy compresses chunk data with Snappy.
	CompressionSnappy CompressionType = 's'
)

// String returns the name of the compression type for logging and
// error messages. The names match the option grammar keywords.
func (t CompressionType) String() string {
	switch t {
	case CompressionNone:
		return "uncompressed"
	case CompressionBrotli:
		return "brotli"
	case CompressionZstd:
		return "zstd"
	case CompressionSnappy:
		return "snappy"
	default:
		return "unknown"
	}
}

// Compression level and window log bounds. Levels tune the trade-off
// between compression density and speed (higher = denser but slower);
// the window log tunes the trade-off between density and memory usage.
const (
	// MinBrotliLevel and MaxBrotliLevel bound the Brotli quality setting.
	MinBrotliLevel = 0
	MaxBrotliLevel = 11

	// DefaultBrotliLevel is used when no explicit Brotli level is given.
	DefaultBrotliLevel = 6

	// MinZstdLevel and MaxZstdLevel bound the Zstd compression level.
	// Negative levels trade density for speed. Level 0 behaves
	// identically to DefaultZstdLevel.
	MinZstdLevel = -131072
	MaxZstdLevel = 22

	// DefaultZstdLevel is used when no explicit Zstd level is given.
	DefaultZstdLevel = 3

	// MinWindowLog and MaxWindowLog bound the LZ77 window size exponent.
	// This is the union of the Brotli and Zstd ranges; each backend
	// narrows it further when the value is consumed.
	MinWindowLog = 10
	MaxWindowLog = 31

	// DefaultBrotliWindowLog is the window log Brotli uses when none
	// is configured. Zstd has no fixed default: the backend derives the
	// window from the level and the expected chunk size.
	DefaultBrotliWindowLog = 22
)

// CompressorOptions holds one validated compression selection: the
// algorithm, its level, and an optional window size exponent.
//
// It is a plain value: copyable, comparable and safe for concurrent
// reads once construction is finished. Mutation happens only through
// the fluent setters, which validate their arguments and panic on
// out-of-range literals: a setter argument comes from calling code,
// not from user input, so a violation is a programming defect.
// Configuration text supplied by users goes through FromText instead,
// which reports violations as recoverable errors.
//
// The zero value is not the default configuration (the zero
// CompressionType is CompressionNone); use NewCompressorOptions.
type CompressorOptions struct {
	compressionType CompressionType
	level           int
	windowLog       int
	windowLogSet    bool
}

// NewCompressorOptions returns the default configuration:
// Brotli at DefaultBrotliLevel with no explicit window log.
func NewCompressorOptions() CompressorOptions {
	return CompressorOptions{
		compressionType: CompressionBrotli,
		level:           DefaultBrotliLevel,
	}
}

// SetUncompressed turns compression off. The window log is left as is;
// it is ignored by the uncompressed backend.
func (o *CompressorOptions) SetUncompressed() *CompressorOptions {
	o.compressionType = CompressionNone
	o.level = 0
	return o
}

// SetBrotli selects Brotli at the given level.
//
// The level must be between MinBrotliLevel and MaxBrotliLevel;
// anything else panics.
func (o *CompressorOptions) SetBrotli(level int) *CompressorOptions {
	if level < MinBrotliLevel || level > MaxBrotliLevel {
		panic(fmt.Sprintf(
			"domain: SetBrotli: level %d out of range [%d, %d]",
			level, MinBrotliLevel, MaxBrotliLevel,
		))
	}
	o.compressionType = CompressionBrotli
	o.level = level
	return o
}

// SetZstd selects Zstd at the given level.
//
// The level must be between MinZstdLevel and MaxZstdLevel; anything
// else panics. Level 0 behaves identically to DefaultZstdLevel.
func (o *CompressorOptions) SetZstd(level int) *CompressorOptions {
	if level < MinZstdLevel || level > MaxZstdLevel {
		panic(fmt.Sprintf(
			"domain: SetZstd: level %d out of range [%d, %d]",
			level, MinZstdLevel, MaxZstdLevel,
		))
	}
	o.compressionType = CompressionZstd
	o.level = level
	return o
}

// SetSnappy selects Snappy. Snappy has no tunable level.
func (o *CompressorOptions) SetSnappy() *CompressorOptions {
	o.compressionType = CompressionSnappy
	o.level = 0
	return o
}

// SetWindowLog sets the LZ77 window size exponent.
//
// The value must be between MinWindowLog and MaxWindowLog; anything
// else panics. The value is stored regardless of the selected
// algorithm, but only the Brotli and Zstd backends consume it: see
// BrotliWindowLog and ZstdWindowLog.
func (o *CompressorOptions) SetWindowLog(windowLog int) *CompressorOptions {
	if windowLog < MinWindowLog || windowLog > MaxWindowLog {
		panic(fmt.Sprintf(
			"domain: SetWindowLog: window log %d out of range [%d, %d]",
			windowLog, MinWindowLog, MaxWindowLog,
		))
	}
	o.windowLog = windowLog
	o.windowLogSet = true
	return o
}

// ClearWindowLog removes an explicit window log, letting the backend
// choose. This is the default, and what the grammar's "auto" means.
func (o *CompressorOptions) ClearWindowLog() *CompressorOptions {
	o.windowLog = 0
	o.windowLogSet = false
	return o
}

// CompressionType returns the selected algorithm.
func (o CompressorOptions) CompressionType() CompressionType {
	return o.compressionType
}

// CompressionLevel returns the selected level. It is 0 for
// CompressionNone and CompressionSnappy.
func (o CompressorOptions) CompressionLevel() int {
	return o.level
}

// WindowLog returns the configured window log and whether one was set.
func (o CompressorOptions) WindowLog() (int, bool) {
	return o.windowLog, o.windowLogSet
}

// BrotliWindowLog returns the window log the Brotli backend should use:
// the configured value, or DefaultBrotliWindowLog when none is set.
//
// Panics unless the selected algorithm is CompressionBrotli.
func (o CompressorOptions) BrotliWindowLog() int {
	if o.compressionType != CompressionBrotli {
		panic(fmt.Sprintf(
			"domain: BrotliWindowLog called with compression type %s", o.compressionType,
		))
	}
	if !o.windowLogSet {
		return DefaultBrotliWindowLog
	}
	return o.windowLog
}

// ZstdWindowLog returns the window log the Zstd backend should use.
// When no explicit value is set it returns ok == false, meaning the
// backend derives the window from the level and the expected chunk size.
//
// Panics unless the selected algorithm is CompressionZstd.
func (o CompressorOptions) ZstdWindowLog() (windowLog int, ok bool) {
	if o.compressionType != CompressionZstd {
		panic(fmt.Sprintf(
			"domain: ZstdWindowLog called with compression type %s", o.compressionType,
		))
	}
	return o.windowLog, o.windowLogSet
}
