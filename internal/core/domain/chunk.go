// Package domain defines the core types of the chunk format: the
// frozen byte tags written into chunk headers and the validated
// compression configuration consumed by the backends.
package domain

// ChunkType identifies the kind of a chunk inside a stored file.
// The numeric values are frozen in the file format: they are written
// as single-byte tags into chunk headers and must never be renumbered,
// otherwise previously written files become unreadable.
type ChunkType uint8

const (
	// ChunkFileSignature marks the chunk that opens every file and
	// identifies the format.
	ChunkFileSignature ChunkType = 's'

	// ChunkPadding marks a chunk that carries no records and exists only
	// to align subsequent chunks.
	ChunkPadding ChunkType = 'p'

	// ChunkSimple marks a chunk holding records concatenated in order.
	ChunkSimple ChunkType = 'r'

	// ChunkTransposed marks a chunk holding records in transposed,
	// column-oriented form.
	ChunkTransposed ChunkType = 't'
)

// String returns the name of the chunk type for logging and error messages.
func (t ChunkType) String() string {
	switch t {
	case ChunkFileSignature:
		return "file-signature"
	case ChunkPadding:
		return "padding"
	case ChunkSimple:
		return "simple"
	case ChunkTransposed:
		return "transposed"
	default:
		return "unknown"
	}
}
