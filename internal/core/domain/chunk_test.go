package domain

import "testing"

// The byte values below are written into stored files. If one of these
// tests fails, the change it catches makes previously written files
// unreadable; the constants must never be renumbered.

func TestChunkTypeValuesFrozen(t *testing.T) {
	frozen := []struct {
		name string
		got  ChunkType
		want uint8
	}{
		{"file-signature", ChunkFileSignature, 's'},
		{"padding", ChunkPadding, 'p'},
		{"simple", ChunkSimple, 'r'},
		{"transposed", ChunkTransposed, 't'},
	}

	for _, tag := range frozen {
		t.Run(tag.name, func(t *testing.T) {
			if uint8(tag.got) != tag.want {
				t.Fatalf("ChunkType %s = %d, frozen format requires %d", tag.name, tag.got, tag.want)
			}
		})
	}
}

func TestCompressionTypeValuesFrozen(t *testing.T) {
	frozen := []struct {
		name string
		got  CompressionType
		want uint8
	}{
		{"uncompressed", CompressionNone, 0},
		{"brotli", CompressionBrotli, 'b'},
		{"zstd", CompressionZstd, 'z'},
		{"snappy", CompressionSnappy, 's'},
	}

	for _, tag := range frozen {
		t.Run(tag.name, func(t *testing.T) {
			if uint8(tag.got) != tag.want {
				t.Fatalf("CompressionType %s = %d, frozen format requires %d", tag.name, tag.got, tag.want)
			}
		})
	}
}

func TestTypeNamesMatchGrammarKeywords(t *testing.T) {
	names := map[CompressionType]string{
		CompressionNone:   "uncompressed",
		CompressionBrotli: "brotli",
		CompressionZstd:   "zstd",
		CompressionSnappy: "snappy",
	}

	for tag, want := range names {
		if got := tag.String(); got != want {
			t.Errorf("CompressionType(%d).String() = %q, want %q", tag, got, want)
		}
	}

	if got := CompressionType('x').String(); got != "unknown" {
		t.Errorf("unknown tag String() = %q, want %q", got, "unknown")
	}
}
