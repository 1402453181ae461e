package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MShaffar19/riegeli/internal/core/domain"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
storage_path: /var/lib/records
compression: "zstd:5,window_log:23"
enable_metrics: true
chunk:
  chunk_size: 2097152
  transpose: true
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.StoragePath != "/var/lib/records" {
		t.Errorf("storage path = %q", config.StoragePath)
	}
	if !config.Chunk.Transpose || config.Chunk.ChunkSize != 2*1024*1024 {
		t.Errorf("chunk config = %+v", config.Chunk)
	}

	opts, err := config.CompressorOptions()
	if err != nil {
		t.Fatalf("CompressorOptions failed: %v", err)
	}
	if opts.CompressionType() != domain.CompressionZstd || opts.CompressionLevel() != 5 {
		t.Errorf("parsed options = %s level %d", opts.CompressionType(), opts.CompressionLevel())
	}
	if windowLog, ok := opts.WindowLog(); !ok || windowLog != 23 {
		t.Errorf("parsed window log = %d (set=%v), want 23", windowLog, ok)
	}
}

func TestLoadConfigRejectsBadCompression(t *testing.T) {
	path := writeConfigFile(t, `
storage_path: /var/lib/records
compression: "zstd:99"
chunk:
  chunk_size: 1048576
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted an out-of-range compression level")
	}
}

func TestLoadConfigRejectsMissingStoragePath(t *testing.T) {
	path := writeConfigFile(t, `
compression: "brotli"
chunk:
  chunk_size: 1048576
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted a config without storage_path")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := validateConfig(config); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}

	opts, err := config.CompressorOptions()
	if err != nil {
		t.Fatalf("CompressorOptions failed: %v", err)
	}
	if opts != domain.NewCompressorOptions() {
		t.Error("default config compression differs from the default configuration value")
	}
}
