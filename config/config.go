package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MShaffar19/riegeli/internal/core/domain"
)

type Config struct {
	Chunk         ChunkConfig `yaml:"chunk"`
	StoragePath   string      `yaml:"storage_path"`   // Path to chunk files
	Compression   string      `yaml:"compression"`    // Compression options in the option grammar, e.g. "zstd:5,window_log:23"
	EnableMetrics bool        `yaml:"enable_metrics"` // Enable metrics collection
}

// Holds chunk-writer-specific configuration
type ChunkConfig struct {
	ChunkSize uint64 `yaml:"chunk_size"` // Target uncompressed size before a chunk is cut
	Transpose bool   `yaml:"transpose"`  // Write transposed chunks instead of simple chunks
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Compression:   "brotli",
		EnableMetrics: true,
		StoragePath:   "/records",
		Chunk: ChunkConfig{
			Transpose: false,
			ChunkSize: 1024 * 1024, // 1MB
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// CompressorOptions parses the compression option string into a
// validated configuration value.
func (c *Config) CompressorOptions() (domain.CompressorOptions, error) {
	return domain.ParseCompressorOptions(c.Compression)
}

func validateConfig(config *Config) error {
	if config.StoragePath == "" {
		return fmt.Errorf("storage_path is required")
	}

	if _, err := domain.ParseCompressorOptions(config.Compression); err != nil {
		return fmt.Errorf("invalid compression options: %w", err)
	}

	if err := validateChunkConfig(&config.Chunk); err != nil {
		return fmt.Errorf("invalid chunk configuration: %w", err)
	}

	return nil
}

func validateChunkConfig(config *ChunkConfig) error {
	if config.ChunkSize == 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	return nil
}
