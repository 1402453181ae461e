package main

import (
	"bytes"
	"flag"
	"os"

	"github.com/MShaffar19/riegeli/internal/adapters/compression"
	"github.com/MShaffar19/riegeli/internal/core/domain"
	"github.com/MShaffar19/riegeli/pkg/errors"
	"github.com/MShaffar19/riegeli/pkg/logger"
)

func main() {
	compressionFlag := flag.String(
		"compression", "brotli",
		`compression options, e.g. "zstd:5,window_log:23" or "uncompressed"`,
	)
	flag.Parse()

	logger := logger.New("chunkstore")
	defer logger.Sync()

	logger.Info("starting chunkstore demo")

	opts, err := domain.ParseCompressorOptions(*compressionFlag)
	if err != nil {
		if errors.IsValidationError(err) {
			err := errors.AsValidationError(err)
			logger.Infow("invalid compression options", "field", err.Field, "value", err.Value, "error", err.Err)
		} else {
			logger.Infow("invalid compression options", "error", err)
		}
		os.Exit(1)
	}

	backend, err := compression.New(opts)
	if err != nil {
		logger.Infow("create backend error", "error", err)
		os.Exit(1)
	}

	payload := bytes.Repeat([]byte("this record repeats so every backend has something to squeeze "), 64)

	compressed, err := backend.Compress(payload)
	if err != nil {
		logger.Infow("compress error", "error", err)
	} else {
		logger.Infow("compressed chunk data",
			"type", backend.Type().String(),
			"level", backend.Level(),
			"uncompressed_size", len(payload),
			"compressed_size", len(compressed),
		)
	}

	decompressed, err := backend.Decompress(compressed)
	if err != nil {
		logger.Error("decompress error", err)
	} else {
		logger.Infow("round trip complete", "match", bytes.Equal(payload, decompressed))
	}

	if err := backend.Close(); err != nil {
		logger.Infow("error closing backend", "error", err)
	}
}
