package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MShaffar19/riegeli/pkg/errors"
)

// FromText replaces the configuration with one parsed from text:
//
//	options      ::= option? ("," option?)*
//	option       ::= "uncompressed"
//	               | "brotli" (":" brotli_level)?
//	               | "zstd" (":" zstd_level)?
//	               | "snappy"
//	               | "window_log" ":" window_log
//	brotli_level ::= integer 0..11 (default 6)
//	zstd_level   ::= integer -131072..22 (default 3)
//	window_log   ::= "auto" or integer 10..31
//
// Options are applied left to right on top of the default configuration,
// so a later option overrides an earlier one touching the same field.
// Empty segments are skipped; keywords are case-sensitive.
//
// Malformed or out-of-range text is reported as a recoverable
// *errors.ValidationError naming the offending option; the receiver is
// left unchanged on failure.
func (o *CompressorOptions) FromText(text string) error {
	parsed := NewCompressorOptions()
	for _, option := range strings.Split(text, ",") {
		if option == "" {
			continue
		}
		if err := parsed.applyOption(option); err != nil {
			return err
		}
	}
	*o = parsed
	return nil
}

// ParseCompressorOptions parses the option grammar accepted by FromText.
func ParseCompressorOptions(text string) (CompressorOptions, error) {
	options := NewCompressorOptions()
	if err := options.FromText(text); err != nil {
		return CompressorOptions{}, err
	}
	return options, nil
}

// applyOption applies a single non-empty option segment.
func (o *CompressorOptions) applyOption(option string) error {
	keyword, value, hasValue := strings.Cut(option, ":")

	switch keyword {
	case "uncompressed":
		if hasValue {
			return optionError(option, fmt.Errorf("option %q does not take a value", keyword))
		}
		o.SetUncompressed()

	case "brotli":
		level := DefaultBrotliLevel
		if hasValue {
			parsed, err := parseInt(option, value, MinBrotliLevel, MaxBrotliLevel)
			if err != nil {
				return err
			}
			level = parsed
		}
		o.SetBrotli(level)

	case "zstd":
		level := DefaultZstdLevel
		if hasValue {
			parsed, err := parseInt(option, value, MinZstdLevel, MaxZstdLevel)
			if err != nil {
				return err
			}
			level = parsed
		}
		o.SetZstd(level)

	case "snappy":
		if hasValue {
			return optionError(option, fmt.Errorf("option %q does not take a value", keyword))
		}
		o.SetSnappy()

	case "window_log":
		if !hasValue {
			return optionError(option, fmt.Errorf("option %q requires a value", keyword))
		}
		if value == "auto" {
			o.ClearWindowLog()
			return nil
		}
		windowLog, err := parseInt(option, value, MinWindowLog, MaxWindowLog)
		if err != nil {
			return err
		}
		o.SetWindowLog(windowLog)

	default:
		return optionError(option, fmt.Errorf("unknown option %q", keyword))
	}

	return nil
}

// parseInt parses the value part of an option and checks its bounds.
func parseInt(option, value string, min, max int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, optionError(option, fmt.Errorf("option %q: expected an integer, got %q", option, value))
	}
	if n < min || n > max {
		return 0, optionError(option, fmt.Errorf("option %q: value %d out of range [%d, %d]", option, n, min, max))
	}
	return n, nil
}

func optionError(option string, err error) error {
	return errors.NewValidationError("compression", option, err)
}
