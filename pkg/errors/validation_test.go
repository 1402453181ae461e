package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestValidationErrorRoundTrip(t *testing.T) {
	cause := stderrors.New("value 99 out of range [0, 11]")
	err := NewValidationError("compression", "brotli:99", cause)

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap chain lost the cause")
	}

	wrapped := fmt.Errorf("invalid configuration: %w", err)
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError failed through a wrapping layer")
	}

	extracted := AsValidationError(wrapped)
	if extracted == nil || extracted.Field != "compression" || extracted.Value != "brotli:99" {
		t.Errorf("AsValidationError = %+v", extracted)
	}
}

func TestIsValidationErrorOnPlainError(t *testing.T) {
	if IsValidationError(stderrors.New("plain")) {
		t.Error("plain error classified as ValidationError")
	}
	if AsValidationError(nil) != nil {
		t.Error("AsValidationError(nil) != nil")
	}
}

func TestCodecErrorCategories(t *testing.T) {
	names := map[ErrorCategory]string{
		ErrorConfig:       "config",
		ErrorCompress:     "compress",
		ErrorDecompress:   "decompress",
		ErrorCategory(99): "unknown",
	}
	for category, want := range names {
		if got := category.String(); got != want {
			t.Errorf("ErrorCategory(%d).String() = %q, want %q", category, got, want)
		}
	}

	err := NewCodecError("zstd decompress", ErrorDecompress, stderrors.New("magic number mismatch"))
	if err.IsRetryAble() {
		t.Error("deterministic codec error reported as retryable")
	}
	if !IsCodecError(fmt.Errorf("chunk 7: %w", err)) {
		t.Error("IsCodecError failed through a wrapping layer")
	}
}
