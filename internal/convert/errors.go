package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput marks files that are not valid JSON.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnusableInput marks valid JSON that is neither a bulk export nor a
	// single record.
	ErrUnusableInput = errors.New("unusable input")
	// ErrIO marks unreadable inputs and unwritable outputs.
	ErrIO = errors.New("io failure")
)

// Wrap builds an error message that includes file context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, file, operation string, err error) error {
	detail := buildDetail(file, operation)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(file, operation string) string {
	parts := make([]string, 0, 2)
	if file = strings.TrimSpace(file); file != "" {
		parts = append(parts, file)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
