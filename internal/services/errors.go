package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecode marks a source that could not be read or decoded.
	ErrDecode = errors.New("decode error")
	// ErrEncode marks a failure producing the target image format.
	ErrEncode = errors.New("encode error")
	// ErrSubprocess marks a non-zero exit from the external transcoder.
	ErrSubprocess = errors.New("subprocess error")
	// ErrOutputWrite marks a failure creating or writing the output file.
	ErrOutputWrite = errors.New("output write error")
)

// Wrap builds an error message that includes operation context while
// tagging it with the provided marker for later classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation string, err error) error {
	detail := buildDetail(component, operation)
	if marker == nil {
		marker = ErrSubprocess
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation string) string {
	parts := make([]string, 0, 2)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
