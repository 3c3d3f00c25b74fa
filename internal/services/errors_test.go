package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsSentinel(t *testing.T) {
	cause := errors.New("truncated box header")
	err := Wrap(ErrDecode, "image", "decode a.heic", cause)

	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected wrapped error to match ErrDecode, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to survive wrapping, got %v", err)
	}
	if !strings.Contains(err.Error(), "image: decode a.heic") {
		t.Fatalf("expected operation context in message, got %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrOutputWrite, "video", "", nil)
	if !errors.Is(err, ErrOutputWrite) {
		t.Fatalf("expected ErrOutputWrite, got %v", err)
	}
	if !strings.Contains(err.Error(), "video") {
		t.Fatalf("expected component in message, got %q", err.Error())
	}
}

func TestWrapNilMarkerDefaults(t *testing.T) {
	err := Wrap(nil, "", "", nil)
	if !errors.Is(err, ErrSubprocess) {
		t.Fatalf("expected default sentinel, got %v", err)
	}
	if !strings.Contains(err.Error(), "conversion failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}
