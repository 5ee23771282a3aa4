package xdf

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputRejectsControlDenseInput(t *testing.T) {
	data := []byte(strings.Repeat("\x1ba", 40))
	if err := ValidateInput(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputToleratesStrayControlByte(t *testing.T) {
	data := []byte(strings.Repeat("a", 100) + "\x1b")
	if err := ValidateInput(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateInputAcceptsComments(t *testing.T) {
	if err := ValidateInput([]byte("Gets the <see cref=\"T:X\"/> value.\r\n")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFormatRejectsBinaryInput(t *testing.T) {
	if _, err := Format("bad\x00input"); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}
