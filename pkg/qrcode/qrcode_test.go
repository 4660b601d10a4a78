package qrcode

import (
	"bytes"
	"errors"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// TestGenerate tests PNG output
func TestGenerate(t *testing.T) {
	png, err := Generate("otpauth://totp/MyApp:user?secret=JBSWY3DPEHPK3PXP", 0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("Generate returned no data")
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("output does not start with PNG magic: % x", png[:4])
	}
}

// TestGenerate_InvalidInput tests input validation
func TestGenerate_InvalidInput(t *testing.T) {
	if _, err := Generate("", 256); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("empty content error = %v, want %v", err, ErrEmptyContent)
	}
	if _, err := Generate("content", -1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("negative size error = %v, want %v", err, ErrInvalidSize)
	}
}
