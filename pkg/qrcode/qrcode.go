package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the default image edge length in pixels, sized for
// comfortable scanning from a phone camera.
const DefaultSize = 256

// Common errors returned by the qrcode package.
var (
	// ErrEmptyContent indicates there is nothing to encode.
	ErrEmptyContent = errors.New("qrcode: content must not be empty")
	// ErrInvalidSize indicates a non-positive image size.
	ErrInvalidSize = errors.New("qrcode: size must be positive")
)

// Generate encodes content as a PNG QR code of size x size pixels with
// medium error correction. A size of zero selects DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: failed to encode: %w", err)
	}
	return png, nil
}
