package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// DefaultSecretSize is the number of random bytes in a generated secret.
// 20 bytes (160 bits) matches the RFC 4226 recommended key length.
const DefaultSecretSize = 20

// base32NoPadding is the RFC 4648 alphabet without the padding character;
// human-typed secrets omit padding and authenticator apps never emit it.
var base32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// DecodeSecret converts a base32 secret into raw key bytes.
//
// Decoding is case-insensitive and expects unpadded RFC 4648 input; any
// character outside the A-Z, 2-7 alphabet (including '=') fails with
// ErrInvalidBase32. An empty secret decodes to an empty key.
func DecodeSecret(secret string) ([]byte, error) {
	key, err := base32NoPadding.DecodeString(strings.ToUpper(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase32, err)
	}
	return key, nil
}

// GenerateSecret generates a cryptographically random secret of size random
// bytes, returned as an unpadded base32 string. A size of zero selects
// DefaultSecretSize.
func GenerateSecret(size uint) (string, error) {
	if size == 0 {
		size = DefaultSecretSize
	}
	secret := make([]byte, size)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}
	return base32NoPadding.EncodeToString(secret), nil
}

// ZeroSecret overwrites key material in place. The engine zeroes keys it
// decodes itself; callers holding their own decoded keys should do the same
// once finished with them.
func ZeroSecret(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
