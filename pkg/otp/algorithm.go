package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm represents the hash algorithm used for code generation.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 hash algorithm (RFC default, widely supported).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256 hash algorithm.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512 hash algorithm.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// ParseAlgorithm converts a case-insensitive algorithm name into an
// Algorithm value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(s) {
	case "SHA1":
		return AlgorithmSHA1, nil
	case "SHA256":
		return AlgorithmSHA256, nil
	case "SHA512":
		return AlgorithmSHA512, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
	}
}

// hashFunc returns the constructor for the underlying hash.
func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(a))
	}
}
