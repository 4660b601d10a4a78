package otp

import "errors"

// Common errors returned by the OTP engine.
var (
	// ErrInvalidBase32 indicates the secret is not valid unpadded base32.
	ErrInvalidBase32 = errors.New("otp: invalid base32 secret")
	// ErrInvalidInterval indicates a zero time-step interval.
	ErrInvalidInterval = errors.New("otp: interval must be positive")
	// ErrInvalidDigits indicates an unsupported code length.
	ErrInvalidDigits = errors.New("otp: digits must be between 1 and 9")
	// ErrInvalidAlgorithm indicates an unsupported hash algorithm.
	ErrInvalidAlgorithm = errors.New("otp: algorithm must be SHA1, SHA256, or SHA512")
	// ErrClock indicates the evaluation time precedes the configured epoch.
	ErrClock = errors.New("otp: time is before the epoch")
)
