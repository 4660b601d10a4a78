package otp

import (
	"crypto/subtle"
	"fmt"
	"time"
)

const (
	// DefaultDigits is the standard authenticator-app code length.
	DefaultDigits = 6
	// DefaultInterval is the RFC 6238 recommended time step in seconds.
	DefaultInterval = 30
)

// Options holds TOTP generation parameters. The zero value selects the
// defaults used by common authenticator apps: 6 digits, epoch 0, a 30
// second interval, and SHA1.
type Options struct {
	// Digits specifies the number of decimal digits in the code (1-9).
	Digits uint32
	// Epoch is the Unix time subtracted before counting time steps.
	Epoch uint64
	// Interval specifies the time step in seconds. Must be positive.
	Interval uint64
	// Algorithm specifies the hash algorithm to use.
	Algorithm Algorithm
}

// withDefaults fills in zero-valued fields.
func (o Options) withDefaults() Options {
	if o.Digits == 0 {
		o.Digits = DefaultDigits
	}
	if o.Interval == 0 {
		o.Interval = DefaultInterval
	}
	if o.Algorithm == "" {
		o.Algorithm = AlgorithmSHA1
	}
	return o
}

// validate checks the filled-in options. Options that went through
// withDefaults always carry a positive interval; the check here asserts the
// invariant for options validated without defaulting.
func (o Options) validate() error {
	if o.Interval == 0 {
		return ErrInvalidInterval
	}
	if o.Digits < 1 || o.Digits > maxDigits {
		return ErrInvalidDigits
	}
	if _, err := o.Algorithm.hashFunc(); err != nil {
		return err
	}
	return nil
}

// counter maps a timestamp onto a time-step index.
func (o Options) counter(at uint64) uint64 {
	return (at - o.Epoch) / o.Interval
}

// GenerateTOTP computes the RFC 6238 code for a base32 secret at the given
// Unix timestamp. The counter is floor((at-epoch)/interval); the code is in
// [0, 10^digits). Fails with ErrInvalidBase32, ErrInvalidInterval,
// ErrInvalidDigits, ErrInvalidAlgorithm, or ErrClock (timestamp before the
// epoch). The decoded key is zeroed before returning.
func GenerateTOTP(secret string, at uint64, opts Options) (uint32, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if at < opts.Epoch {
		return 0, fmt.Errorf("%w: timestamp %d precedes epoch %d", ErrClock, at, opts.Epoch)
	}

	key, err := DecodeSecret(secret)
	if err != nil {
		return 0, err
	}
	defer ZeroSecret(key)

	return GenerateHOTP(key, opts.counter(at), opts.Digits, opts.Algorithm)
}

// GenerateTOTPNow computes the code for the current wall-clock time.
func GenerateTOTPNow(secret string, opts Options) (uint32, error) {
	now := time.Now().Unix()
	if now < 0 {
		return 0, fmt.Errorf("%w: system clock reads before the Unix epoch", ErrClock)
	}
	return GenerateTOTP(secret, uint64(now), opts)
}

// Format renders a code as a decimal string left-padded with zeros to
// exactly digits characters.
func Format(code uint32, digits uint32) string {
	return fmt.Sprintf("%0*d", int(digits), code)
}

// GenerateCode computes the code for an explicit timestamp and formats it.
func GenerateCode(secret string, at uint64, opts Options) (string, error) {
	opts = opts.withDefaults()
	code, err := GenerateTOTP(secret, at, opts)
	if err != nil {
		return "", err
	}
	return Format(code, opts.Digits), nil
}

// GenerateCodeNow computes the code for the current time and formats it.
func GenerateCodeNow(secret string, opts Options) (string, error) {
	opts = opts.withDefaults()
	code, err := GenerateTOTPNow(secret, opts)
	if err != nil {
		return "", err
	}
	return Format(code, opts.Digits), nil
}

// ValidateTOTP reports whether code matches the secret at the given time,
// checking skew intervals before and after the current one to tolerate
// clock drift. Comparison is constant-time per candidate.
func ValidateTOTP(secret, code string, at uint64, skew uint32, opts Options) (bool, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return false, err
	}
	if at < opts.Epoch {
		return false, fmt.Errorf("%w: timestamp %d precedes epoch %d", ErrClock, at, opts.Epoch)
	}

	key, err := DecodeSecret(secret)
	if err != nil {
		return false, err
	}
	defer ZeroSecret(key)

	center := opts.counter(at)
	counters := make([]uint64, 0, 2*skew+1)
	counters = append(counters, center)
	for i := uint64(1); i <= uint64(skew); i++ {
		if center >= i {
			counters = append(counters, center-i)
		}
		counters = append(counters, center+i)
	}

	valid := false
	for _, c := range counters {
		candidate, err := GenerateHOTP(key, c, opts.Digits, opts.Algorithm)
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeCompare([]byte(code), []byte(Format(candidate, opts.Digits))) == 1 {
			valid = true
		}
	}
	return valid, nil
}
