package otp

import (
	"crypto/hmac"
	"encoding/binary"
)

const maxDigits = 9

// GenerateHOTP computes the RFC 4226 code for a key and counter value.
//
// The counter is serialized as 8 big-endian bytes and authenticated with
// HMAC over the chosen hash. Dynamic truncation selects a 4-byte window at
// the offset given by the low 4 bits of the final digest byte, masks the
// sign bit, and reduces modulo 10^digits. The key is used as-is; HMAC
// accepts keys of any length, including empty.
func GenerateHOTP(key []byte, counter uint64, digits uint32, alg Algorithm) (uint32, error) {
	if digits < 1 || digits > maxDigits {
		return 0, ErrInvalidDigits
	}
	h, err := alg.hashFunc()
	if err != nil {
		return 0, err
	}

	msg := make([]byte, 8)
	binary.BigEndian.PutUint64(msg, counter)
	mac := hmac.New(h, key)
	mac.Write(msg)
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0F
	truncated := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF
	return truncated % pow10(digits), nil
}

// pow10 returns 10^n for n <= maxDigits; 10^9 fits in a uint32.
func pow10(n uint32) uint32 {
	p := uint32(1)
	for i := uint32(0); i < n; i++ {
		p *= 10
	}
	return p
}
