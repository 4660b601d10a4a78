// Package otp implements TOTP (RFC 6238) and HOTP (RFC 4226) code
// generation from a shared secret.
//
// TOTP (Time-based One-Time Password) derives a short numeric code from a
// secret key and the current time step, compatible with authenticator apps
// like Google Authenticator, Authy, etc. HOTP is the underlying
// counter-based derivation; TOTP maps elapsed time steps onto the counter.
//
// # Generating Codes
//
// Generate the current 6-digit code for a base32 secret:
//
//	code, err := otp.GenerateCodeNow("JBSWY3DPEHPK3PXP", otp.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(code) // e.g. "492039"
//
// All parameters can be overridden, including the evaluation time, which
// makes the computation a pure function for testing:
//
//	code, err := otp.GenerateCode("JBSWY3DPEHPK3PXP", 1111111109, otp.Options{
//	    Digits:    8,
//	    Interval:  30,
//	    Algorithm: otp.AlgorithmSHA1,
//	})
//
// Secrets are case-insensitive unpadded base32; "jbswy3dpehpk3pxp" and
// "JBSWY3DPEHPK3PXP" decode to the same key.
//
// # Validating Codes
//
// ValidateTOTP compares a submitted code against a window of time steps to
// tolerate clock drift between the prover and verifier:
//
//	ok, err := otp.ValidateTOTP(secret, userCode, uint64(time.Now().Unix()), 1, otp.Options{})
//
// # Secret Generation and Provisioning
//
// Generate a fresh random secret and the otpauth:// URI used to enroll it:
//
//	secret, err := otp.GenerateSecret(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	uri := otp.ProvisioningURI(secret, "MyApp", "user@example.com", otp.Options{})
//	// Display uri as a QR code for the user to scan.
//
// # Hash Algorithms
//
// SHA1 (the default), SHA256, and SHA512 are supported. Note that not all
// authenticator apps support SHA256 and SHA512.
//
// # Concurrency
//
// Every function in this package is a pure function of its inputs and safe
// for concurrent use from any number of goroutines.
package otp
