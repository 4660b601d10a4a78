package otp

import (
	"fmt"
	"net/url"
	"strings"
)

// ProvisioningURI returns the otpauth:// URI for enrolling the secret with
// an authenticator app, typically rendered as a QR code. Issuer and account
// name the key; generation parameters come from opts after defaulting.
func ProvisioningURI(secret, issuer, account string, opts Options) string {
	opts = opts.withDefaults()

	v := url.Values{}
	v.Set("secret", strings.ToUpper(secret))
	v.Set("issuer", issuer)
	v.Set("algorithm", string(opts.Algorithm))
	v.Set("digits", fmt.Sprintf("%d", opts.Digits))
	v.Set("period", fmt.Sprintf("%d", opts.Interval))

	label := url.PathEscape(fmt.Sprintf("%s:%s", issuer, account))
	return fmt.Sprintf("otpauth://totp/%s?%s", label, v.Encode())
}
