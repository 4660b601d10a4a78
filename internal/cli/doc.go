// Package cli implements the totp command line interface: flag parsing,
// secret input (argument, config lookup, stdin, or no-echo terminal
// prompt), and output formatting. All code derivation lives in pkg/otp.
package cli
