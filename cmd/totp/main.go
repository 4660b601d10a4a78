// Command totp generates time-based one-time passwords (RFC 6238) from a
// base32 secret supplied as an argument or on standard input.
package main

import (
	"fmt"
	"os"

	"github.com/kotarac/totp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v, try --help\n", err)
		os.Exit(1)
	}
}
