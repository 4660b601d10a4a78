package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var errEmptySecret = errors.New("empty secret")

// resolveSecret picks the secret source: positional argument, config-file
// lookup, or standard input, in that order.
func resolveSecret(cmd *cobra.Command, args []string, service, cfgFile string) (string, error) {
	if len(args) > 0 {
		secret := strings.TrimSpace(args[0])
		if secret == "" {
			return "", errEmptySecret
		}
		return secret, nil
	}
	if service != "" {
		return lookupSecret(service, cfgFile)
	}
	return readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// lookupSecret reads the secret for a named service from the config file,
// a flat service-to-secret map.
func lookupSecret(service, cfgFile string) (string, error) {
	v := viper.New()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot locate home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".totp.yaml")
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}

	secret := strings.TrimSpace(v.GetString(service))
	if secret == "" {
		return "", fmt.Errorf("service %q not found in %s", service, cfgFile)
	}
	return secret, nil
}

// readSecret reads one trimmed line from in. When in is a terminal the
// secret is prompted for and read without echo so it stays out of scrollback.
func readSecret(in io.Reader, errOut io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(errOut, "Secret: ")
		line, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(errOut)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		secret := strings.TrimSpace(string(line))
		if secret == "" {
			return "", errEmptySecret
		}
		return secret, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	secret := strings.TrimSpace(line)
	if secret == "" {
		return "", errEmptySecret
	}
	return secret, nil
}
