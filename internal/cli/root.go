package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kotarac/totp/pkg/otp"
)

// NewRootCmd builds the totp command tree.
func NewRootCmd() *cobra.Command {
	var (
		digits   uint32
		epoch    uint64
		interval uint64
		at       uint64
		algName  string
		service  string
		cfgFile  string
	)

	cmd := &cobra.Command{
		Use:   "totp [secret]",
		Short: "Generate a time-based one-time password",
		Long: `Generate a TOTP code (RFC 6238) from a base32 secret.

The secret is taken from the first argument, looked up by service name in a
config file (--service), or read as one line from standard input. When
standard input is a terminal the secret is prompted for without echo.`,
		Example: `  totp JBSWY3DPEHPK3PXP
  echo JBSWY3DPEHPK3PXP | totp
  totp --service github
  totp --digits 8 --interval 60 JBSWY3DPEHPK3PXP`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := otp.ParseAlgorithm(algName)
			if err != nil {
				return err
			}
			// The engine treats a zero interval as "use the default", so an
			// explicit zero can only be caught at the flag boundary.
			if interval == 0 {
				return otp.ErrInvalidInterval
			}

			secret, err := resolveSecret(cmd, args, service, cfgFile)
			if err != nil {
				return err
			}

			opts := otp.Options{
				Digits:    digits,
				Epoch:     epoch,
				Interval:  interval,
				Algorithm: alg,
			}

			var code string
			if cmd.Flags().Changed("time") {
				code, err = otp.GenerateCode(secret, at, opts)
			} else {
				code, err = otp.GenerateCodeNow(secret, opts)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}

	cmd.Flags().Uint32VarP(&digits, "digits", "d", otp.DefaultDigits, "number of code digits")
	cmd.Flags().Uint64Var(&epoch, "epoch", 0, "Unix time the step counter starts from")
	cmd.Flags().Uint64VarP(&interval, "interval", "i", otp.DefaultInterval, "seconds per time step")
	cmd.Flags().Uint64VarP(&at, "time", "t", 0, "evaluate at this Unix time instead of now")
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "SHA1", "hash algorithm (SHA1, SHA256, SHA512)")
	cmd.Flags().StringVarP(&service, "service", "s", "", "look the secret up by service name in the config file")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file with service secrets (default $HOME/.totp.yaml)")

	cmd.AddCommand(newSecretCmd(), newURICmd())
	return cmd
}
