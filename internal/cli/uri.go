package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kotarac/totp/pkg/otp"
	"github.com/kotarac/totp/pkg/qrcode"
)

func newURICmd() *cobra.Command {
	var (
		issuer   string
		account  string
		digits   uint32
		interval uint64
		algName  string
		qrFile   string
		qrSize   int
	)

	cmd := &cobra.Command{
		Use:   "uri [secret]",
		Short: "Print the otpauth:// provisioning URI for a secret",
		Long: `Print the otpauth:// URI that enrolls the secret with an authenticator
app. With --qr the URI is also written as a PNG QR code for scanning.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := otp.ParseAlgorithm(algName)
			if err != nil {
				return err
			}

			secret, err := resolveSecret(cmd, args, "", "")
			if err != nil {
				return err
			}
			// Fail on a malformed secret here rather than at scan time.
			if _, err := otp.DecodeSecret(secret); err != nil {
				return err
			}

			uri := otp.ProvisioningURI(secret, issuer, account, otp.Options{
				Digits:    digits,
				Interval:  interval,
				Algorithm: alg,
			})
			fmt.Fprintln(cmd.OutOrStdout(), uri)

			if qrFile != "" {
				png, err := qrcode.Generate(uri, qrSize)
				if err != nil {
					return err
				}
				if err := os.WriteFile(qrFile, png, 0600); err != nil {
					return fmt.Errorf("writing %s: %w", qrFile, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", "", "issuing organization shown in the app")
	cmd.Flags().StringVar(&account, "account", "", "account name shown in the app")
	cmd.Flags().Uint32VarP(&digits, "digits", "d", otp.DefaultDigits, "number of code digits")
	cmd.Flags().Uint64VarP(&interval, "interval", "i", otp.DefaultInterval, "seconds per time step")
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "SHA1", "hash algorithm (SHA1, SHA256, SHA512)")
	cmd.Flags().StringVar(&qrFile, "qr", "", "also write the URI as a PNG QR code to this file")
	cmd.Flags().IntVar(&qrSize, "qr-size", qrcode.DefaultSize, "QR code edge length in pixels")
	cobra.CheckErr(cmd.MarkFlagRequired("issuer"))
	cobra.CheckErr(cmd.MarkFlagRequired("account"))

	return cmd
}
