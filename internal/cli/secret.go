package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kotarac/totp/pkg/otp"
)

func newSecretCmd() *cobra.Command {
	var size uint

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Generate a new random base32 secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := otp.GenerateSecret(size)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}

	cmd.Flags().UintVar(&size, "size", otp.DefaultSecretSize, "secret length in random bytes")
	return cmd
}
