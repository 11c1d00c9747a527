package cmd

import (
	logger "github.com/printvault/printvault/internal/logging"

	"github.com/spf13/cobra"
)

var SecretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Encrypt and decrypt sensitive configuration fields",
	Long: `Provides authenticated encryption of individual configuration values.
Encrypted fields are stored in the configuration document as opaque
base64 blobs and decrypted on demand.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing secret command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	SecretCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory for key material and the configuration document")
	SecretCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SecretCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SecretCmd.AddCommand(secretSetCmd)
	SecretCmd.AddCommand(secretGetCmd)
}

// GetSecretCmd returns the SecretCmd for testing.
func GetSecretCmd() *cobra.Command {
	return SecretCmd
}
