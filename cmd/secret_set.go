package cmd

import (
	"errors"

	"github.com/printvault/printvault/internal/audit"
	"github.com/printvault/printvault/internal/configstore"
	apperrors "github.com/printvault/printvault/internal/errors"
	"github.com/printvault/printvault/internal/ui"
	"github.com/printvault/printvault/internal/utils"

	"github.com/spf13/cobra"
)

var secretSetCmd = &cobra.Command{
	Use:   "set <field>",
	Short: "Encrypts a value and stores it in the configuration document",
	Long: `Prompts for a value without echoing it, encrypts it under the stored key,
and merges the resulting blob into the configuration document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]

		// Prompt before the spinner so the hidden input isn't fighting it.
		value, err := utils.ReadSecret("Enter value for " + field + ": ")
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read secret: %v", err)
		}

		spinner, cleanup := startSpinner("Encrypting "+field+"...", verbose)
		defer cleanup()

		ks, cs, dataDir, err := openStores()
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		cipher, err := openCipher(ks)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		blob, err := cipher.Encrypt(string(value))
		if err != nil {
			return Logger.ErrorfAndReturn("failed to encrypt value: %v", err)
		}

		if err := cs.Update(configstore.Document{field: blob}); err != nil {
			if errors.Is(err, apperrors.ErrStorage) {
				spinner.FinalMSG = notInitializedMessage()
				return err
			}
			return Logger.ErrorfAndReturn("failed to update configuration: %v", err)
		}

		entry := audit.NewEntry("secret_set")
		entry.Field = field
		audit.Log(dataDir, entry)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Stored encrypted value for " + ui.Highlight.Sprint(field)
		return nil
	},
}
