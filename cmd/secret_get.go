package cmd

import (
	"errors"
	"fmt"

	"github.com/printvault/printvault/internal/audit"
	apperrors "github.com/printvault/printvault/internal/errors"
	"github.com/printvault/printvault/internal/ui"

	"github.com/spf13/cobra"
)

var secretGetCmd = &cobra.Command{
	Use:   "get <field>",
	Short: "Decrypts a configuration field and prints the plaintext",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]

		ks, cs, dataDir, err := openStores()
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		doc, err := cs.Load()
		if err != nil {
			if errors.Is(err, apperrors.ErrStorage) {
				fmt.Println(notInitializedMessage())
				return err
			}
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		value, ok := doc[field]
		if !ok {
			return Logger.ErrorfAndReturn("%v: %s", apperrors.ErrKeyNotFound, field)
		}
		blob, ok := value.(string)
		if !ok {
			return Logger.ErrorfAndReturn("%v: %s", apperrors.ErrNotEncrypted, field)
		}

		cipher, err := openCipher(ks)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		plaintext, err := cipher.Decrypt(blob)
		if err != nil {
			if errors.Is(err, apperrors.ErrAuthentication) {
				fmt.Println(ui.Error.Sprint("✗") + " Could not decrypt " + ui.Highlight.Sprint(field) +
					": the value was tampered with or encrypted under a different key")
				return err
			}
			return Logger.ErrorfAndReturn("failed to decrypt %s: %v", field, err)
		}

		entry := audit.NewEntry("secret_get")
		entry.Field = field
		audit.Log(dataDir, entry)

		fmt.Println(plaintext)
		return nil
	},
}
