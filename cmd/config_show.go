package cmd

import (
	"errors"
	"fmt"
	"sort"

	apperrors "github.com/printvault/printvault/internal/errors"
	"github.com/printvault/printvault/internal/secrets"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the configuration document",
	Long:  `Prints every field of the configuration document. Encrypted values are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cs, _, err := openStores()
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		doc, err := cs.Load()
		if err != nil {
			if errors.Is(err, apperrors.ErrStorage) {
				fmt.Println(notInitializedMessage())
				return nil
			}
			return Logger.ErrorfAndReturn("failed to load configuration: %v", err)
		}

		keys := make([]string, 0, len(doc))
		for key := range doc {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if value, ok := doc[key].(string); ok && secrets.LooksEncrypted(value) {
				fmt.Printf("%s = <encrypted>\n", key)
				continue
			}
			fmt.Printf("%s = %v\n", key, doc[key])
		}
		return nil
	},
}
