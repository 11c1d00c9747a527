package cmd

import (
	"errors"
	"fmt"

	apperrors "github.com/printvault/printvault/internal/errors"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <field>",
	Short: "Prints a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := args[0]

		_, cs, _, err := openStores()
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

		fmt.Println(value)
		return nil
	},
}
