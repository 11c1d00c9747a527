package cmd

import (
	"errors"
	"strconv"

	"github.com/printvault/printvault/internal/audit"
	"github.com/printvault/printvault/internal/configstore"
	apperrors "github.com/printvault/printvault/internal/errors"
	"github.com/printvault/printvault/internal/ui"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Updates a single configuration field",
	Long: `Merges one field into the configuration document. All other fields are
preserved untouched. Fields that are numeric in the default schema
(printer_id, electricity_cost) are stored as numbers.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, raw := args[0], args[1]

		spinner, cleanup := startSpinner("Updating configuration...", verbose)
		defer cleanup()

		value, err := coerceValue(field, raw)
		if err != nil {
			return Logger.ErrorfAndReturn("invalid value for %s: %v", field, err)
		}

		_, cs, dataDir, err := openStores()
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		if err := cs.Update(configstore.Document{field: value}); err != nil {
			if errors.Is(err, apperrors.ErrStorage) {
				spinner.FinalMSG = notInitializedMessage()
				return err
			}
			return Logger.ErrorfAndReturn("failed to update configuration: %v", err)
		}

		entry := audit.NewEntry("config_set")
		entry.Field = field
		audit.Log(dataDir, entry)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Updated " + ui.Highlight.Sprint(field)
		return nil
	},
}

// coerceValue converts raw according to the default schema: fields that
// default to a number are parsed, everything else stays a string.
func coerceValue(field, raw string) (any, error) {
	switch configstore.Default()[field].(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		return n, nil
	case float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return raw, nil
	}
}
