package cmd

import (
	"github.com/printvault/printvault/internal/audit"
	"github.com/printvault/printvault/internal/configs"
	logger "github.com/printvault/printvault/internal/logging"
	"github.com/printvault/printvault/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	InitCmd.Flags().StringVar(&dataDirFlag, "data-dir", "", "directory for key material and the configuration document")
	InitCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	InitCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the key material and configuration document",
	Long: `Generates the encryption key and salt (if missing) and creates the default
configuration document (if missing). Safe to run repeatedly: existing key
material and documents are never regenerated or overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
		spinner, cleanup := startSpinner("Initializing Printvault...", verbose)
		defer cleanup()

		if _, err := configs.EnsureToolConfig(); err != nil {
			return Logger.ErrorfAndReturn("failed to ensure tool settings: %v", err)
		}

		ks, cs, dataDir, err := openStores()
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		hadMaterial := ks.Exists()
		hadDocument := cs.Exists()

		if _, err := ks.Ensure(); err != nil {
			return Logger.ErrorfAndReturn("failed to ensure key material: %v", err)
		}
		if err := cs.Ensure(); err != nil {
			return Logger.ErrorfAndReturn("failed to ensure configuration document: %v", err)
		}

		entry := audit.NewEntry("init")
		entry.Generated = !hadMaterial
		audit.Log(dataDir, entry)

		if hadMaterial && hadDocument {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Printvault already initialized\n" +
				ui.Info.Sprint("→") + " Configuration lives at " + ui.Path.Sprint(cs.Path())
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Printvault initialized successfully!\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("printvault config show") + " to inspect the defaults"
		return nil
	},
}
