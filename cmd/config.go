package cmd

import (
	logger "github.com/printvault/printvault/internal/logging"

	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration document",
	Long:  `Provides reading, merging, and updating of the JSON configuration document.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing config command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	ConfigCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory for key material and the configuration document")
	ConfigCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	ConfigCmd.AddCommand(showCmd)
	ConfigCmd.AddCommand(getCmd)
	ConfigCmd.AddCommand(setCmd)
}

// Helper functions for testing

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	dataDirFlag = ""
	verbose = false
	debug = false
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
