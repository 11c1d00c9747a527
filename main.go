package main

import (
	"fmt"
	"os"

	"github.com/printvault/printvault/cmd"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "printvault",
	Short: "Printvault - a secrets-aware configuration store for printer plugins.",
	Long: `Printvault persists plugin settings as a JSON document on disk and
encrypts individual sensitive fields with a key derived once and cached
alongside the document.

Usage:
  printvault <command> [flags]

Available Commands:
  init       Generate key material and the default configuration document
  config     Read and update configuration fields
  secret     Encrypt and decrypt sensitive fields

Run 'printvault help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to Printvault! Run 'printvault --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.InitCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
	rootCmd.AddCommand(cmd.SecretCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
