package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vaultorgctl",
	Short: "Manage the vaultorg collection access server",
	Long: `vaultorgctl manages the vaultorg collection access server.

The server answers which collections and ciphers an organization member may
see and edit. Use the subcommands to run the server, manage the database
schema, and inspect configuration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
