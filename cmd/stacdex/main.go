package main

import (
	"os"

	"github.com/spf13/cobra"
)

// envFile is the configuration file shared by all subcommands.
var envFile string

// rootCmd is the base command; serve, seed and template hang off it.
var rootCmd = &cobra.Command{
	Use:   "stacdex",
	Short: "StacDex card collection import server",
	Long: `stacdex runs the bulk-import backend for the StacDex card tracker:
an HTTP server that validates and imports spreadsheet uploads into
PostgreSQL, plus tooling to bootstrap the database and generate the
import template.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the environment file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(templateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
