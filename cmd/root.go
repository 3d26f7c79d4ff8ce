package main

import (
	"therapist-directory/config"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "directory",
	Short: "Browse and filter a therapist directory",
	Long: `Loads a therapist dataset once and filters it by search text, city,
gender, experience band, fee band and consultation mode.

Without a subcommand the HTTP server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional env file with configuration")
	rootCmd.AddCommand(serveCmd, searchCmd)
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfigFrom(envFile)
}
