// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio-site",
	Short: "studio-site is the Life-Promo studio website and admin panel",
	Long: `studio-site serves the Life-Promo web studio marketing site together
with a password-gated content-admin panel and a shared visitor chat.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
