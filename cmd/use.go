package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/roricalc/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [theme-name]",
	Short: "Switch to a theme and start the calculator",
	Long:  `Switch to the specified theme and immediately start the calculator.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if err := cfg.Switch(args[0]); err != nil {
			log.Fatalf("Failed to switch theme: %v", err)
		}

		// Save config with new active theme
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runApp()
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
