package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/roricalc/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "roricalc",
	Short: "A terminal calculator",
	Long: `RoriCalc is a four-function terminal calculator with reciprocal, square,
square root, percent and pi keys. Run it without arguments to open the keypad.`,
	Run: func(cmd *cobra.Command, args []string) {
		runApp()
	},
}

func runApp() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(themeCmd)
}
