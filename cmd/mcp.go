package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/roricalc/internal/core"
	"github.com/Rorical/roricalc/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve a calculator session over MCP stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout. All tool calls share
one calculator session. Logs go to stderr.`,
	Run: func(cmd *cobra.Command, args []string) {
		// stdout carries the protocol
		log.SetOutput(os.Stderr)

		if err := server.NewCalcServer(core.NewSession()).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
