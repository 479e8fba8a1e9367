package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rorical/roricalc/internal/core"
)

var showTape bool

var evalCmd = &cobra.Command{
	Use:   "eval <keys...>",
	Short: "Press keys without opening the keypad",
	Long: `Press each key in order and print the final display. Keys are digits,
".", "+", "-", "*", "/", "=", "1/x", "sq", "sqrt", "pi", "%", "neg", "clear"
and "back". Quote "*" so the shell does not expand it:

  roricalc eval 1 2 + 3 '*' 2 =`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := core.NewSession()
		display, err := session.PressAll(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showTape {
			for _, e := range session.Tape() {
				fmt.Fprintf(out, "%-4s %s\n", e.Token, e.Display)
			}
			return nil
		}
		fmt.Fprintln(out, display)
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVar(&showTape, "tape", false, "print the display after every key")
	rootCmd.AddCommand(evalCmd)
}
