package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ircore",
	Short: "Inspect and query a serialized JavaScript IR module",
	Long:  `ircore dumps an IR module snapshot, or builds a module from a TOML segment manifest and queries its CommonJS segment graph.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		switch mode {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		case "auto":
		default:
			return fmt.Errorf("invalid --color value: %q (expected: auto|on|off)", mode)
		}
		return nil
	},
}

func main() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(segmentCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
