package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ircore/internal/irsnapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot.msgpack>",
	Short: "Print a module snapshot produced by irsnapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	snap, err := irsnapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	funcName := color.New(color.FgCyan, color.Bold)
	blockLabel := color.New(color.FgYellow)

	for _, f := range snap.Functions {
		funcName.Printf("function %s", f.InternalName)
		fmt.Printf(" (%d params, strict=%v)\n", f.NumParams, f.IsStrict)
		for _, b := range f.Blocks {
			blockLabel.Printf("  %s:\n", b.Label)
			for _, inst := range b.Instructions {
				fmt.Printf("    %s\n", inst)
			}
		}
	}
	return nil
}
