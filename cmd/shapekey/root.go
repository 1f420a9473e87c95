package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shapekey",
	Short: "Validate and inspect shapez.io shape keys",
	Long: `shapekey translates the compact shape-key encoding used by shapez.io
into a structured form:
- Validates keys and reports which layer, quad, and character is wrong.
- Prints accepted keys in canonical form or as a readable per-layer report.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
