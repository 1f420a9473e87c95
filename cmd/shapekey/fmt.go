package main

import (
	"fmt"

	"github.com/shapez-tools/shapekey/shape"
	"github.com/spf13/cobra"
)

var fmtFlags = struct {
	source *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "fmt [key...]",
		Short: "Print shape keys in canonical form",
		Example: `  shapekey fmt RuCrSgWw:Rr------
  shapekey fmt -s keys.txt`,
		RunE: runFmt,
	}
	fmtFlags.source = cmd.Flags().StringP("source", "s", "", "source file path containing one shape key per line (default stdin)")
	rootCmd.AddCommand(cmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	entries, sourceName, err := readKeys(args, *fmtFlags.source)
	if err != nil {
		return err
	}

	invalid := 0
	for _, e := range entries {
		s, err := shape.Parse(e.key)
		if err != nil {
			invalid++
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", decorate(err, sourceName, e.key, e.row))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", s.Key())
	}
	if invalid > 0 {
		return fmt.Errorf("%v of %v keys are invalid", invalid, len(entries))
	}
	return nil
}
