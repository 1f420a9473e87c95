package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shapez-tools/shapekey/shape"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	json   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse [key...]",
		Short: "Validate shape keys",
		Example: `  shapekey parse RuCrSgWw:Rr------
  shapekey parse -s keys.txt
  cat keys.txt | shapekey parse`,
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path containing one shape key per line (default stdin)")
	parseFlags.json = cmd.Flags().Bool("json", false, "print parsed shapes as JSON")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	entries, sourceName, err := readKeys(args, *parseFlags.source)
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
		if *parseFlags.json {
			err = writeShapeJSON(cmd.OutOrStdout(), s)
			if err != nil {
				return err
			}
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%v of %v keys are invalid", invalid, len(entries))
	}
	return nil
}

type jsonQuad struct {
	Subshape string `json:"subShape"`
	Color    string `json:"color"`
}

type jsonShape struct {
	Key    string        `json:"key"`
	Layers [][]*jsonQuad `json:"layers"`
}

func writeShapeJSON(w io.Writer, s *shape.Shape) error {
	layers := make([][]*jsonQuad, len(s.Layers))
	for i, l := range s.Layers {
		quads := make([]*jsonQuad, len(l))
		for j, q := range l {
			if q == nil {
				continue
			}
			quads[j] = &jsonQuad{
				Subshape: q.Subshape.String(),
				Color:    q.Color.String(),
			}
		}
		layers[i] = quads
	}

	d, err := json.MarshalIndent(&jsonShape{
		Key:    s.Key(),
		Layers: layers,
	}, "", "    ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", string(d))
	return nil
}
