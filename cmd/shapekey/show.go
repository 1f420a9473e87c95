package main

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/shapez-tools/shapekey/shape"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	noColor *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show <key>",
		Short:   "Print a shape key as a readable per-layer report",
		Example: `  shapekey show RuCrSgWw:Rr------`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	showFlags.noColor = cmd.Flags().Bool("no-color", false, "disable colorized output")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := shape.Parse(args[0])
	if err != nil {
		return decorate(err, "", args[0], 0)
	}
	return writeShapeReport(cmd.OutOrStdout(), s, !*showFlags.noColor)
}

// Layers are printed top-down, so the last layer of the key comes first.
const shapeReportTemplate = `key: {{ .Key }}
{{ range .Layers -}}
layer {{ .Number }}: {{ printQuads .Quads }}
{{ end -}}`

type layerReport struct {
	Number int
	Quads  shape.Layer
}

func writeShapeReport(w io.Writer, s *shape.Shape, colorize bool) error {
	layers := make([]*layerReport, 0, len(s.Layers))
	for i := len(s.Layers) - 1; i >= 0; i-- {
		layers = append(layers, &layerReport{
			Number: i + 1,
			Quads:  s.Layers[i],
		})
	}

	fns := template.FuncMap{
		"printQuads": func(l shape.Layer) string {
			cells := make([]string, 0, len(l))
			for _, q := range l {
				cells = append(cells, printQuad(q, colorize))
			}
			return strings.Join(cells, "  ")
		},
	}
	tmpl, err := template.New("shape").Funcs(fns).Parse(shapeReportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, struct {
		Key    string
		Layers []*layerReport
	}{
		Key:    s.Key(),
		Layers: layers,
	})
}

var colorStyles = map[shape.Color]lipgloss.Style{
	shape.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	shape.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	shape.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	shape.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	shape.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	shape.ColorCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	shape.ColorWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

func printQuad(q *shape.Quad, colorize bool) string {
	if q == nil {
		return "-"
	}
	cell := fmt.Sprintf("%v/%v", q.Subshape, q.Color)
	if !colorize {
		return cell
	}
	style, ok := colorStyles[q.Color]
	if !ok {
		return cell
	}
	return style.Render(cell)
}
