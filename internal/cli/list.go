package cli

import (
	"fmt"

	"github.com/olehluchkiv/gosolid/internal/catalog"
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listedExample struct {
	Name      string            `yaml:"name"`
	Principle string            `yaml:"principle"`
	Title     string            `yaml:"title"`
	Summary   string            `yaml:"summary"`
	Packages  map[string]string `yaml:"packages"`
}

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			examples := catalog.All()

			switch format {
			case "yaml":
				out := make([]listedExample, 0, len(examples))
				for _, e := range examples {
					out = append(out, listedExample{
						Name:      e.Name,
						Principle: string(e.Principle),
						Title:     e.Principle.Title(),
						Summary:   e.Summary,
						Packages: map[string]string{
							string(example.Incorrect): e.Packages[example.Incorrect],
							string(example.Correct):   e.Packages[example.Correct],
						},
					})
				}
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(out)
			case "text":
				rows := [][]string{{"NAME", "PRINCIPLE", "SUMMARY"}}
				for _, e := range examples {
					rows = append(rows, []string{e.Name, e.Principle.Title(), e.Summary})
				}
				a.printer(cmd).Table(rows)
				return nil
			default:
				return fmt.Errorf("unknown format: %s (valid: text, yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, yaml)")
	return cmd
}
