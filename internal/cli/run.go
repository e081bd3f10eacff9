package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/olehluchkiv/gosolid/internal/catalog"
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "run [example...]",
		Short: "Run example demonstrations",
		Long: `Run prints the demonstration output of the named examples (all of them
when none is named). By default both the incorrect and the correct version run.`,
		Example: `  gosolid run
  gosolid run lsp isp --variant incorrect`,
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			variants, err := parseVariants(variant)
			if err != nil {
				return err
			}
			examples, err := selectExamples(args)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			// At debug level, demos that can report through the structured
			// logger do so.
			debug := a.logger.Enabled(cmd.Context(), slog.LevelDebug)
			for _, ex := range examples {
				for _, v := range variants {
					p.Heading(ex.Heading(v))
					a.logger.Debug("running demo", "example", ex.Name, "variant", v)
					run := ex.Run
					if debug {
						run = func(v example.Variant, w io.Writer) error {
							return ex.RunWithLogger(v, w, a.logger)
						}
					}
					if err := run(v, p.Writer()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "both", "which version to run (incorrect, correct, both)")
	return cmd
}

func parseVariants(s string) ([]example.Variant, error) {
	if s == "both" || s == "" {
		return example.Variants, nil
	}
	v, err := example.ParseVariant(s)
	if err != nil {
		return nil, fmt.Errorf("%w (or both)", err)
	}
	return []example.Variant{v}, nil
}

func selectExamples(names []string) ([]example.Example, error) {
	if len(names) == 0 {
		return catalog.All(), nil
	}
	out := make([]example.Example, 0, len(names))
	for _, name := range names {
		ex, err := catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}
