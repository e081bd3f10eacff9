package cli

import (
	"fmt"
	"os"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
	"github.com/olehluchkiv/gosolid/internal/catalog"
	"github.com/olehluchkiv/gosolid/internal/diagram"
	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/resolver"
	"github.com/spf13/cobra"
)

func newDiagramCmd(a *app) *cobra.Command {
	var (
		variant string
		output  string
		path    string
	)

	cmd := &cobra.Command{
		Use:   "diagram <example>",
		Short: "Render an example's capabilities as a Mermaid class diagram",
		Example: `  gosolid diagram lsp
  gosolid diagram isp --variant incorrect --output isp.mmd`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalog.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			v, err := example.ParseVariant(variant)
			if err != nil {
				return err
			}

			mod, err := resolver.Resolve(path, a.logger)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}

			pkgRel := ex.Packages[v]
			opts := analyzer.AnalyzeOptions{
				Patterns: []string{"./" + pkgRel},
				Filter:   mod.Path + "/" + pkgRel,
			}
			result, err := analyzer.Analyze(cmd.Context(), mod.Root, opts, a.logger)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", pkgRel, err)
			}
			result.ModulePath = mod.Path
			result = analyzer.Filter(result, opts)

			diagOpts := diagram.DefaultDiagramOptions()
			diagOpts.MaxMethodsPerBox = a.cfg.MaxMethods()
			diagOpts.Title = fmt.Sprintf("%s (%s)", ex.Principle.Title(), v)

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), diagram.GenerateMermaid(result, diagOpts))
				return err
			}

			// File output: include %%{init:}%% for standalone .mmd rendering
			diagOpts.IncludeInit = true
			if err := os.WriteFile(output, []byte(diagram.GenerateMermaid(result, diagOpts)), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			a.printer(cmd).Success(fmt.Sprintf("Wrote diagram to %s", output))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&variant, "variant", string(example.Correct), "which version to draw (incorrect, correct)")
	f.StringVarP(&output, "output", "o", "", "write the diagram to a file instead of stdout")
	f.StringVar(&path, "path", ".", "directory inside the gosolid module")
	return cmd
}
