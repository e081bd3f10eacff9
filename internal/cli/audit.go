package cli

import (
	"errors"
	"fmt"

	"github.com/olehluchkiv/gosolid/internal/audit"
	"github.com/olehluchkiv/gosolid/internal/console"
	"github.com/olehluchkiv/gosolid/internal/resolver"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errFindings = errors.New("audit found anti-patterns")

func newAuditCmd(a *app) *cobra.Command {
	var (
		format  string
		filter  string
		disable []string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Check Go packages for capability anti-patterns",
		Long: `Audit loads the Go module at path (default: current directory) and reports
fat interfaces, methods that only exist to fail as unsupported, type switches on
empty-interface parameters, and consumers holding concrete collaborators.`,
		Example: `  gosolid audit --filter internal/examples
  gosolid audit ./myservice --disable concrete-dependency --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			opts := audit.Options{Filter: a.cfg.Audit.Filter}
			if cmd.Flags().Changed("filter") {
				opts.Filter = filter
			}
			for _, name := range append(append([]string{}, a.cfg.Audit.DisabledRules...), disable...) {
				r, err := audit.ParseRule(name)
				if err != nil {
					return err
				}
				opts.Disabled = append(opts.Disabled, r)
			}

			mod, err := resolver.Resolve(path, a.logger)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}
			report, err := audit.Run(cmd.Context(), mod, opts, a.logger)
			if err != nil {
				return fmt.Errorf("auditing %s: %w", mod.Path, err)
			}

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				if err := enc.Encode(report); err != nil {
					return err
				}
				if err := enc.Close(); err != nil {
					return err
				}
			case "text":
				writeAuditText(a.printer(cmd), report)
			default:
				return fmt.Errorf("unknown format: %s (valid: text, yaml)", format)
			}

			if strict && !report.Clean() {
				return errFindings
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&format, "format", "text", "output format (text, yaml)")
	f.StringVar(&filter, "filter", "", "only audit packages under this path prefix")
	f.StringSliceVar(&disable, "disable", nil, "rules to skip (repeatable)")
	f.BoolVar(&strict, "strict", false, "exit non-zero when anything is found")
	return cmd
}

func writeAuditText(p *console.Printer, report *audit.Report) {
	findings, dirty := 0, 0
	for _, pkg := range report.Packages {
		if len(pkg.Findings) == 0 {
			continue
		}
		dirty++
		p.Heading(pkg.Path)
		for _, f := range pkg.Findings {
			findings++
			p.Error(fmt.Sprintf("  %s  %s  %s", f.Rule, f.Object, f.Position))
			p.Muted("    " + f.Message)
		}
	}
	if findings == 0 {
		p.Success(fmt.Sprintf("No findings in %d packages.", len(report.Packages)))
		return
	}
	p.Line(fmt.Sprintf("%d findings in %d of %d packages.", findings, dirty, len(report.Packages)))
}
