package audit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
	"github.com/olehluchkiv/gosolid/internal/resolver"
	"golang.org/x/tools/go/packages"
)

// Rule names a structural check.
type Rule string

const (
	RuleFatInterface       Rule = "fat-interface"
	RuleForcedCapability   Rule = "forced-capability"
	RuleTypeSwitchDispatch Rule = "type-switch-dispatch"
	RuleConcreteDependency Rule = "concrete-dependency"
)

// Rules lists every rule in reporting order.
var Rules = []Rule{RuleFatInterface, RuleForcedCapability, RuleTypeSwitchDispatch, RuleConcreteDependency}

// ParseRule validates a rule name.
func ParseRule(s string) (Rule, error) {
	for _, r := range Rules {
		if string(r) == s {
			return r, nil
		}
	}
	names := make([]string, len(Rules))
	for i, r := range Rules {
		names[i] = string(r)
	}
	return "", fmt.Errorf("unknown rule: %s (valid: %s)", s, strings.Join(names, ", "))
}

// DefaultUnsupportedMarkers are the objects whose use inside a method marks
// it as a forced capability.
var DefaultUnsupportedMarkers = []string{
	"github.com/olehluchkiv/gosolid/internal/capability.ErrUnsupportedOperation",
	"github.com/olehluchkiv/gosolid/internal/capability.Unsupported",
	"errors.ErrUnsupported",
}

// Options controls an audit run.
type Options struct {
	Patterns []string // package patterns; default "./..."
	Filter   string   // package path prefix, absolute or relative to the module path
	Disabled []Rule

	// UnsupportedMarkers are fully qualified objects ("pkg/path.Name");
	// nil means DefaultUnsupportedMarkers.
	UnsupportedMarkers []string
}

func (o Options) enabled(r Rule) bool {
	return !slices.Contains(o.Disabled, r)
}

func (o Options) markers() map[string]bool {
	src := o.UnsupportedMarkers
	if src == nil {
		src = DefaultUnsupportedMarkers
	}
	m := make(map[string]bool, len(src))
	for _, s := range src {
		m[s] = true
	}
	return m
}

// Finding is one rule violation.
type Finding struct {
	Rule     Rule   `yaml:"rule"`
	Package  string `yaml:"package"`
	Object   string `yaml:"object"`
	Message  string `yaml:"message"`
	Position string `yaml:"position,omitempty"`
}

// PackageReport groups the findings of one package.
type PackageReport struct {
	Path     string    `yaml:"path"`
	Findings []Finding `yaml:"findings"`
}

// Report is the outcome of an audit run.
type Report struct {
	ModulePath string          `yaml:"module"`
	Packages   []PackageReport `yaml:"packages"`
}

// Clean reports whether no package has findings.
func (r *Report) Clean() bool {
	for _, p := range r.Packages {
		if len(p.Findings) > 0 {
			return false
		}
	}
	return true
}

// Findings returns all findings in report order.
func (r *Report) Findings() []Finding {
	var out []Finding
	for _, p := range r.Packages {
		out = append(out, p.Findings...)
	}
	return out
}

// ForPackage returns the findings for pkgPath, which may be relative to the
// module path.
func (r *Report) ForPackage(pkgPath string) []Finding {
	pkgPath = qualify(r.ModulePath, pkgPath)
	for _, p := range r.Packages {
		if p.Path == pkgPath {
			return p.Findings
		}
	}
	return nil
}

// Run loads the packages of mod and audits them.
func Run(ctx context.Context, mod resolver.Module, opts Options, logger *slog.Logger) (*Report, error) {
	pkgs, err := analyzer.Load(ctx, mod.Root, loadPatterns(mod, opts), logger)
	if err != nil {
		return nil, err
	}
	report := Check(pkgs, mod, opts)
	logger.Info("audit complete", "packages", len(report.Packages), "findings", len(report.Findings()))
	return report, nil
}

// loadPatterns narrows loading to the filtered directory when the filter
// names one inside the module, so unrelated packages are never type-checked.
func loadPatterns(mod resolver.Module, opts Options) []string {
	if len(opts.Patterns) > 0 || opts.Filter == "" || mod.Root == "" {
		return opts.Patterns
	}
	rel := strings.TrimPrefix(qualify(mod.Path, opts.Filter), mod.Path)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return nil
	}
	if info, err := os.Stat(filepath.Join(mod.Root, filepath.FromSlash(rel))); err != nil || !info.IsDir() {
		return nil
	}
	return []string{"./" + rel + "/..."}
}

// Check applies the enabled rules to already loaded packages.
func Check(pkgs []*packages.Package, mod resolver.Module, opts Options) *Report {
	report := &Report{ModulePath: mod.Path}
	filter := ""
	if opts.Filter != "" {
		filter = qualify(mod.Path, opts.Filter)
	}

	c := &checker{
		modulePath: mod.Path,
		root:       mod.Root,
		markers:    opts.markers(),
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.TypesInfo == nil {
			continue
		}
		if filter != "" && !strings.HasPrefix(pkg.PkgPath, filter) {
			continue
		}

		var findings []Finding
		if opts.enabled(RuleFatInterface) {
			findings = append(findings, c.fatInterfaces(pkg)...)
		}
		if opts.enabled(RuleForcedCapability) {
			findings = append(findings, c.forcedCapabilities(pkg)...)
		}
		if opts.enabled(RuleTypeSwitchDispatch) {
			findings = append(findings, c.typeSwitchDispatch(pkg)...)
		}
		if opts.enabled(RuleConcreteDependency) {
			findings = append(findings, c.concreteDependencies(pkg)...)
		}
		sortFindings(findings)
		report.Packages = append(report.Packages, PackageReport{Path: pkg.PkgPath, Findings: findings})
	}

	sort.Slice(report.Packages, func(i, j int) bool {
		return report.Packages[i].Path < report.Packages[j].Path
	})
	return report
}

func sortFindings(fs []Finding) {
	order := make(map[Rule]int, len(Rules))
	for i, r := range Rules {
		order[r] = i
	}
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].Object != fs[j].Object {
			return fs[i].Object < fs[j].Object
		}
		return order[fs[i].Rule] < order[fs[j].Rule]
	})
}

func qualify(modulePath, pkgPath string) string {
	if modulePath == "" || pkgPath == modulePath || strings.HasPrefix(pkgPath, modulePath+"/") {
		return pkgPath
	}
	return modulePath + "/" + strings.TrimPrefix(pkgPath, "./")
}
