package analyzer

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// LoadMode is what the analyzer and the audit need from go/packages.
const LoadMode = packages.NeedName | packages.NeedFiles | packages.NeedTypes |
	packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedImports

// Load type-checks the packages matching patterns under dir.
func Load(ctx context.Context, dir string, patterns []string, logger *slog.Logger) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	logger.Info("packages loaded", "packages_count", len(pkgs), "patterns", patterns)

	// Log packages with errors but continue
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}
	return pkgs, nil
}

// Analyze loads Go packages from dir and finds all interface-implementation relationships.
func Analyze(ctx context.Context, dir string, opts AnalyzeOptions, logger *slog.Logger) (*Result, error) {
	pkgs, err := Load(ctx, dir, opts.Patterns, logger)
	if err != nil {
		return nil, err
	}
	result := Collect(pkgs, dir, logger)
	result.Dir = dir
	return result, nil
}

// Collect builds interface and type definitions from already loaded
// packages and matches implementations.
func Collect(pkgs []*packages.Package, dir string, logger *slog.Logger) *Result {
	var ifaces []InterfaceDef
	var namedTypes []TypeDef
	seenIfaces := make(map[string]bool) // pkgPath.Name dedup

	collectIface := func(tn *types.TypeName, iface *types.Interface, pkgPath, pkgName string, fset *token.FileSet) {
		key := pkgPath + "." + tn.Name()
		if seenIfaces[key] {
			return
		}
		seenIfaces[key] = true
		ifaces = append(ifaces, InterfaceDef{
			Name:       tn.Name(),
			PkgPath:    pkgPath,
			PkgName:    pkgName,
			Methods:    extractIfaceMethods(iface),
			Embeds:     embeddedNames(iface),
			Explicit:   iface.NumExplicitMethods(),
			TypeObj:    iface,
			SourceFile: resolveSourceFile(fset, tn.Pos(), dir),
		})
		logger.Debug("found interface", "name", tn.Name(), "package", pkgPath, "methods", iface.NumMethods())
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, named, ok := namedType(scope.Lookup(name))
			if !ok {
				continue
			}
			if iface, ok := named.Underlying().(*types.Interface); ok {
				collectIface(tn, iface, pkg.PkgPath, pkg.Name, pkg.Fset)
				continue
			}
			methods := extractTypeMethods(named)
			namedTypes = append(namedTypes, TypeDef{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Methods:    methods,
				TypeObj:    named,
				SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
			})
			logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath, "methods", len(methods))
		}

		// Interfaces from imports can be satisfied by local types (io.Writer and friends).
		for _, imp := range pkg.Imports {
			if imp.Types == nil {
				continue
			}
			impScope := imp.Types.Scope()
			for _, name := range impScope.Names() {
				tn, named, ok := namedType(impScope.Lookup(name))
				if !ok || !tn.Exported() {
					continue
				}
				if iface, ok := named.Underlying().(*types.Interface); ok {
					collectIface(tn, iface, imp.PkgPath, imp.Name, imp.Fset)
				}
			}
		}
	}

	logger.Info("types collected", "interfaces", len(ifaces), "types", len(namedTypes))

	var methodSetCache typeutil.MethodSetCache
	var relations []Relation

	for i := range namedTypes {
		t := &namedTypes[i]
		for j := range ifaces {
			iface := &ifaces[j]

			// Skip empty interfaces
			if iface.TypeObj.NumMethods() == 0 {
				continue
			}

			valType := t.TypeObj
			ptrType := types.NewPointer(valType)

			if types.Implements(valType, iface.TypeObj) || matchesMethodSet(methodSetCache.MethodSet(valType), iface.TypeObj) {
				relations = append(relations, Relation{Type: t, Interface: iface})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", false)
			} else if types.Implements(ptrType, iface.TypeObj) || matchesMethodSet(methodSetCache.MethodSet(ptrType), iface.TypeObj) {
				relations = append(relations, Relation{Type: t, Interface: iface, ViaPointer: true})
				logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", true)
			}
		}
	}

	logger.Info("analysis complete", "relations", len(relations))

	return &Result{
		Interfaces: ifaces,
		Types:      namedTypes,
		Relations:  relations,
		Packages:   pkgs,
	}
}

func namedType(obj types.Object) (*types.TypeName, *types.Named, bool) {
	tn, ok := obj.(*types.TypeName)
	if !ok || tn.IsAlias() {
		return nil, nil, false
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, nil, false
	}
	return tn, named, true
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func embeddedNames(iface *types.Interface) []string {
	var names []string
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		names = append(names, shortType(iface.EmbeddedType(i)))
	}
	return names
}

func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		})
	}
	return methods
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	if results.Len() > 0 {
		b.WriteString(" ")
		if results.Len() == 1 {
			b.WriteString(shortType(results.At(0).Type()))
		} else {
			b.WriteString("(")
			for i := 0; i < results.Len(); i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(shortType(results.At(i).Type()))
			}
			b.WriteString(")")
		}
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile resolves a token position to a file path relative to moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
