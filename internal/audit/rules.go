package audit

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

type checker struct {
	modulePath string
	root       string
	markers    map[string]bool
}

func (c *checker) position(fset *token.FileSet, pos token.Pos) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	p := fset.Position(pos)
	name := p.Filename
	if rel, err := filepath.Rel(c.root, name); err == nil && !strings.HasPrefix(rel, "..") {
		name = filepath.ToSlash(rel)
	}
	return fmt.Sprintf("%s:%d", name, p.Line)
}

func (c *checker) finding(pkg *packages.Package, rule Rule, object string, pos token.Pos, format string, args ...any) Finding {
	return Finding{
		Rule:     rule,
		Package:  pkg.PkgPath,
		Object:   object,
		Message:  fmt.Sprintf(format, args...),
		Position: c.position(pkg.Fset, pos),
	}
}

func (c *checker) fatInterfaces(pkg *packages.Package) []Finding {
	var out []Finding
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		iface, ok := tn.Type().Underlying().(*types.Interface)
		if !ok || iface.NumExplicitMethods() <= 1 {
			continue
		}
		ops := make([]string, iface.NumExplicitMethods())
		for i := range ops {
			ops[i] = iface.ExplicitMethod(i).Name()
		}
		sort.Strings(ops)
		out = append(out, c.finding(pkg, RuleFatInterface, tn.Name(), tn.Pos(),
			"interface %s declares %d operations (%s); split it into single-operation capabilities",
			tn.Name(), len(ops), strings.Join(ops, ", ")))
	}
	return out
}

func (c *checker) forcedCapabilities(pkg *packages.Package) []Finding {
	var out []Finding
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || fd.Body == nil {
				continue
			}
			var marker string
			ast.Inspect(fd.Body, func(n ast.Node) bool {
				if marker != "" {
					return false
				}
				switch n := n.(type) {
				case *ast.FuncLit:
					return false
				case *ast.ReturnStmt:
					for _, res := range n.Results {
						if m := c.producedMarker(pkg.TypesInfo, res); m != "" {
							marker = m
							break
						}
					}
					return false
				}
				return true
			})
			if marker == "" {
				continue
			}
			object := funcName(pkg, fd)
			out = append(out, c.finding(pkg, RuleForcedCapability, object, fd.Pos(),
				"%s implements an operation it cannot honor (uses %s); drop the method and the capability it satisfies",
				object, marker))
		}
	}
	return out
}

// producedMarker returns the marker an expression yields as its value: the
// marker itself, a call to it, or an error wrapping it. Markers that are only
// compared against (errors.Is, ==) yield nothing.
func (c *checker) producedMarker(info *types.Info, expr ast.Expr) string {
	switch e := astutil.Unparen(expr).(type) {
	case *ast.Ident:
		return c.markerName(info.Uses[e])
	case *ast.SelectorExpr:
		return c.markerName(info.Uses[e.Sel])
	case *ast.CallExpr:
		if m := c.producedMarker(info, e.Fun); m != "" {
			return m
		}
		if !isErrorWrapper(info, e.Fun) {
			return ""
		}
		for _, arg := range e.Args {
			if m := c.producedMarker(info, arg); m != "" {
				return m
			}
		}
	}
	return ""
}

func (c *checker) markerName(obj types.Object) string {
	if obj == nil || obj.Pkg() == nil {
		return ""
	}
	if !c.markers[obj.Pkg().Path()+"."+obj.Name()] {
		return ""
	}
	return obj.Pkg().Name() + "." + obj.Name()
}

// isErrorWrapper reports whether fun is fmt.Errorf or errors.Join.
func isErrorWrapper(info *types.Info, fun ast.Expr) bool {
	var id *ast.Ident
	switch f := astutil.Unparen(fun).(type) {
	case *ast.SelectorExpr:
		id = f.Sel
	case *ast.Ident:
		id = f
	default:
		return false
	}
	fn, ok := info.Uses[id].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	switch fn.Pkg().Path() + "." + fn.Name() {
	case "fmt.Errorf", "errors.Join":
		return true
	}
	return false
}

func (c *checker) typeSwitchDispatch(pkg *packages.Package) []Finding {
	var out []Finding
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Body == nil {
				continue
			}
			fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}
			params := emptyInterfaceParams(fn.Type().(*types.Signature))
			if len(params) == 0 {
				continue
			}

			var inspected *types.Var
			ast.Inspect(fd.Body, func(n ast.Node) bool {
				if inspected != nil {
					return false
				}
				ta, ok := n.(*ast.TypeAssertExpr)
				if !ok {
					return true
				}
				id, ok := astutil.Unparen(ta.X).(*ast.Ident)
				if !ok {
					return true
				}
				if v, ok := pkg.TypesInfo.Uses[id].(*types.Var); ok && params[v] {
					inspected = v
				}
				return true
			})
			if inspected == nil {
				continue
			}
			object := funcName(pkg, fd)
			out = append(out, c.finding(pkg, RuleTypeSwitchDispatch, object, fd.Pos(),
				"%s branches on the dynamic type of %s; accept a capability interface and let each variant implement it",
				object, inspected.Name()))
		}
	}
	return out
}

func emptyInterfaceParams(sig *types.Signature) map[*types.Var]bool {
	params := make(map[*types.Var]bool)
	for i := 0; i < sig.Params().Len(); i++ {
		p := sig.Params().At(i)
		if _, isTypeParam := p.Type().(*types.TypeParam); isTypeParam {
			continue
		}
		if iface, ok := p.Type().Underlying().(*types.Interface); ok && iface.NumMethods() == 0 {
			params[p] = true
		}
	}
	return params
}

func (c *checker) concreteDependencies(pkg *packages.Package) []Finding {
	var out []Finding
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		holder, ok := tn.Type().(*types.Named)
		if !ok || !hasMethods(holder) {
			continue
		}
		st, ok := holder.Underlying().(*types.Struct)
		if !ok {
			continue
		}
		for i := 0; i < st.NumFields(); i++ {
			field := st.Field(i)
			if field.Embedded() {
				continue
			}
			if !c.concreteService(field.Type()) {
				continue
			}
			object := tn.Name() + "." + field.Name()
			out = append(out, c.finding(pkg, RuleConcreteDependency, object, field.Pos(),
				"%s holds concrete %s; depend on an interface and receive it through the constructor",
				object, types.TypeString(field.Type(), types.RelativeTo(pkg.Types))))
		}
	}
	return out
}

// concreteService reports whether t (or *t) is a non-interface named type
// from the audited module that carries behavior.
func (c *checker) concreteService(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	if _, isIface := named.Underlying().(*types.Interface); isIface {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || c.modulePath == "" {
		return false
	}
	path := obj.Pkg().Path()
	if path != c.modulePath && !strings.HasPrefix(path, c.modulePath+"/") {
		return false
	}
	return hasMethods(named)
}

func hasMethods(named *types.Named) bool {
	return types.NewMethodSet(types.NewPointer(named)).Len() > 0
}

// funcName renders a declared function as Name or Recv.Name.
func funcName(pkg *packages.Package, fd *ast.FuncDecl) string {
	fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
	if !ok {
		return fd.Name.Name
	}
	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil {
		return fn.Name()
	}
	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj().Name() + "." + fn.Name()
	}
	return fn.Name()
}
