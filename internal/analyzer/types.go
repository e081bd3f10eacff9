package analyzer

import (
	"go/types"

	"golang.org/x/tools/go/packages"
)

// InterfaceDef represents a discovered Go interface.
type InterfaceDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	Embeds     []string // embedded interfaces, as written (pkg.Name)
	Explicit   int      // methods declared directly, not through embedding
	TypeObj    *types.Interface
	SourceFile string
}

// IsCapability reports whether the interface declares at most one operation
// of its own. Interfaces that only embed others are compositions.
func (d InterfaceDef) IsCapability() bool {
	return d.Explicit <= 1
}

// TypeDef represents a discovered named Go type.
type TypeDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	TypeObj    *types.Named
	SourceFile string
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation captures that a concrete type implements an interface.
type Relation struct {
	Type       *TypeDef
	Interface  *InterfaceDef
	ViaPointer bool // true if only *T (not T) satisfies the interface
}

// Result holds the complete analysis output.
type Result struct {
	Interfaces []InterfaceDef
	Types      []TypeDef
	Relations  []Relation
	ModulePath string // module path from go.mod (e.g. "github.com/user/repo")
	Dir        string

	// Packages are the loaded, type-checked packages the result was built from.
	Packages []*packages.Package
}

// AnalyzeOptions controls analysis behavior.
type AnalyzeOptions struct {
	Patterns          []string // package patterns relative to the module root; default "./..."
	Filter            string   // package path prefix filter
	IncludeStdlib     bool
	IncludeUnexported bool
}
