package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int    // default 5, 0 means unlimited
	IncludeInit      bool   // include %%{init:}%% directive (for standalone .mmd files)
	Title            string // optional front-matter title
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// GenerateMermaid produces a Mermaid classDiagram of capabilities, the
// variants implementing them, and the implements-relations between them.
// Single-operation interfaces are tagged <<capability>>, interfaces that only
// compose others <<composite>>, and the rest <<interface>>.
func GenerateMermaid(result *analyzer.Result, opts DiagramOptions) string {
	var b strings.Builder

	ifaces := make([]analyzer.InterfaceDef, len(result.Interfaces))
	copy(ifaces, result.Interfaces)
	sort.Slice(ifaces, func(i, j int) bool {
		if ifaces[i].PkgName != ifaces[j].PkgName {
			return ifaces[i].PkgName < ifaces[j].PkgName
		}
		return ifaces[i].Name < ifaces[j].Name
	})

	typs := make([]analyzer.TypeDef, len(result.Types))
	copy(typs, result.Types)
	sort.Slice(typs, func(i, j int) bool {
		if typs[i].PkgName != typs[j].PkgName {
			return typs[i].PkgName < typs[j].PkgName
		}
		return typs[i].Name < typs[j].Name
	})

	rels := make([]analyzer.Relation, len(result.Relations))
	copy(rels, result.Relations)
	sort.Slice(rels, func(i, j int) bool {
		ti := NodeID(rels[i].Type.PkgName, rels[i].Type.Name)
		tj := NodeID(rels[j].Type.PkgName, rels[j].Type.Name)
		if ti != tj {
			return ti < tj
		}
		return NodeID(rels[i].Interface.PkgName, rels[i].Interface.Name) <
			NodeID(rels[j].Interface.PkgName, rels[j].Interface.Name)
	})

	if opts.Title != "" {
		fmt.Fprintf(&b, "---\ntitle: %s\n---\n", opts.Title)
	}
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(ifaces) > 0 || len(typs) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef capabilityStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef fatStyle fill:#c0392b,stroke:#922b21,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef variantStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px")
	}

	for _, iface := range ifaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface, opts)
	}

	if len(ifaces) > 0 && len(typs) > 0 {
		b.WriteString("\n")
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeTypeBlock(&b, typ)
	}

	if (len(ifaces) > 0 || len(typs) > 0) && len(rels) > 0 {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		b.WriteString("\n")
		writeRelation(&b, rel)
	}

	if len(ifaces) > 0 || len(typs) > 0 {
		b.WriteString("\n")
		for _, iface := range ifaces {
			style := "capabilityStyle"
			if !iface.IsCapability() {
				style = "fatStyle"
			}
			fmt.Fprintf(&b, "\n    cssClass \"%s\" %s", NodeID(iface.PkgName, iface.Name), style)
		}
		for _, typ := range typs {
			fmt.Fprintf(&b, "\n    cssClass \"%s\" variantStyle", NodeID(typ.PkgName, typ.Name))
		}
	}

	return b.String()
}

// Stereotype classifies an interface for its Mermaid annotation.
func Stereotype(iface analyzer.InterfaceDef) string {
	switch {
	case iface.Explicit == 0 && len(iface.Embeds) > 0:
		return "composite"
	case iface.IsCapability():
		return "capability"
	default:
		return "interface"
	}
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// interface{} must become "any" before braces are stripped: a bare
	// "interface" collides with the <<interface>> annotation.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

func writeInterfaceBlock(b *strings.Builder, iface analyzer.InterfaceDef, opts DiagramOptions) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(iface.PkgName, iface.Name))
	fmt.Fprintf(b, "        <<%s>>\n", Stereotype(iface))
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	writeMethodLines(b, iface.Methods, opts)
	b.WriteString("    }")
}

// writeTypeBlock writes only the variant's name; its operations are on the
// capabilities it implements.
func writeTypeBlock(b *strings.Builder, typ analyzer.TypeDef) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(typ.PkgName, typ.Name))
	if typ.SourceFile != "" {
		b.WriteString("        %% file: " + typ.SourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeMethodLines(b *strings.Builder, methods []analyzer.MethodSig, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}

	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(methods[i].Signature))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

// writeRelation draws value-receiver implementations solid and
// pointer-receiver ones dashed.
func writeRelation(b *strings.Builder, rel analyzer.Relation) {
	typeID := NodeID(rel.Type.PkgName, rel.Type.Name)
	ifaceID := NodeID(rel.Interface.PkgName, rel.Interface.Name)
	arrow := "--|>"
	if rel.ViaPointer {
		arrow = "..|>"
	}
	fmt.Fprintf(b, "    %s %s %s", typeID, arrow, ifaceID)
}
