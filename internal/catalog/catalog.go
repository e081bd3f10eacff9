// Package catalog lists the principle examples in SOLID order.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/example"
	"github.com/olehluchkiv/gosolid/internal/examples/dip"
	"github.com/olehluchkiv/gosolid/internal/examples/isp"
	"github.com/olehluchkiv/gosolid/internal/examples/lsp"
	"github.com/olehluchkiv/gosolid/internal/examples/ocp"
	"github.com/olehluchkiv/gosolid/internal/examples/srp"
)

// ErrUnknownExample is returned by Lookup for names not in the catalog.
var ErrUnknownExample = errors.New("unknown example")

// All returns every example in SOLID order.
func All() []example.Example {
	return []example.Example{
		srp.Example(),
		ocp.Example(),
		lsp.Example(),
		isp.Example(),
		dip.Example(),
	}
}

// Names returns the example names in catalog order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an example by name, case-insensitively.
func Lookup(name string) (example.Example, error) {
	for _, e := range All() {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return example.Example{}, fmt.Errorf("%w: %s (valid: %s)", ErrUnknownExample, name, strings.Join(Names(), ", "))
}
