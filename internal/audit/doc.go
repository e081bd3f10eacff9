// Package audit checks Go packages for the structural anti-patterns the
// SOLID examples illustrate.
//
// Each rule looks at type-checked syntax loaded by the analyzer:
//
//   - fat-interface: an interface declaring more than one operation of its
//     own. Interfaces that only embed others are compositions and pass.
//   - forced-capability: a method that returns an "unsupported operation"
//     marker, directly, through a call to it, or wrapped with fmt.Errorf or
//     errors.Join, i.e. a variant implementing a capability it cannot honor.
//     Code that only tests for the marker with errors.Is or == passes.
//   - type-switch-dispatch: a function taking an empty interface and
//     branching on its dynamic type.
//   - concrete-dependency: a type with behavior that holds a concrete,
//     method-bearing type from the same module in a named field instead of
//     an interface.
//
// The correct example packages audit clean; each incorrect one trips the
// rule matching its principle, except SRP, which no structural rule can see.
package audit
