// Package cli implements the gosolid command tree.
package cli
