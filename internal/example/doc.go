// Package example defines the shape shared by every principle demonstration:
// a pair of demo routines, one showing the violation and one showing the fix.
package example
