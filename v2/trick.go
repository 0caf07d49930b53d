// Package semvertrick is the v2 layout of the semver-trick demo
// library: Moved now lives in the after subpackage, Removed is gone,
// and Added is new. The final v1 release bridges the old import paths
// onto these declarations with type aliases, so v1 and v2 consumers
// can coexist in one build.
package semvertrick

// Unchanged is the widely used type. Interchangeable across v1 and v2.
type Unchanged struct{}

// Added is new in v2.
type Added struct{}
