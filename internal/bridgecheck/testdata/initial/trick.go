// Package semvertrick is the v1 layout as originally released, frozen
// here as the baseline the bridge must keep covered.
package semvertrick

// Unchanged is the widely used type. It keeps its name and package in v2.
type Unchanged struct{}

// Removed is not widely used. It is dropped in v2.
type Removed struct{}
