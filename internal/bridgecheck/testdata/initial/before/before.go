// Package before holds Moved, which relocates to the after package in v2.
package before

// Moved relocates in v2.
type Moved struct{}
