// Package after is the v2 home of Moved, previously declared in the v1
// before package.
package after

// Moved lived in the before package in v1. The v1 bridge release
// aliases the old name to this declaration.
type Moved struct{}
