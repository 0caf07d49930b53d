// Package semvertrick is a bridge that gets the trick wrong: Removed is
// gone entirely, and before.Moved is redeclared instead of aliased.
package semvertrick

import (
	v2 "github.com/c0deZ3R0/semver-trick/v2"
)

type Unchanged = v2.Unchanged
