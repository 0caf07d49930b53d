// Package semvertrick is a bridge whose alias never leaves its own
// module, so old and new consumers still end up with two identities.
package semvertrick

import (
	"github.com/c0deZ3R0/semver-trick/misc"
)

type Unchanged = misc.Thing
