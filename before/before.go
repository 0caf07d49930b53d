// Package before is the v1 home of Moved. In v2 the type lives in the
// after package; the alias below keeps the old import path working and
// keeps both paths naming the identical type.
package before

import (
	"github.com/c0deZ3R0/semver-trick/v2/after"
)

// Moved relocated to after in v2.
//
// Deprecated: import github.com/c0deZ3R0/semver-trick/v2/after instead.
type Moved = after.Moved
