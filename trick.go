package semvertrick

import (
	v2 "github.com/c0deZ3R0/semver-trick/v2"
)

// Unchanged is the widely used type that keeps its name and package in
// v2. The alias makes the v1 and v2 identities one and the same, so a
// build holding both module versions sees a single type.
type Unchanged = v2.Unchanged

// Removed has no v2 counterpart. It stays declared here so v1 consumers
// keep compiling; they must drop it before moving to v2.
//
// Deprecated: Removed is gone in v2 with no replacement.
type Removed struct{}
