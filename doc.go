// Package semvertrick is the compatibility bridge release of the
// semver-trick demo library.
//
// The v1 line of this library shipped three exported types: Unchanged,
// Removed, and before.Moved. The v2 module reorganizes that surface:
// Moved now lives in the after package, Removed is gone, and Added is
// new. Cutting v2 alone would strand every consumer of the v1 import
// paths, and worse, a program depending on both lines at once would see
// two distinct Unchanged types that do not interoperate.
//
// This release is the trick: the final v1 release re-exports the v2
// identities under the v1 names using type aliases. An alias is not a
// new type, so a value of before.Moved is a value of after.Moved, and
// code on either import path exchanges values freely.
//
// # Upgrading
//
// Consumers on v1 upgrade to this release first. Nothing changes for
// them: every v1 import path still resolves, and code using Removed
// keeps compiling against the local declaration kept here. From there
// they migrate to the v2 import paths at their own pace; types obtained
// through either path are interchangeable the whole way.
//
//	import (
//		"github.com/c0deZ3R0/semver-trick/before"
//		"github.com/c0deZ3R0/semver-trick/v2/after"
//	)
//
//	func archive(m after.Moved) { ... }
//
//	// before.Moved and after.Moved are the same type, so this holds:
//	archive(before.Moved{})
//
// The cmd/bridge-check tool verifies the bridge mechanically: every v1
// export still resolves here, and every alias lands on a type declared
// in v2.
package semvertrick
