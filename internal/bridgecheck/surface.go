package bridgecheck

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/c0deZ3R0/semver-trick/errors"
)

// TypeRef names an exported type by its package path relative to the
// module root. RelPath is empty for the root package.
type TypeRef struct {
	RelPath string
	Name    string
}

func (r TypeRef) String() string {
	if r.RelPath == "" {
		return r.Name
	}
	return r.RelPath + "." + r.Name
}

// Surface is the importable exported-type surface of one module.
type Surface struct {
	Module string
	Types  map[TypeRef]*types.TypeName
}

// ExtractSurface collects every exported type declared in mod's own
// packages. Packages under internal/ are not importable from outside
// the module and are left out, as are dependency packages pulled in by
// the load.
func ExtractSurface(mod *Module) (*Surface, error) {
	s := &Surface{Module: mod.Path, Types: make(map[TypeRef]*types.TypeName)}

	for _, pkg := range mod.Pkgs {
		if pkg.Module == nil || pkg.Module.Path != mod.Path {
			continue
		}
		if pkg.Types == nil {
			return nil, errors.NewSurfaceError(errors.OpExtract,
				fmt.Errorf("package %s has no type information", pkg.PkgPath))
		}
		rel, ok := relPath(mod.Path, pkg.PkgPath)
		if !ok || isInternal(rel) || pkg.Name == "main" {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !tn.Exported() {
				continue
			}
			s.Types[TypeRef{RelPath: rel, Name: name}] = tn
		}
	}

	return s, nil
}

// Refs returns the surface's type references in deterministic order.
func (s *Surface) Refs() []TypeRef {
	refs := make([]TypeRef, 0, len(s.Types))
	for ref := range s.Types {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].RelPath != refs[j].RelPath {
			return refs[i].RelPath < refs[j].RelPath
		}
		return refs[i].Name < refs[j].Name
	})
	return refs
}

func relPath(modPath, pkgPath string) (string, bool) {
	if pkgPath == modPath {
		return "", true
	}
	if rest, ok := strings.CutPrefix(pkgPath, modPath+"/"); ok {
		return rest, true
	}
	return "", false
}

func isInternal(rel string) bool {
	for _, elem := range strings.Split(rel, "/") {
		if elem == "internal" {
			return true
		}
	}
	return false
}
