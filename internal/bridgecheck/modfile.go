package bridgecheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	"github.com/c0deZ3R0/semver-trick/errors"
)

// ParseModFile reads and parses dir/go.mod.
func ParseModFile(dir string) (*modfile.File, error) {
	goModPath := filepath.Join(dir, "go.mod")
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return nil, errors.NewModfileError(errors.OpModfile, err)
	}
	return ParseModData(goModPath, content)
}

// ParseModData parses go.mod content. path is used in error positions only.
func ParseModData(path string, data []byte) (*modfile.File, error) {
	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, errors.NewModfileError(errors.OpModfile, err)
	}
	if mf.Module == nil {
		return nil, errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("%s: missing module directive", path))
	}
	return mf, nil
}

// VerifyModuleGraph checks the packaging half of the trick: the new
// module is the next major line of the bridge's path, and the bridge
// requires it at a version matching its major suffix. The re-exports
// cannot resolve without this edge.
func VerifyModuleGraph(bridge, next *modfile.File) error {
	bridgePath := bridge.Module.Mod.Path
	nextPath := next.Module.Mod.Path

	prefix, pathMajor, ok := module.SplitPathVersion(nextPath)
	if !ok {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("invalid new module path %q", nextPath))
	}
	if pathMajor == "" {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("new module path %q carries no major-version suffix", nextPath))
	}
	bridgePrefix, bridgeMajor, ok := module.SplitPathVersion(bridgePath)
	if !ok {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("invalid bridge module path %q", bridgePath))
	}
	if prefix != bridgePrefix {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("new module %q is not a major line of %q", nextPath, bridgePath))
	}
	// A bridge only ever looks forward. "/v2" sorts after the empty
	// suffix of a v0/v1 path under semver.
	if bridgeMajor == "" {
		bridgeMajor = "/v1"
	}
	if semver.Compare(strings.TrimPrefix(pathMajor, "/"), strings.TrimPrefix(bridgeMajor, "/")) <= 0 {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("new module %q is not a later major line than %q", nextPath, bridgePath))
	}

	var req *modfile.Require
	for _, r := range bridge.Require {
		if r.Mod.Path == nextPath {
			req = r
			break
		}
	}
	if req == nil {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("bridge go.mod does not require %q", nextPath))
	}

	if !semver.IsValid(req.Mod.Version) {
		return errors.NewModfileError(errors.OpModfile,
			fmt.Errorf("bridge requires %s at invalid version %q", nextPath, req.Mod.Version))
	}
	if err := module.CheckPathMajor(req.Mod.Version, pathMajor); err != nil {
		return errors.NewModfileError(errors.OpModfile, err)
	}

	return nil
}
