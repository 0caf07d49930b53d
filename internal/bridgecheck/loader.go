// Package bridgecheck verifies that a compatibility bridge release does
// its job: every symbol the old release exported still resolves under
// its old import path, and every re-export lands on a type declared in
// the new major version.
package bridgecheck

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"

	"github.com/c0deZ3R0/semver-trick/errors"
	"github.com/c0deZ3R0/semver-trick/logging"
)

// Module is one loaded snapshot: its go.mod plus its type-checked
// packages.
type Module struct {
	Dir  string
	Path string
	File *modfile.File
	Pkgs []*packages.Package
}

// LoadModule loads the module rooted at dir with full type information.
// With no patterns it loads every package in the module.
func LoadModule(ctx context.Context, dir string, patterns ...string) (*Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.NewLoadError(errors.OpLoad, err)
	}

	mf, err := ParseModFile(abs)
	if err != nil {
		return nil, err
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedDeps | packages.NeedModule,
		Dir:   abs,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.NewLoadError(errors.OpLoad, err)
	}
	if len(pkgs) == 0 {
		return nil, errors.NewLoadError(errors.OpLoad, fmt.Errorf("no packages found in %s", abs))
	}

	var loadErrs []packages.Error
	for _, pkg := range pkgs {
		loadErrs = append(loadErrs, pkg.Errors...)
	}
	if len(loadErrs) > 0 {
		return nil, errors.NewLoadError(errors.OpLoad,
			fmt.Errorf("%d load errors in %s, first: %s", len(loadErrs), abs, loadErrs[0].Msg))
	}

	logging.Debug("module loaded",
		slog.String("module", mf.Module.Mod.Path),
		slog.String("dir", abs),
		slog.Int("packages", len(pkgs)),
	)

	return &Module{
		Dir:  abs,
		Path: mf.Module.Mod.Path,
		File: mf,
		Pkgs: pkgs,
	}, nil
}
