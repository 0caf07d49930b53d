package bridgecheck

import (
	"context"

	"github.com/c0deZ3R0/semver-trick/errors"
	"github.com/c0deZ3R0/semver-trick/logging"
)

// Options configures a bridge check.
type Options struct {
	// OldDir is the root of the release the bridge must cover. Empty
	// skips the coverage pass.
	OldDir string

	// BridgeDir is the root of the bridge release.
	BridgeDir string

	// NewDir is the root of the new major version.
	NewDir string
}

// Run loads the snapshots, verifies the module graph, and compares the
// surfaces. Load and parse failures come back as an error; findings
// about the bridge itself, including module-graph problems, land in the
// report.
func Run(ctx context.Context, opts Options) (*Report, error) {
	var bridge, next, old *Module

	err := logging.LogOperation(ctx, logging.Operation(errors.OpLoad), logging.Component("loader"), func() error {
		var err error
		if bridge, err = LoadModule(ctx, opts.BridgeDir); err != nil {
			return err
		}
		if next, err = LoadModule(ctx, opts.NewDir); err != nil {
			return err
		}
		if opts.OldDir != "" {
			if old, err = LoadModule(ctx, opts.OldDir); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	bridgeSurface, err := ExtractSurface(bridge)
	if err != nil {
		return nil, err
	}
	nextSurface, err := ExtractSurface(next)
	if err != nil {
		return nil, err
	}
	var oldSurface *Surface
	if old != nil {
		if oldSurface, err = ExtractSurface(old); err != nil {
			return nil, err
		}
	}

	report := Check(oldSurface, bridgeSurface, nextSurface)

	if err := VerifyModuleGraph(bridge.File, next.File); err != nil {
		report.GraphProblems = append(report.GraphProblems, err.Error())
	}

	return report, nil
}
