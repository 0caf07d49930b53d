package errors_test

import (
	goerrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/c0deZ3R0/semver-trick/errors"
)

// TestPropagationThroughLayers verifies that a CheckError created deep in
// a call chain survives repeated fmt.Errorf wrapping.
func TestPropagationThroughLayers(t *testing.T) {
	root := errors.NewLoadError(errors.OpLoad, fmt.Errorf("no packages matched"))

	layered := fmt.Errorf("checking bridge: %w", fmt.Errorf("loading snapshot: %w", root))

	var checkErr *errors.CheckError
	if !goerrors.As(layered, &checkErr) {
		t.Fatal("CheckError lost through wrapping")
	}
	if checkErr.Code != errors.ErrCodeLoadFailure {
		t.Errorf("Code = %v, want %v", checkErr.Code, errors.ErrCodeLoadFailure)
	}
	if !strings.Contains(layered.Error(), "no packages matched") {
		t.Errorf("cause message lost: %q", layered.Error())
	}
}

// TestComponentPropagation verifies component context set at the
// failure site is what callers observe.
func TestComponentPropagation(t *testing.T) {
	tests := []struct {
		name         string
		err          *errors.CheckError
		expectedOp   errors.Operation
		expectedComp string
	}{
		{
			name:         "loader failure",
			err:          errors.NewLoadError(errors.OpLoad, fmt.Errorf("boom")),
			expectedOp:   errors.OpLoad,
			expectedComp: "loader",
		},
		{
			name:         "modgraph failure",
			err:          errors.NewModfileError(errors.OpModfile, fmt.Errorf("require missing")),
			expectedOp:   errors.OpModfile,
			expectedComp: "modgraph",
		},
		{
			name:         "explicit component",
			err:          errors.NewWithComponent(errors.OpExtract, "surface", fmt.Errorf("boom")),
			expectedOp:   errors.OpExtract,
			expectedComp: "surface",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)

			var checkErr *errors.CheckError
			if !goerrors.As(wrapped, &checkErr) {
				t.Fatal("CheckError lost through wrapping")
			}
			if checkErr.Op != tt.expectedOp {
				t.Errorf("Op = %s, want %s", checkErr.Op, tt.expectedOp)
			}
			if checkErr.Component != tt.expectedComp {
				t.Errorf("Component = %s, want %s", checkErr.Component, tt.expectedComp)
			}
		})
	}
}
