package bridgecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/modfile"

	"github.com/c0deZ3R0/semver-trick/errors"
)

func parseMod(t *testing.T, content string) *modfile.File {
	t.Helper()
	mf, err := ParseModData("go.mod", []byte(content))
	require.NoError(t, err)
	return mf
}

func TestParseModData(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		module  string
	}{
		{
			name:    "valid",
			content: "module example.com/lib\n\ngo 1.24.4\n",
			module:  "example.com/lib",
		},
		{
			name:    "missing module directive",
			content: "go 1.24.4\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			content: "module \"unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mf, err := ParseModData("go.mod", []byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeModfileFailure, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.module, mf.Module.Mod.Path)
		})
	}
}

func TestVerifyModuleGraphSound(t *testing.T) {
	bridge := parseMod(t, "module example.com/lib\n\nrequire example.com/lib/v2 v2.0.0\n")
	next := parseMod(t, "module example.com/lib/v2\n")
	require.NoError(t, VerifyModuleGraph(bridge, next))
}

func TestVerifyModuleGraphRejections(t *testing.T) {
	tests := []struct {
		name    string
		bridge  string
		next    string
		wantErr string
	}{
		{
			name:    "new module has no major suffix",
			bridge:  "module example.com/lib\n\nrequire example.com/other v1.0.0\n",
			next:    "module example.com/other\n",
			wantErr: "no major-version suffix",
		},
		{
			name:    "new module is a different path family",
			bridge:  "module example.com/lib\n\nrequire example.com/other/v2 v2.0.0\n",
			next:    "module example.com/other/v2\n",
			wantErr: "not a major line",
		},
		{
			name:    "bridge does not require the new module",
			bridge:  "module example.com/lib\n",
			next:    "module example.com/lib/v2\n",
			wantErr: "does not require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bridge := parseMod(t, tt.bridge)
			next := parseMod(t, tt.next)

			err := VerifyModuleGraph(bridge, next)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeModfileFailure, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// A require whose version does not match the path's major suffix is
// refused, whether modfile.Parse catches it or VerifyModuleGraph does.
func TestVerifyModuleGraphVersionMismatch(t *testing.T) {
	next := parseMod(t, "module example.com/lib/v2\n")

	bridge, err := ParseModData("go.mod",
		[]byte("module example.com/lib\n\nrequire example.com/lib/v2 v1.0.0\n"))
	if err != nil {
		assert.Equal(t, errors.ErrCodeModfileFailure, errors.CodeOf(err))
		return
	}
	err = VerifyModuleGraph(bridge, next)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeModfileFailure, errors.CodeOf(err))
}

func TestVerifyModuleGraphHigherMajors(t *testing.T) {
	// The trick works the same for a v2 release bridging to v3.
	next := parseMod(t, "module example.com/lib/v3\n")
	bridgeV2 := parseMod(t, "module example.com/lib/v2\n\nrequire example.com/lib/v3 v3.1.0\n")
	assert.NoError(t, VerifyModuleGraph(bridgeV2, next))

	// A bridge looks forward: aliasing v3 from a v4 release is refused.
	bridgeV4 := parseMod(t, "module example.com/lib/v4\n\nrequire example.com/lib/v3 v3.1.0\n")
	err := VerifyModuleGraph(bridgeV4, next)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a later major line")
}
