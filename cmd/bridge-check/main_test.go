package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An unknown format must be refused before any snapshot is loaded, and
// the error must reach the caller rather than vanishing behind
// SilenceErrors.
func TestUnknownFormatRejectedBeforeLoading(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--format", "yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
}

func TestFormatFlagDefaultsToText(t *testing.T) {
	cmd := newRootCmd()
	flag := cmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "text", flag.DefValue)
}
