package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rapidmidiex/rmxchords/config"
	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRejectsInvalidConfig(t *testing.T) {
	t.Run("unknown language flag", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"--lang", "klingon", "--state-file", filepath.Join(t.TempDir(), "state.json")})
		require.ErrorIs(t, cmd.Execute(), rmxerr.ErrInvalidConfig)
	})

	t.Run("missing config file", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, cmd.Execute())
	})
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "rmxchords.yaml")

	cmd := rootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"init-config", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), path)

	got, err := config.LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), got)

	t.Run("keeps an existing file", func(t *testing.T) {
		cmd := rootCmd()
		cmd.SetArgs([]string{"init-config", path})
		require.Error(t, cmd.Execute())
	})
}
