package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwbom/cmd/fwbom/commands"
	"go.trai.ch/fwbom/internal/core/domain"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	buildDir := t.TempDir()
	index := filepath.Join(buildDir, "bin", "packages", "Packages")
	require.NoError(t, os.MkdirAll(filepath.Dir(index), 0o750))
	require.NoError(t, os.WriteFile(index, []byte("Package: busybox\nVersion: 1.36.1-1\nDepends: libc\n\nPackage: libc\nVersion: 1.2.4\n"), 0o600)) //nolint:gosec // Test file permissions

	out := filepath.Join(t.TempDir(), "fw.cdx.json")

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{"Success", []string{"fwbom", "generate", "-b", buildDir, "-o", out, "--diff"}, 0},
		{"Version", []string{"fwbom", "version"}, 0},
		{"Missing build directory", []string{"fwbom", "generate", "-b", filepath.Join(buildDir, "missing"), "-o", out}, 1},
		{"Unknown command", []string{"fwbom", "frobnicate"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			exitCode := run(func(c *commands.CLI) { c.SetArgs(tt.args[1:]) })
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}

	data, err := os.ReadFile(out) //nolint:gosec // Test output path
	require.NoError(t, err)

	var bom domain.BOM
	require.NoError(t, json.Unmarshal(data, &bom))
	assert.Len(t, bom.Components, 2)
	assert.Equal(t, "openwrt", bom.Metadata.Component.Name)

	_, err = os.Stat(filepath.Join(filepath.Dir(out), "fw.cdx.nocpe.json"))
	assert.NoError(t, err)
}
