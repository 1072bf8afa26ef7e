package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fwbom/internal/adapters/config"
	"go.trai.ch/fwbom/internal/core/domain"
	"go.trai.ch/fwbom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600)) //nolint:gosec // Test file permissions
}

func TestLoad_Success(t *testing.T) {
	content := `
ecosystem: opkg
license_delimiters: [";", " OR "]
workers: 2
max_artifact_size: 2048
cache_size: 16
retry:
  attempts: 5
  backoff: 10ms
index_names: [Packages, Packages.manifest]
installed_only: true
exclude: [kmod-b, kmod-a]
exclude_file: exclude.txt
cpe:
  overrides_file: cpe.json
  overrides:
    dropbear: cpe:/a:dropbear_ssh_project:dropbear_ssh
  require: true
  ignore: [base-files]
root:
  name: my-router
  supplier: ACME
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "fwbom.yaml")
	writeFile(t, configPath, content)
	writeFile(t, filepath.Join(tmpDir, "exclude.txt"), "[kmod-a, \"kmod-c\"]\n")
	writeFile(t, filepath.Join(tmpDir, "cpe.json"), `{"busybox": "cpe:/a:busybox:busybox", "dropbear": "cpe:/a:old"}`)

	loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
	opts, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "opkg", opts.Ecosystem)
	assert.Equal(t, []string{";", " OR "}, opts.LicenseDelimiters)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, int64(2048), opts.MaxArtifactSize)
	assert.Equal(t, 16, opts.CacheSize)
	assert.Equal(t, domain.RetryPolicy{Attempts: 5, Backoff: 10 * time.Millisecond}, opts.Retry)
	assert.Equal(t, []string{"Packages", "Packages.manifest"}, opts.IndexNames)
	assert.True(t, opts.InstalledOnly)
	assert.Equal(t, []string{"kmod-a", "kmod-b", "kmod-c"}, opts.Exclude)
	assert.True(t, opts.CPE.Require)
	assert.Equal(t, []string{"base-files"}, opts.CPE.Ignore)
	assert.Equal(t, map[string]string{
		"busybox":  "cpe:/a:busybox:busybox",
		"dropbear": "cpe:/a:dropbear_ssh_project:dropbear_ssh",
	}, opts.CPE.Overrides)
	assert.Equal(t, "my-router", opts.RootName)
	assert.Equal(t, "ACME", opts.RootSupplier)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any())

	opts, err := config.NewLoader(log).Load(filepath.Join(t.TempDir(), "fwbom.yaml"))
	require.NoError(t, err)

	defaults := domain.DefaultOptions()
	assert.Equal(t, defaults.Ecosystem, opts.Ecosystem)
	assert.Equal(t, defaults.LicenseDelimiters, opts.LicenseDelimiters)
	assert.Equal(t, defaults.IndexNames, opts.IndexNames)
	assert.Equal(t, defaults.Retry, opts.Retry)
	assert.Positive(t, opts.Workers)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fwbom.yaml")
	writeFile(t, configPath, "")

	opts, err := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t))).Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEcosystem, opts.Ecosystem)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "workers: [1"},
		{"unknown field", "wokers: 4"},
		{"bad backoff", "retry:\n  backoff: soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "fwbom.yaml")
			writeFile(t, configPath, tt.content)

			_, err := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t))).Load(configPath)
			require.ErrorIs(t, err, domain.ErrConfigParseFailed)
			assert.True(t, domain.IsFatalConfig(err))
		})
	}
}

func TestLoadPackageList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	writeFile(t, path, "# packages without upstream CPE\nbase-files\nkmod-ath9k, kmod-ath\n\n['uci']\n")

	names, err := config.NewLoader(nil).LoadPackageList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"base-files", "kmod-ath", "kmod-ath9k", "uci"}, names)

	_, err = config.NewLoader(nil).LoadPackageList(path + ".missing")
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoadCPEOverrides(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "cpe.yaml")
	writeFile(t, yamlPath, "openssl: cpe:/a:openssl:openssl\n")
	overrides, err := config.NewLoader(nil).LoadCPEOverrides(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"openssl": "cpe:/a:openssl:openssl"}, overrides)

	badPath := filepath.Join(dir, "bad.json")
	writeFile(t, badPath, `{"openssl": ""}`)
	_, err = config.NewLoader(nil).LoadCPEOverrides(badPath)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}
