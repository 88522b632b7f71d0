package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	CfgFile = ""
	t.Cleanup(func() {
		viper.Reset()
		CfgFile = ""
	})
}

// TestCurrentConfigDefaultsRoundTrip verifies that every default written by
// setDefaults is read back by CurrentConfig.
func TestCurrentConfigDefaultsRoundTrip(t *testing.T) {
	resetConfig(t)
	setDefaults()

	cfg := CurrentConfig()
	defaults := Defaults()
	assert.Equal(t, defaults, *cfg)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())

	cfg.Encoding = "base64"
	assert.NoError(t, cfg.Validate())

	cfg.Output = OUTPUT_YAML
	assert.NoError(t, cfg.Validate())

	bad := Defaults()
	bad.Encoding = "base32"
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.Output = "json"
	assert.Error(t, bad.Validate())
}

func TestInitConfigReadsExplicitFile(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "mpid.yaml")
	content := "encoding: base64\noutput: yaml\nkeys:\n  secret_key_file: /keys/secret\n  public_key_file: /keys/public\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	CfgFile = path
	require.NoError(t, InitConfig())

	cfg := CurrentConfig()
	assert.Equal(t, "base64", cfg.Encoding)
	assert.Equal(t, OUTPUT_YAML, cfg.Output)
	assert.Equal(t, "/keys/secret", cfg.Keys.SecretKeyFile)
	assert.Equal(t, "/keys/public", cfg.Keys.PublicKeyFile)
}

func TestInitConfigMissingExplicitFile(t *testing.T) {
	resetConfig(t)
	CfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	assert.Error(t, InitConfig())
}

func TestInitConfigRejectsInvalidValues(t *testing.T) {
	resetConfig(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("encoding: rot13\n"), 0o600))

	CfgFile = path
	assert.Error(t, InitConfig())
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	resetConfig(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, InitConfig())

	created := filepath.Join(home, GOMPID_BASE_DIR, "config.yaml")
	_, err := os.Stat(created)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *CurrentConfig())
}
