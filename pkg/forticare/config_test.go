package forticare

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fullConfig = `[forticare]
url          = https://support.example.com/ES/api/registration/v3/
client_id    = assetmanagement
api_id       = api-user-1
api_password = hunter2

[customerauth]
url = https://auth.example.com/api/v1/oauth/
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".forticare")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, fullConfig)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://support.example.com/ES/api/registration/v3/", cfg.FortiCareURL)
	require.Equal(t, "assetmanagement", cfg.ClientID)
	require.Equal(t, "api-user-1", cfg.APIID)
	require.Equal(t, "hunter2", cfg.APIPassword)
	require.Equal(t, "https://auth.example.com/api/v1/oauth/", cfg.CustomerAuthURL)
}

func TestLoadConfigMissingAPIID(t *testing.T) {
	path := writeConfig(t, `[forticare]
url          = https://support.example.com/
client_id    = assetmanagement
api_password = hunter2

[customerauth]
url = https://auth.example.com/
`)

	cfg, err := LoadConfig(path)
	require.Nil(t, cfg)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "api_id", cfgErr.Key)
	require.Equal(t, "forticare", cfgErr.Section)
	require.Equal(t, path, cfgErr.File)
	require.Contains(t, err.Error(), "api_id")
	require.Contains(t, err.Error(), path)
}

func TestLoadConfigMissingAuthSection(t *testing.T) {
	path := writeConfig(t, `[forticare]
url          = https://support.example.com/
client_id    = assetmanagement
api_id       = api-user-1
api_password = hunter2
`)

	_, err := LoadConfig(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "customerauth", cfgErr.Section)
	require.Equal(t, "url", cfgErr.Key)
}

func TestLoadConfigUnreadableFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.False(t, errors.As(err, &cfgErr))
}
