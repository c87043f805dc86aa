package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func useConfigFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	previous := configFile
	configFile = path
	t.Cleanup(func() { configFile = previous })
	t.Setenv("RELAY_URL", "")
	t.Setenv("RELAY_TOKEN", "")
	return path
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	req := require.New(t)
	useConfigFile(t)

	cfg, err := loadConfig()

	req.NoError(err)
	req.Equal(defaultBaseURL, cfg.Relay.BaseURL)
	req.Empty(cfg.Relay.Token)
}

func TestSaveConfig_RoundTripsThroughToml(t *testing.T) {
	req := require.New(t)
	path := useConfigFile(t)

	// Given values set with dot notation
	cfg, err := loadConfig()
	req.NoError(err)
	req.NoError(setConfigValue(cfg, "relay.base_url", "http://relay.local:9000/"))
	req.NoError(setConfigValue(cfg, "relay.token", "secret"))
	req.NoError(setConfigValue(cfg, "delivery.max_attempts", "3"))

	// When the file is written and read back
	req.NoError(saveConfig(cfg))
	loaded, err := loadConfig()

	// Then every value survives and the file is private
	req.NoError(err)
	req.Equal("http://relay.local:9000", loaded.Relay.BaseURL)
	req.Equal("secret", loaded.Relay.Token)
	req.Equal(3, loaded.Delivery.MaxAttempts)
	info, err := os.Stat(path)
	req.NoError(err)
	req.Equal(os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	req := require.New(t)
	useConfigFile(t)
	req.NoError(saveConfig(&Config{Relay: RelayConfig{BaseURL: "http://file", Token: "from-file"}}))

	t.Setenv("RELAY_TOKEN", "from-env")
	cfg, err := loadConfig()

	req.NoError(err)
	req.Equal("http://file", cfg.Relay.BaseURL)
	req.Equal("from-env", cfg.Relay.Token)
}

func TestLoadConfig_RejectsBrokenToml(t *testing.T) {
	req := require.New(t)
	path := useConfigFile(t)
	req.NoError(os.MkdirAll(filepath.Dir(path), 0o700))
	req.NoError(os.WriteFile(path, []byte("[relay\nbase_url = "), 0o600))

	_, err := loadConfig()

	req.ErrorContains(err, "cannot parse config")
}

func TestSetConfigValue_RejectsUnknownKeys(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"token", "x"},
		{"relay.password", "x"},
		{"delivery.page_size", "many"},
		{"delivery.page_size", "-1"},
		{"server.port", "80"},
	}
	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			require.Error(t, setConfigValue(&Config{}, c.key, c.value))
		})
	}
}

func TestDeliveryConfig_RequiresToken(t *testing.T) {
	req := require.New(t)

	_, err := (&Config{Relay: RelayConfig{BaseURL: defaultBaseURL}}).deliveryConfig()
	req.ErrorContains(err, "no token configured")

	dc, err := (&Config{
		Relay:    RelayConfig{BaseURL: defaultBaseURL, Token: "t"},
		Delivery: DeliveryConfig{PageSize: 20},
	}).deliveryConfig()
	req.NoError(err)
	req.True(dc.AutoReconnect)
	req.Equal(20, dc.DrainPageSize)
}
