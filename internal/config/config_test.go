package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/mana-kadai/internal/adapters/shibboleth"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var requiredEnv = map[string]string{
	"DISCORD_WEBHOOK_URL": "https://discord.example.com/api/webhooks/123/abcdef",
	"VISUALIZER_TOKEN":    "viz-token",
	"VISUALIZER_URL":      "https://viz.example.com/api/deadlines",
	"MANADA_USER":         "s1234567",
	"MANADA_PWD":          "hunter2",
	"AUTH_URL":            "https://idp.example.ac.jp/idp/profile/SAML2/Redirect/SSO",
	"MANADA_URL":          "https://manaba.example.ac.jp/",
}

// isolateEnv blanks every bound variable so the host environment cannot leak in.
func isolateEnv(t *testing.T) {
	t.Helper()

	for _, b := range bindings {
		t.Setenv(b.env, "")
	}
	t.Setenv(ConfigPathEnv, "")
}

func setRequiredEnv(t *testing.T) {
	t.Helper()

	isolateEnv(t)
	for key, value := range requiredEnv {
		t.Setenv(key, value)
	}
}

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{SkipDotEnv: true, ConfigDir: t.TempDir()}
}

func TestLoadFromEnvWithDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(viper.New(), testOptions(t))
	require.NoError(t, err)

	assert.Equal(t, "https://discord.example.com/api/webhooks/123/abcdef", cfg.WebhookURL())
	assert.Equal(t, "viz-token", cfg.AggregatorToken())
	assert.Equal(t, "https://viz.example.com/api/deadlines", cfg.AggregatorURL())
	assert.Equal(t, "s1234567", cfg.PortalUsername())
	assert.Equal(t, "hunter2", cfg.PortalPassword())
	assert.Equal(t, "https://idp.example.ac.jp/idp/profile/SAML2/Redirect/SSO", cfg.IdPURL())
	assert.Equal(t, "https://manaba.example.ac.jp", cfg.PortalURL())
	assert.Equal(t, DefaultStatePath, cfg.StatePath())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.False(t, cfg.LogPretty())
	assert.Equal(t, shibboleth.DefaultUserAgent, cfg.UserAgent())
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout())
	assert.Empty(t, cfg.Source())
}

func TestLoadListsEveryMissingKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MANADA_PWD", "")
	t.Setenv("VISUALIZER_URL", "")

	_, err := Load(viper.New(), testOptions(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRequired))
	assert.ErrorContains(t, err, "portal.password (MANADA_PWD)")
	assert.ErrorContains(t, err, "aggregator.url (VISUALIZER_URL)")
	assert.NotContains(t, err.Error(), "MANADA_USER")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		env     string
		value   string
		wantErr string
	}{
		{name: "relative portal url", env: "MANADA_URL", value: "manaba.example.ac.jp", wantErr: "invalid portal.url"},
		{name: "ftp webhook", env: "DISCORD_WEBHOOK_URL", value: "ftp://example.com/hook", wantErr: "invalid webhook_url"},
		{name: "unknown log level", env: "KADAI_LOG_LEVEL", value: "chatty", wantErr: "invalid log.level"},
		{name: "bad timeout", env: "KADAI_HTTP_TIMEOUT", value: "soon", wantErr: "invalid http_timeout"},
		{name: "negative timeout", env: "KADAI_HTTP_TIMEOUT", value: "-5s", wantErr: "must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.env, tc.value)

			_, err := Load(viper.New(), testOptions(t))
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadReadsXDGConfigFileAndEnvWins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MANADA_USER", "")
	t.Setenv("KADAI_LOG_LEVEL", "debug")

	opts := testOptions(t)
	path := filepath.Join(opts.ConfigDir, appDir, configName)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`
state_path = "/var/lib/kadai/flag"
http_timeout = "30s"

[portal]
username = "from-file"

[log]
level = "error"
pretty = true
`), 0o600))

	cfg, err := Load(viper.New(), opts)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source())
	assert.Equal(t, "from-file", cfg.PortalUsername())
	assert.Equal(t, "/var/lib/kadai/flag", cfg.StatePath())
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.True(t, cfg.LogPretty())
}

func TestLoadExplicitConfigMustExist(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "absent.toml"))

	_, err := Load(viper.New(), testOptions(t))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MANADA_USER", "from-env")
	// Unset so only the .env file provides it; t.Setenv restores on cleanup.
	t.Setenv("MANADA_PWD", "")
	require.NoError(t, os.Unsetenv("MANADA_PWD"))

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("MANADA_USER=from-dotenv\nMANADA_PWD=dotenv-secret\n"), 0o600))

	cfg, err := Load(viper.New(), Options{DotEnvPath: dotenv, ConfigDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.PortalUsername())
	assert.Equal(t, "dotenv-secret", cfg.PortalPassword())
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(viper.New(), Options{DotEnvPath: filepath.Join(t.TempDir(), ".env"), ConfigDir: t.TempDir()})
	require.NoError(t, err)
}

func TestRedactedAndTOML(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(viper.New(), testOptions(t))
	require.NoError(t, err)

	redacted := cfg.Redacted()
	assert.Equal(t, redactedMark, redacted.PortalPassword())
	assert.Equal(t, redactedMark, redacted.AggregatorToken())
	assert.Equal(t, "https://discord.example.com/"+redactedMark, redacted.WebhookURL())
	assert.Equal(t, "hunter2", cfg.PortalPassword(), "source config must stay untouched")

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "viz-token")
	assert.NotContains(t, out, "abcdef")

	var decoded fileSchema
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "s1234567", decoded.Portal.Username)
	assert.Equal(t, "https://viz.example.com/api/deadlines", decoded.Aggregator.URL)
	assert.Equal(t, "0s", decoded.HTTPTimeout)
	assert.Equal(t, "info", decoded.Log.Level)
}

func TestLoadAcceptsPassReferenceInsteadOfPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MANADA_PWD", "")
	t.Setenv("KADAI_PASSWORD_PASS", "univ/manaba")

	cfg, err := Load(viper.New(), testOptions(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.PortalPassword())
	assert.Equal(t, "univ/manaba", cfg.PasswordPass())

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "univ/manaba")
}
