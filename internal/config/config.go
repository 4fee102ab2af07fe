package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/bnema/mana-kadai/internal/adapters/shibboleth"
	"github.com/bnema/mana-kadai/internal/logging"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	appDir     = "mana-kadai"
	configName = "config.toml"
	configType = "toml"

	// ConfigPathEnv overrides the config file location.
	ConfigPathEnv = "KADAI_CONFIG"

	DefaultStatePath = "/opt/mana-kadai/manada.stat"

	keyWebhookURL      = "webhook_url"
	keyAggregatorURL   = "aggregator.url"
	keyAggregatorToken = "aggregator.token"
	keyPortalURL       = "portal.url"
	keyPortalUsername  = "portal.username"
	keyPortalPassword  = "portal.password"
	keyPasswordPass    = "portal.password_pass"
	keyIdPURL          = "idp_url"
	keyStatePath       = "state_path"
	keyLogLevel        = "log.level"
	keyLogPretty       = "log.pretty"
	keyUserAgent       = "user_agent"
	keyHTTPTimeout     = "http_timeout"

	redactedMark = "********"
)

var ErrMissingRequired = errors.New("missing required configuration")

type binding struct {
	key      string
	env      string
	required bool
}

var bindings = []binding{
	{key: keyWebhookURL, env: "DISCORD_WEBHOOK_URL", required: true},
	{key: keyAggregatorToken, env: "VISUALIZER_TOKEN", required: true},
	{key: keyAggregatorURL, env: "VISUALIZER_URL", required: true},
	{key: keyPortalUsername, env: "MANADA_USER", required: true},
	{key: keyPortalPassword, env: "MANADA_PWD", required: true},
	{key: keyIdPURL, env: "AUTH_URL", required: true},
	{key: keyPortalURL, env: "MANADA_URL", required: true},
	{key: keyPasswordPass, env: "KADAI_PASSWORD_PASS"},
	{key: keyStatePath, env: "KADAI_STATE_PATH"},
	{key: keyLogLevel, env: "KADAI_LOG_LEVEL"},
	{key: keyLogPretty, env: "KADAI_LOG_PRETTY"},
	{key: keyUserAgent, env: "KADAI_USER_AGENT"},
	{key: keyHTTPTimeout, env: "KADAI_HTTP_TIMEOUT"},
}

// Options controls where Load looks for its sources. Zero values select the
// working-directory .env and the XDG config directory.
type Options struct {
	DotEnvPath string
	SkipDotEnv bool
	ConfigPath string
	ConfigDir  string
}

// Config is the validated process configuration. It is read-only after Load.
type Config struct {
	webhookURL      string
	aggregatorURL   string
	aggregatorToken string
	portalURL       string
	portalUsername  string
	portalPassword  string
	passwordPass    string
	idpURL          string
	statePath       string
	logLevel        string
	logPretty       bool
	userAgent       string
	httpTimeout     time.Duration
	source          string
}

func Load(v *viper.Viper, opts Options) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	if !opts.SkipDotEnv {
		if err := loadDotEnv(opts.DotEnvPath); err != nil {
			return Config{}, err
		}
	}

	v.SetDefault(keyStatePath, DefaultStatePath)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogPretty, false)
	v.SetDefault(keyUserAgent, shibboleth.DefaultUserAgent)
	v.SetDefault(keyHTTPTimeout, "0s")

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", b.env, err)
		}
	}

	source, err := readConfigFile(v, opts)
	if err != nil {
		return Config{}, err
	}

	passwordPass := strings.TrimSpace(v.GetString(keyPasswordPass))

	var missing []string
	for _, b := range bindings {
		if b.key == keyPortalPassword && passwordPass != "" {
			continue
		}
		if b.required && strings.TrimSpace(v.GetString(b.key)) == "" {
			missing = append(missing, fmt.Sprintf("%s (%s)", b.key, b.env))
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	cfg := Config{
		webhookURL:      strings.TrimSpace(v.GetString(keyWebhookURL)),
		aggregatorURL:   strings.TrimSpace(v.GetString(keyAggregatorURL)),
		aggregatorToken: v.GetString(keyAggregatorToken),
		portalURL:       strings.TrimRight(strings.TrimSpace(v.GetString(keyPortalURL)), "/"),
		portalUsername:  v.GetString(keyPortalUsername),
		portalPassword:  v.GetString(keyPortalPassword),
		passwordPass:    passwordPass,
		idpURL:          strings.TrimSpace(v.GetString(keyIdPURL)),
		logLevel:        strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
		logPretty:       v.GetBool(keyLogPretty),
		userAgent:       v.GetString(keyUserAgent),
		source:          source,
	}

	if err := cfg.validateURLs(); err != nil {
		return Config{}, err
	}

	if _, err := logging.ParseLevel(cfg.logLevel); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}

	timeout, err := time.ParseDuration(strings.TrimSpace(v.GetString(keyHTTPTimeout)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", keyHTTPTimeout, err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("invalid %s: must not be negative", keyHTTPTimeout)
	}
	cfg.httpTimeout = timeout

	statePath := strings.TrimSpace(v.GetString(keyStatePath))
	if statePath == "" {
		return Config{}, fmt.Errorf("%s is empty", keyStatePath)
	}
	if cfg.statePath, err = filepath.Abs(statePath); err != nil {
		return Config{}, fmt.Errorf("resolve state path: %w", err)
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}

	return nil
}

// readConfigFile returns the path it read, or "" when no file was used. An
// explicitly requested file must exist; the XDG default is optional.
func readConfigFile(v *viper.Viper, opts Options) (string, error) {
	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}

	explicit := path != ""
	if !explicit {
		dir := opts.ConfigDir
		if dir == "" {
			dir = xdg.ConfigHome
		}
		path = filepath.Join(dir, appDir, configName)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", nil
			}
			return "", fmt.Errorf("stat config file: %w", err)
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType(configType)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read config file %s: %w", path, err)
	}

	return path, nil
}

func (c Config) validateURLs() error {
	checks := []struct {
		key   string
		value string
	}{
		{key: keyWebhookURL, value: c.webhookURL},
		{key: keyAggregatorURL, value: c.aggregatorURL},
		{key: keyPortalURL, value: c.portalURL},
		{key: keyIdPURL, value: c.idpURL},
	}

	for _, check := range checks {
		parsed, err := url.Parse(check.value)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", check.key, err)
		}
		if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("invalid %s: %q is not an absolute http(s) URL", check.key, check.value)
		}
	}

	return nil
}

func (c Config) WebhookURL() string      { return c.webhookURL }
func (c Config) AggregatorURL() string   { return c.aggregatorURL }
func (c Config) AggregatorToken() string { return c.aggregatorToken }
func (c Config) PortalURL() string       { return c.portalURL }
func (c Config) PortalUsername() string  { return c.portalUsername }
func (c Config) PortalPassword() string  { return c.portalPassword }
// PasswordPass names the pass entry holding the portal password. It is only
// consulted when no password is configured directly.
func (c Config) PasswordPass() string { return c.passwordPass }

func (c Config) IdPURL() string             { return c.idpURL }
func (c Config) StatePath() string          { return c.statePath }
func (c Config) LogLevel() string           { return c.logLevel }
func (c Config) LogPretty() bool            { return c.logPretty }
func (c Config) UserAgent() string          { return c.userAgent }
func (c Config) HTTPTimeout() time.Duration { return c.httpTimeout }

// Source is the config file that was read, or "" when only env was used.
func (c Config) Source() string { return c.source }

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	out := c
	if out.portalPassword != "" {
		out.portalPassword = redactedMark
	}
	if out.aggregatorToken != "" {
		out.aggregatorToken = redactedMark
	}
	out.webhookURL = redactURLPath(out.webhookURL)
	return out
}

func redactURLPath(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return redactedMark
	}
	if parsed.Path != "" && parsed.Path != "/" {
		parsed.Path = "/" + redactedMark
	}
	parsed.RawPath = ""
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}

type fileSchema struct {
	WebhookURL  string           `toml:"webhook_url"`
	IdPURL      string           `toml:"idp_url"`
	StatePath   string           `toml:"state_path"`
	UserAgent   string           `toml:"user_agent"`
	HTTPTimeout string           `toml:"http_timeout"`
	Portal      portalSchema     `toml:"portal"`
	Aggregator  aggregatorSchema `toml:"aggregator"`
	Log         logSchema        `toml:"log"`
}

type portalSchema struct {
	URL          string `toml:"url"`
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	PasswordPass string `toml:"password_pass,omitempty"`
}

type aggregatorSchema struct {
	URL   string `toml:"url"`
	Token string `toml:"token"`
}

type logSchema struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// TOML renders the redacted configuration in config file layout.
func (c Config) TOML() (string, error) {
	r := c.Redacted()
	data, err := toml.Marshal(fileSchema{
		WebhookURL:  r.webhookURL,
		IdPURL:      r.idpURL,
		StatePath:   r.statePath,
		UserAgent:   r.userAgent,
		HTTPTimeout: r.httpTimeout.String(),
		Portal: portalSchema{
			URL:          r.portalURL,
			Username:     r.portalUsername,
			Password:     r.portalPassword,
			PasswordPass: r.passwordPass,
		},
		Aggregator: aggregatorSchema{
			URL:   r.aggregatorURL,
			Token: r.aggregatorToken,
		},
		Log: logSchema{
			Level:  r.logLevel,
			Pretty: r.logPretty,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}

	return string(data), nil
}
