package shibboleth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/ports"
	"github.com/rs/zerolog"
)

const (
	StepLanding   = "landing"
	StepStorage   = "local-storage"
	StepLogin     = "login"
	StepAssertion = "assertion"
	StepConsumer  = "consumer"
)

const (
	SessionCookiePrefix = "_shibsession_"
	DefaultUserAgent    = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/116.0"

	landingPath  = "/ct/home"
	consumerPath = "/Shibboleth.sso/SAML2/POST"
	maxPageBytes = 4 << 20
)

type Config struct {
	PortalURL string
	IdPURL    string
	Username  string
	Password  string
	// PasswordRef names a secret to read when Password is empty.
	PasswordRef string
	UserAgent   string
	// Timeout applies per request. Zero keeps the transport default.
	Timeout time.Duration
}

type Client struct {
	cfg       Config
	transport http.RoundTripper
	secrets   ports.SecretSource
	logger    zerolog.Logger
}

var _ ports.Authenticator = (*Client)(nil)

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Client{cfg: cfg, logger: logger}
}

// WithTransport swaps the round tripper used for every handshake request.
func (c *Client) WithTransport(rt http.RoundTripper) *Client {
	c.transport = rt
	return c
}

// WithSecretSource sets where PasswordRef is resolved.
func (c *Client) WithSecretSource(src ports.SecretSource) *Client {
	c.secrets = src
	return c
}

// Authenticate replays the IdP's execution wizard from an empty cookie jar and
// returns the service session cookie. No step is retried.
func (c *Client) Authenticate(ctx context.Context) (domain.SessionCredential, error) {
	portalURL, err := parseBaseURL(c.cfg.PortalURL)
	if err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepLanding, Reason: "invalid portal url", Err: err}
	}
	if _, err := parseBaseURL(c.cfg.IdPURL); err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepStorage, Reason: "invalid identity provider url", Err: err}
	}

	password, err := c.password(ctx)
	if err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepLogin, Reason: "resolve password", Err: err}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return domain.SessionCredential{}, fmt.Errorf("create cookie jar: %w", err)
	}
	client := &http.Client{Jar: jar, Timeout: c.cfg.Timeout, Transport: c.transport}

	if _, _, err := c.do(ctx, client, http.MethodGet, joinPath(c.cfg.PortalURL, landingPath), nil); err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepLanding, Reason: "request landing page", Err: err}
	}
	c.logger.Debug().Str("step", StepLanding).Msg("handshake step complete")

	if err := c.postExecution(ctx, client, StepStorage, "e1s1", storageProbeForm()); err != nil {
		return domain.SessionCredential{}, err
	}

	loginForm := url.Values{}
	loginForm.Set("j_username", c.cfg.Username)
	loginForm.Set("j_password", password)
	loginForm.Set("_eventId_proceed", "")
	if err := c.postExecution(ctx, client, StepLogin, "e1s2", loginForm); err != nil {
		return domain.SessionCredential{}, err
	}

	endpoint, err := executionURL(c.cfg.IdPURL, "e1s3")
	if err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepAssertion, Reason: "build execution url", Err: err}
	}
	status, page, err := c.do(ctx, client, http.MethodPost, endpoint, sessionProbeForm())
	if err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepAssertion, Reason: "request assertion page", Err: err}
	}
	assertion, err := ExtractAssertion(page)
	if err != nil {
		// A rejected password lands here too: the IdP answers 200 with its
		// login form again, which carries no hidden values.
		return domain.SessionCredential{}, &domain.AuthError{
			Step:   StepAssertion,
			Reason: fmt.Sprintf("assertion page (status %d) did not carry the expected hidden values", status),
			Err:    err,
		}
	}
	c.logger.Debug().
		Str("step", StepAssertion).
		Int("status", status).
		Int("hidden_values", assertion.Matched).
		Msg("handshake step complete")

	consumerForm := url.Values{}
	consumerForm.Set("RelayState", assertion.RelayState)
	consumerForm.Set("SAMLResponse", assertion.SAMLResponse)
	if _, _, err := c.do(ctx, client, http.MethodPost, joinPath(c.cfg.PortalURL, consumerPath), consumerForm); err != nil {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepConsumer, Reason: "post assertion to service", Err: err}
	}

	cred, ok := sessionCookie(jar, portalURL)
	if !ok {
		return domain.SessionCredential{}, &domain.AuthError{Step: StepConsumer, Reason: "missing service session cookie"}
	}
	c.logger.Debug().Str("step", StepConsumer).Str("cookie", cred.Name).Msg("handshake complete")

	return cred, nil
}

func (c *Client) password(ctx context.Context) (string, error) {
	if c.cfg.Password != "" || c.cfg.PasswordRef == "" {
		return c.cfg.Password, nil
	}
	if c.secrets == nil {
		return "", errors.New("no secret source for password reference")
	}
	return c.secrets.Get(ctx, c.cfg.PasswordRef)
}

func (c *Client) postExecution(ctx context.Context, client *http.Client, step, execution string, form url.Values) error {
	endpoint, err := executionURL(c.cfg.IdPURL, execution)
	if err != nil {
		return &domain.AuthError{Step: step, Reason: "build execution url", Err: err}
	}

	status, _, err := c.do(ctx, client, http.MethodPost, endpoint, form)
	if err != nil {
		return &domain.AuthError{Step: step, Reason: "post execution " + execution, Err: err}
	}
	c.logger.Debug().Str("step", step).Int("status", status).Msg("handshake step complete")

	return nil
}

// do sends one request and returns the status and body. Status codes are not
// judged here; the IdP signals failure through page shape only.
func (c *Client) do(ctx context.Context, client *http.Client, method, endpoint string, form url.Values) (int, string, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, string(data), nil
}

func storageProbeForm() url.Values {
	values := url.Values{}
	values.Set("shib_idp_ls_exception.shib_idp_session_ss", "")
	values.Set("shib_idp_ls_success.shib_idp_session_ss", "true")
	values.Set("shib_idp_ls_value.shib_idp_session_ss", "")
	values.Set("shib_idp_ls_exception.shib_idp_persistent_ss", "")
	values.Set("shib_idp_ls_success.shib_idp_persistent_ss", "true")
	values.Set("shib_idp_ls_value.shib_idp_persistent_ss", "")
	values.Set("shib_idp_ls_supported", "true")
	values.Set("_eventId_proceed", "")
	return values
}

func sessionProbeForm() url.Values {
	values := url.Values{}
	values.Set("shib_idp_ls_exception.shib_idp_session_ss", "")
	values.Set("shib_idp_ls_success.shib_idp_session_ss", "true")
	values.Set("_eventId_proceed", "")
	return values
}

// sessionCookie finds the service session cookie among those the jar would
// send to portalURL. A cookie scoped to a path outside the portal base path
// is not seen; the service issues its session cookie with Path=/.
func sessionCookie(jar http.CookieJar, portalURL *url.URL) (domain.SessionCredential, bool) {
	for _, cookie := range jar.Cookies(portalURL) {
		if strings.HasPrefix(cookie.Name, SessionCookiePrefix) {
			return domain.SessionCredential{Name: cookie.Name, Value: cookie.Value}, true
		}
	}

	return domain.SessionCredential{}, false
}

func executionURL(idpURL, execution string) (string, error) {
	parsed, err := parseBaseURL(idpURL)
	if err != nil {
		return "", err
	}

	q := parsed.Query()
	q.Set("execution", execution)
	parsed.RawQuery = q.Encode()

	return parsed.String(), nil
}

func joinPath(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("base url is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("base url host is required")
	}

	return parsed, nil
}
