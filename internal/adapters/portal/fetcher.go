package portal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/ports"
)

const (
	listingPath     = "/ct/home_library_query"
	maxListingBytes = 8 << 20
)

type Fetcher struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

var _ ports.ListingSource = (*Fetcher)(nil)

func NewFetcher(baseURL, userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchListing spends the session credential on a single listing request.
func (f *Fetcher) FetchListing(ctx context.Context, cred domain.SessionCredential) (string, error) {
	endpoint := strings.TrimRight(f.BaseURL, "/") + listingPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create listing request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.AddCookie(cred.Cookie())

	resp, err := f.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("request listing: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return "", fmt.Errorf("read listing: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("request listing: %w: status %d", domain.ErrPortalStatus, resp.StatusCode)
	}

	return string(body), nil
}

func (f *Fetcher) httpClient() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return http.DefaultClient
}
