// Package aggregator publishes the classified deadlines to the dashboard
// that visualises them.
package aggregator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/ports"
)

const maxErrorBody = 1 << 10

// Deadline is one element of the PUT body.
type Deadline struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	Course   string `json:"course"`
}

type Client struct {
	URL        string
	Token      string
	HTTPClient *http.Client
}

var _ ports.Aggregator = (*Client)(nil)

func NewClient(url, token string, timeout time.Duration) *Client {
	return &Client{URL: url, Token: token, HTTPClient: &http.Client{Timeout: timeout}}
}

func Deadlines(records []domain.Record) []Deadline {
	out := make([]Deadline, 0, len(records))
	for _, record := range records {
		out = append(out, Deadline{
			Title:    record.Title,
			Deadline: record.DeadlineISO(),
			Course:   record.Course,
		})
	}
	return out
}

// PutDeadlines replaces the aggregator's view with records.
func (c *Client) PutDeadlines(ctx context.Context, records []domain.Record) error {
	data, err := json.Marshal(Deadlines(records))
	if err != nil {
		return fmt.Errorf("encode deadlines: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.URL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create aggregator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("put deadlines: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.DeliveryError{Target: "aggregator", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return nil
}
