package discord

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

const (
	ColorUrgent   = 0xFF0000
	ColorSoon     = 0xF58216
	ColorUpcoming = 0x86DC3D
	ColorNoTask   = 0x33C7FF

	noTaskTitle = "直近の課題なし"

	fieldCourse    = "コース"
	fieldDue       = "締切"
	fieldRemaining = "残り時間"

	// The webhook rejects content longer than 2000 characters.
	maxContentRunes = 2000
	maxErrorBody    = 1 << 10
)

type Embed struct {
	Title  string  `json:"title"`
	URL    string  `json:"url,omitempty"`
	Color  int     `json:"color"`
	Fields []Field `json:"fields,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedMessage struct {
	Embeds []Embed `json:"embeds"`
}

type contentMessage struct {
	Content string `json:"content"`
}

type Webhook struct {
	URL        string
	HTTPClient *http.Client
}

var _ ports.Notifier = (*Webhook)(nil)

func NewWebhook(url string, timeout time.Duration) *Webhook {
	return &Webhook{URL: url, HTTPClient: &http.Client{Timeout: timeout}}
}

func TierColor(tier domain.Tier) int {
	switch tier {
	case domain.TierUrgent:
		return ColorUrgent
	case domain.TierSoon:
		return ColorSoon
	case domain.TierUpcoming:
		return ColorUpcoming
	default:
		return 0
	}
}

func RecordEmbed(record domain.Record) Embed {
	return Embed{
		Title: record.Title,
		URL:   record.URL,
		Color: TierColor(record.Tier),
		Fields: []Field{
			{Name: fieldCourse, Value: record.Course, Inline: false},
			{Name: fieldDue, Value: record.Due.In(domain.PortalZone).Format(domain.DueLayout), Inline: true},
			{Name: fieldRemaining, Value: record.RemainingText(), Inline: true},
		},
	}
}

func NoAssignmentsEmbed() Embed {
	return Embed{Title: noTaskTitle, Color: ColorNoTask}
}

func (w *Webhook) SendRecord(ctx context.Context, record domain.Record) error {
	return w.post(ctx, embedMessage{Embeds: []Embed{RecordEmbed(record)}})
}

func (w *Webhook) SendNoAssignments(ctx context.Context) error {
	return w.post(ctx, embedMessage{Embeds: []Embed{NoAssignmentsEmbed()}})
}

// SendError posts the failure as a plain code-block message.
func (w *Webhook) SendError(ctx context.Context, message string) error {
	return w.post(ctx, contentMessage{Content: codeBlock(message)})
}

func (w *Webhook) post(ctx context.Context, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.DeliveryError{Target: "webhook", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return nil
}

func (w *Webhook) httpClient() *http.Client {
	if w.HTTPClient != nil {
		return w.HTTPClient
	}
	return http.DefaultClient
}

func codeBlock(message string) string {
	const fence = "```"
	limit := maxContentRunes - 2*len(fence)
	runes := []rune(message)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return fence + string(runes) + fence
}
