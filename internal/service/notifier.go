//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"waitlist/backend/internal/model"
)

// Notifier delivers human-facing notifications about signups. Delivery is
// best-effort everywhere it is used: callers swallow and log errors.
type Notifier interface {
	NotifySignup(ctx context.Context, rec model.SignupRecord) error
	NotifyError(ctx context.Context, stage string, cause error) error
}

const (
	colorGreen = 0x57F287
	colorRed   = 0xED4245
)

type webhookEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []webhookEmbedField `json:"fields,omitempty"`
	Timestamp string              `json:"timestamp"`
}

type webhookEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type webhookPayload struct {
	Embeds []webhookEmbed `json:"embeds"`
}

type webhookNotifier struct {
	url     string
	client  *nethttp.Client
	limiter *rate.Limiter
}

// NewWebhookNotifier posts Discord-compatible embed payloads to url.
// Outbound posts are throttled because webhook endpoints enforce their own
// rate limits; a burst of signups must not get the webhook banned.
func NewWebhookNotifier(url string, timeout time.Duration) Notifier {
	return &webhookNotifier{
		url:     url,
		client:  &nethttp.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
	}
}

func (n *webhookNotifier) NotifySignup(ctx context.Context, rec model.SignupRecord) error {
	fields := []webhookEmbedField{
		{Name: "Email", Value: rec.Email, Inline: true},
		{Name: "Tab", Value: rec.Tab, Inline: true},
	}
	if rec.Name != "" {
		fields = append(fields, webhookEmbedField{Name: "Name", Value: rec.Name, Inline: true})
	}
	if rec.Source != "" {
		fields = append(fields, webhookEmbedField{Name: "Source", Value: rec.Source, Inline: true})
	}
	if len(rec.Tags) > 0 {
		fields = append(fields, webhookEmbedField{Name: "Tags", Value: strings.Join(rec.Tags, ", ")})
	}

	return n.post(ctx, webhookPayload{Embeds: []webhookEmbed{{
		Title:     "New signup",
		Color:     colorGreen,
		Fields:    fields,
		Timestamp: rec.CreatedAt.UTC().Format(time.RFC3339),
	}}})
}

func (n *webhookNotifier) NotifyError(ctx context.Context, stage string, cause error) error {
	return n.post(ctx, webhookPayload{Embeds: []webhookEmbed{{
		Title: "Signup pipeline failure",
		Color: colorRed,
		Fields: []webhookEmbedField{
			{Name: "Stage", Value: stage, Inline: true},
			{Name: "Error", Value: cause.Error()},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}}})
}

func (n *webhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("webhook throttle: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// nopNotifier is wired when no webhook URL is configured.
type nopNotifier struct{}

func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) NotifySignup(context.Context, model.SignupRecord) error { return nil }
func (nopNotifier) NotifyError(context.Context, string, error) error       { return nil }
