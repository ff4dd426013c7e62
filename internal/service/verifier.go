//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"
)

// BotVerifier checks a client-supplied challenge token against an external
// verification endpoint. A nil error means the token passed.
type BotVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type turnstileVerifier struct {
	endpoint string
	secret   string
	client   *nethttp.Client
}

// NewTurnstileVerifier creates a verifier against Cloudflare Turnstile's
// siteverify endpoint (or a compatible one).
func NewTurnstileVerifier(endpoint, secret string, timeout time.Duration) BotVerifier {
	return &turnstileVerifier{
		endpoint: endpoint,
		secret:   secret,
		client:   &nethttp.Client{Timeout: timeout},
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *turnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	if remoteIP != "" && remoteIP != "unknown" {
		form.Set("remoteip", remoteIP)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("siteverify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode siteverify response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("token rejected: %s", strings.Join(result.ErrorCodes, ","))
	}
	return nil
}
