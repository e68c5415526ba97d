package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Mailer sends transactional mail. Satisfied by MailgunClient and by
// test doubles.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// MailgunConfig captures the subset of Mailgun behaviour we need.
type MailgunConfig struct {
	Domain  string
	APIKey  string
	From    string
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// MailgunClient delivers mail through the Mailgun messages API.
type MailgunClient struct {
	domain  string
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

// NewMailgunClient builds a mail client. Callers should pass a validated
// config.
func NewMailgunClient(cfg MailgunConfig) (*MailgunClient, error) {
	domain := strings.TrimSpace(cfg.Domain)
	if domain == "" {
		return nil, errors.New("mailgun domain is required")
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("mailgun api key is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.mailgun.net"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &MailgunClient{
		domain:  domain,
		apiKey:  apiKey,
		from:    strings.TrimSpace(cfg.From),
		baseURL: baseURL,
		client:  hc,
	}, nil
}

// Send posts one message. Delivery is best effort; callers decide whether
// the outcome matters.
func (c *MailgunClient) Send(ctx context.Context, to, subject, html string) error {
	form := url.Values{}
	form.Set("from", c.from)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("html", html)

	endpoint := fmt.Sprintf("%s/v3/%s/messages", c.baseURL, c.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.SetBasicAuth("api", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mail gateway returned status %d", resp.StatusCode)
	}
	return nil
}
