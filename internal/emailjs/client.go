// Package emailjs sends template emails through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "https://api.emailjs.com"
	DefaultTimeout = 15 * time.Second

	sendPath = "/api/v1.0/email/send"
)

// ErrMissingPublicKey is returned by New when no account key is configured.
var ErrMissingPublicKey = errors.New("emailjs: public key is required")

// APIError is a non-2xx answer from EmailJS. Message is the response body,
// which EmailJS sends as plain text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("emailjs: status %d", e.StatusCode)
	}
	return fmt.Sprintf("emailjs: status %d: %s", e.StatusCode, e.Message)
}

type Config struct {
	PublicKey  string
	PrivateKey string
	BaseURL    string
	Timeout    time.Duration
}

// Client is safe for concurrent use.
type Client struct {
	publicKey  string
	privateKey string
	endpoint   string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the instrumented default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.PublicKey) == "" {
		return nil, ErrMissingPublicKey
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		endpoint:   baseURL + sendPath,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// Send delivers one templated email. It makes a single attempt.
func (c *Client) Send(ctx context.Context, serviceID, templateID string, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
		AccessToken:    c.privateKey,
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(msg)),
	}
}
