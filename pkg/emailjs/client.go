// Package emailjs provides a lightweight EmailJS REST API client for the
// homestay backend. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
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
)

const sendEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// ErrNotConfigured is returned when the EmailJS credentials are missing or
// still set to placeholder values.
var ErrNotConfigured = errors.New("emailjs: not configured")

// ErrorKind classifies a dispatch failure for operator-facing messaging.
type ErrorKind int

const (
	// KindGeneric covers network errors and unrecognized provider responses.
	KindGeneric ErrorKind = iota
	// KindTemplate means the provider rejected the template parameters.
	KindTemplate
	// KindConfig means the service/template/key configuration is invalid.
	KindConfig
)

// APIError is a structured dispatch failure carrying the provider's HTTP
// status and response text.
type APIError struct {
	Status int
	Text   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("emailjs: status %d: %s", e.Status, e.Text)
}

// Kind maps the provider status code to an ErrorKind.
// 400/422 indicate bad template parameters; 401/403/404 indicate bad
// service configuration; everything else is generic.
func (e *APIError) Kind() ErrorKind {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindTemplate
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return KindConfig
	default:
		return KindGeneric
	}
}

// Message is one templated email handed to EmailJS for delivery.
// TemplateParams carries the rendered subject/body plus the original
// submission context for provider-side templating.
type Message struct {
	ToEmail string
	Subject string
	Body    string
	// Original submission context.
	FromName     string
	ReplyTo      string
	OriginalDate string
	OriginalText string
}

// Client is the dispatch interface consumed by the reply workflow.
type Client interface {
	// Send dispatches one message. A nil error means the provider accepted
	// the message for delivery.
	Send(ctx context.Context, msg Message) error
	// Configured reports whether real (non-placeholder) credentials are set.
	Configured() bool
}

// Config carries the EmailJS account credentials.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string // EmailJS "user_id"
	PrivateKey string // optional accessToken for server-side sends
}

// RealClient is the raw HTTP client implementation.
type RealClient struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a RealClient with the given credentials.
func NewClient(cfg Config) *RealClient {
	return &RealClient{
		cfg:        cfg,
		baseURL:    sendEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ Client = (*RealClient)(nil)

// Configured reports whether all required credentials are present and not
// left at the placeholder values from .env.example.
func (c *RealClient) Configured() bool {
	for _, v := range []string{c.cfg.ServiceID, c.cfg.TemplateID, c.cfg.PublicKey} {
		if v == "" || strings.HasPrefix(v, "your_") || strings.HasPrefix(v, "YOUR_") {
			return false
		}
	}
	return true
}

// Send posts the message to the EmailJS send endpoint.
func (c *RealClient) Send(ctx context.Context, msg Message) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body := map[string]any{
		"service_id":  c.cfg.ServiceID,
		"template_id": c.cfg.TemplateID,
		"user_id":     c.cfg.PublicKey,
		"template_params": map[string]string{
			"to_email":         msg.ToEmail,
			"subject":          msg.Subject,
			"message":          msg.Body,
			"from_name":        msg.FromName,
			"reply_to":         msg.ReplyTo,
			"original_date":    msg.OriginalDate,
			"original_message": msg.OriginalText,
		},
	}
	if c.cfg.PrivateKey != "" {
		body["accessToken"] = c.cfg.PrivateKey
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// EmailJS returns a plain-text error body, not JSON.
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Text: strings.TrimSpace(string(text))}
	}
	return nil
}
