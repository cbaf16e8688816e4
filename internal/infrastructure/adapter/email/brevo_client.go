package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/domain/port/external"
	"github.com/vyronamart/group-ledger/internal/infrastructure/config"
)

const sendPath = "/v3/smtp/email"

type contact struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      contact   `json:"sender"`
	To          []contact `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
}

// BrevoClient implements external.EmailSender against the Brevo transactional email API
type BrevoClient struct {
	baseURL string
	apiKey  string
	sender  contact
	client  *http.Client
	logger  coreport.Logger
}

// NewBrevoClient creates a client from the email config section
func NewBrevoClient(cfg config.EmailConfig, logger coreport.Logger) *BrevoClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BrevoClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		sender:  contact{Email: cfg.SenderEmail, Name: cfg.SenderName},
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Send posts one HTML email. Any 2xx response counts as accepted; other
// statuses return Success=false together with an error carrying the body.
func (c *BrevoClient) Send(ctx context.Context, to, subject, html string) (external.SendResult, error) {
	payload, err := json.Marshal(sendRequest{
		Sender:      c.sender,
		To:          []contact{{Email: to}},
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		return external.SendResult{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return external.SendResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return external.SendResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return external.SendResult{}, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed sendResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil {
			c.logger.Debug("Unparseable email provider response", map[string]any{
				"status": resp.StatusCode,
				"error":  err.Error(),
			})
		}
	}

	c.logger.Debug("Email accepted by provider", map[string]any{
		"message_id": parsed.MessageID,
		"latency_ms": time.Since(start).Milliseconds(),
	})
	return external.SendResult{Success: true, MessageID: parsed.MessageID}, nil
}
