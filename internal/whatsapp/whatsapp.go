// Package whatsapp builds wa.me deep links and talks to the Meta Cloud
// API for server-side message delivery.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/logger"
)

// BuildDeepLink returns a wa.me link that opens a chat with the phone
// number and the message prefilled. The number keeps digits only, per
// the wa.me format.
func BuildDeepLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}

// Client sends messages through the WhatsApp Cloud API. A disabled
// client turns Send into a no-op so callers can always hold one.
type Client struct {
	cfg        config.WhatsAppCloudAPIConfig
	httpClient *http.Client
}

// NewClient creates a Cloud API client.
func NewClient(cfg config.WhatsAppCloudAPIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether server-side sends are configured.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.Enabled && c.cfg.PhoneNumberID != "" && c.cfg.AccessToken != ""
}

type textMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	Body string `json:"body"`
}

// SendText delivers a plain-text message to a phone number.
func (c *Client) SendText(ctx context.Context, phone, body string) error {
	if !c.Enabled() {
		logger.Debugw("whatsapp_cloud_api_disabled_skip_send", "phone", phone)
		return nil
	}

	payload, err := json.Marshal(textMessage{
		MessagingProduct: "whatsapp",
		To:               strings.TrimPrefix(phone, "+"),
		Type:             "text",
		Text:             textPayload{Body: body},
	})
	if err != nil {
		return err
	}

	baseURL := strings.TrimRight(c.cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://graph.facebook.com/v18.0"
	}
	endpoint := fmt.Sprintf("%s/%s/messages", baseURL, c.cfg.PhoneNumberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warnw("whatsapp_cloud_api_send_failed",
			"status", resp.StatusCode,
			"phone", phone,
			"body", string(detail),
		)
		return fmt.Errorf("whatsapp cloud api send failed: status %d", resp.StatusCode)
	}
	return nil
}
