// Package slack posts lead notifications to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leadflowhq/vip-signup-api/internal/leads"
	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

const defaultTimeout = 10 * time.Second

// message is the incoming-webhook payload. Slack only needs text.
type message struct {
	Text string `json:"text"`
}

// Client posts lead summaries to a configured webhook URL.
type Client struct {
	webhookURL string
	httpClient *http.Client
	logger     *logging.Logger
	now        func() time.Time
}

// NewClient creates a Slack notifier. An empty webhookURL produces a client
// that no-ops on every call.
func NewClient(webhookURL string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Notify posts a human-readable lead summary to the webhook. It returns true
// only on a 2xx response; every failure is logged here and never propagated.
func (c *Client) Notify(ctx context.Context, lead leads.Lead) bool {
	if c.webhookURL == "" {
		c.logger.Warn("slack: webhook URL not configured, skipping notification")
		return false
	}

	body, err := json.Marshal(message{Text: c.formatMessage(lead)})
	if err != nil {
		c.logger.Error("slack: failed to encode payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("slack: failed to build request", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("slack: webhook request failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("slack: webhook returned error status", "status", resp.StatusCode)
		return false
	}

	c.logger.Info("slack: notification sent", "email", lead.Email)
	return true
}

func (c *Client) formatMessage(lead leads.Lead) string {
	return fmt.Sprintf(`*New VIP Lead Submission*

*Email:* %s
*Monthly Revenue:* %s
*Ad Spend:* %s
*Website:* %s
*Phone:* %s

_Submitted: %s_`,
		lead.Email,
		leads.RevenueLabel(lead.MonthlyRevenue),
		leads.AdSpendLabel(lead.AdSpend),
		lead.WebsiteURL,
		lead.PhoneNumber,
		c.now().Format("Jan 2, 2006 3:04 PM"),
	)
}
