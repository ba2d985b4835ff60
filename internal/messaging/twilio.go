package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

const twilioAPIBase = "https://api.twilio.com"

// TwilioProvider posts SMS messages using Twilio's REST API.
type TwilioProvider struct {
	accountSID string
	authToken  string
	from       string
	apiBase    string
	httpClient *http.Client
	logger     *logging.Logger
}

// NewTwilioProvider builds a provider with sane defaults. Missing credentials
// are allowed; the provider then reports itself unconfigured.
func NewTwilioProvider(accountSID, authToken, from string, logger *logging.Logger) *TwilioProvider {
	if logger == nil {
		logger = logging.Default()
	}
	return &TwilioProvider{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		apiBase:    twilioAPIBase,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

var _ Provider = (*TwilioProvider)(nil)

// IsConfigured reports whether all three Twilio credentials are present.
func (p *TwilioProvider) IsConfigured() bool {
	return p.accountSID != "" && p.authToken != "" && p.from != ""
}

// Send dispatches a single SMS. There is no retry: a failed send is the
// caller's to log and abandon.
func (p *TwilioProvider) Send(ctx context.Context, to, body string) error {
	if !p.IsConfigured() {
		return errors.New("messaging: twilio credentials missing")
	}
	if to == "" {
		return errors.New("messaging: to required")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New("messaging: body required")
	}

	payload := url.Values{}
	payload.Set("To", to)
	payload.Set("From", p.from)
	payload.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.apiBase, p.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("twilio send failed: %s", formatTwilioError(resp.StatusCode, respBody))
	}

	var parsed struct {
		SID    string `json:"sid"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.SID != "" {
		p.logger.Info("twilio sms sent", "to", to, "sid", parsed.SID, "status", parsed.Status)
	} else {
		p.logger.Info("twilio sms sent", "to", to)
	}
	return nil
}

type twilioAPIError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}

func formatTwilioError(status int, body []byte) string {
	body = []byte(strings.TrimSpace(string(body)))
	if len(body) == 0 {
		return fmt.Sprintf("status %d", status)
	}
	var parsed twilioAPIError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		if parsed.Code != 0 {
			return fmt.Sprintf("status %d code %d: %s", status, parsed.Code, parsed.Message)
		}
		return fmt.Sprintf("status %d: %s", status, parsed.Message)
	}
	return fmt.Sprintf("status %d: %s", status, string(body))
}
