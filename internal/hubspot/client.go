// Package hubspot upserts lead contacts into the HubSpot CRM, keyed by email.
package hubspot

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

const (
	// DefaultBaseURL is the production HubSpot API origin.
	DefaultBaseURL = "https://api.hubapi.com"

	// leadSource tags every contact this service creates or updates.
	leadSource = "VIP Signup Form"

	defaultTimeout = 10 * time.Second
)

// Client talks to the HubSpot contacts API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *logging.Logger
}

// NewClient creates a HubSpot client. An empty accessToken produces a client
// that no-ops on every call. An empty baseURL falls back to production.
func NewClient(baseURL, accessToken string, logger *logging.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// UpsertContact searches the CRM for a contact with the lead's email and
// updates it, or creates a new contact when none exists. At most one contact
// should exist per email after repeated submissions. Returns true only when
// the final create or update call succeeds.
func (c *Client) UpsertContact(ctx context.Context, lead leads.Lead) bool {
	if c.accessToken == "" {
		c.logger.Warn("hubspot: access token not configured, skipping sync")
		return false
	}

	contactID, ok := c.searchContactByEmail(ctx, lead.Email)
	if !ok {
		return false
	}
	if contactID != "" {
		return c.updateContact(ctx, contactID, lead)
	}
	return c.createContact(ctx, lead)
}

// searchContactByEmail returns the existing contact ID, or "" when no contact
// matches. The second return is false when the search itself failed.
func (c *Client) searchContactByEmail(ctx context.Context, email string) (string, bool) {
	reqBody := searchRequest{
		FilterGroups: []filterGroup{{
			Filters: []filter{{
				PropertyName: "email",
				Operator:     "EQ",
				Value:        email,
			}},
		}},
		Properties: []string{"email"},
		Limit:      1,
	}

	var result searchResponse
	status, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", reqBody, &result)
	if err != nil {
		c.logger.Error("hubspot: contact search failed", "error", err)
		return "", false
	}
	if status < 200 || status >= 300 {
		c.logger.Error("hubspot: contact search returned error status", "status", status)
		return "", false
	}

	if result.Total > 0 && len(result.Results) > 0 {
		c.logger.Debug("hubspot: found existing contact", "contact_id", result.Results[0].ID)
		return result.Results[0].ID, true
	}
	return "", true
}

func (c *Client) createContact(ctx context.Context, lead leads.Lead) bool {
	reqBody := contactRequest{
		Properties: contactProperties{
			Email:          lead.Email,
			Phone:          lead.PhoneNumber,
			WebsiteURL:     lead.WebsiteURL,
			MonthlyRevenue: lead.MonthlyRevenue,
			MonthlyAdSpend: lead.AdSpend,
			LeadSource:     leadSource,
		},
	}

	status, err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", reqBody, nil)
	if err != nil {
		c.logger.Error("hubspot: create contact failed", "error", err)
		return false
	}
	if status < 200 || status >= 300 {
		c.logger.Error("hubspot: create contact returned error status", "status", status)
		return false
	}

	c.logger.Info("hubspot: contact created", "email", lead.Email)
	return true
}

func (c *Client) updateContact(ctx context.Context, contactID string, lead leads.Lead) bool {
	reqBody := contactRequest{
		Properties: contactProperties{
			Phone:          lead.PhoneNumber,
			WebsiteURL:     lead.WebsiteURL,
			MonthlyRevenue: lead.MonthlyRevenue,
			MonthlyAdSpend: lead.AdSpend,
			LeadSource:     leadSource,
		},
	}

	status, err := c.do(ctx, http.MethodPatch, "/crm/v3/objects/contacts/"+contactID, reqBody, nil)
	if err != nil {
		c.logger.Error("hubspot: update contact failed", "error", err, "contact_id", contactID)
		return false
	}
	if status < 200 || status >= 300 {
		c.logger.Error("hubspot: update contact returned error status", "status", status, "contact_id", contactID)
		return false
	}

	c.logger.Info("hubspot: contact updated", "contact_id", contactID, "email", lead.Email)
	return true
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("hubspot: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("hubspot: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("hubspot: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("hubspot: decode response: %w", err)
		}
		return resp.StatusCode, nil
	}

	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	return resp.StatusCode, nil
}
