package leads

import (
	"errors"
	"testing"
)

func validLead() Lead {
	return Lead{
		Email:          "a@b.com",
		MonthlyRevenue: "100k-250k",
		AdSpend:        "50k-100k",
		WebsiteURL:     "https://x.com",
		PhoneNumber:    "+15551234567",
	}
}

func TestValidate_Valid(t *testing.T) {
	lead := validLead()
	if err := lead.Validate(); err != nil {
		t.Fatalf("expected valid lead, got %v", err)
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Lead)
		want   error
	}{
		{"missing email", func(l *Lead) { l.Email = "" }, ErrInvalidEmail},
		{"malformed email", func(l *Lead) { l.Email = "not-an-email" }, ErrInvalidEmail},
		{"email with spaces", func(l *Lead) { l.Email = "a b@c.com" }, ErrInvalidEmail},
		{"email without tld", func(l *Lead) { l.Email = "a@b" }, ErrInvalidEmail},
		{"missing revenue", func(l *Lead) { l.MonthlyRevenue = "" }, ErrMissingRevenue},
		{"missing ad spend", func(l *Lead) { l.AdSpend = "" }, ErrMissingAdSpend},
		{"missing website", func(l *Lead) { l.WebsiteURL = "" }, ErrMissingWebsite},
		{"missing phone", func(l *Lead) { l.PhoneNumber = "" }, ErrMissingPhone},
		{
			// Email is checked before everything else.
			"invalid email beats missing revenue",
			func(l *Lead) { l.Email = "nope"; l.MonthlyRevenue = "" },
			ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := validLead()
			tt.mutate(&lead)
			if err := lead.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	if got := RevenueLabel("100k-250k"); got != "$100,000 - $250,000" {
		t.Fatalf("unexpected revenue label: %s", got)
	}
	if got := AdSpendLabel("250k+"); got != "$250,000+" {
		t.Fatalf("unexpected ad spend label: %s", got)
	}
	// Unknown codes fall back to the raw value.
	if got := RevenueLabel("9000k"); got != "9000k" {
		t.Fatalf("expected raw fallback, got %s", got)
	}
	if got := AdSpendLabel(""); got != "" {
		t.Fatalf("expected empty fallback, got %q", got)
	}
}

func TestDisqualified(t *testing.T) {
	lead := validLead()
	if lead.Disqualified() {
		t.Fatal("mid-tier lead should not be disqualified")
	}
	lead.MonthlyRevenue = "0-50k"
	if !lead.Disqualified() {
		t.Fatal("lowest revenue bucket should disqualify")
	}
	lead = validLead()
	lead.AdSpend = "0-10k"
	if !lead.Disqualified() {
		t.Fatal("lowest ad spend bucket should disqualify")
	}
}
