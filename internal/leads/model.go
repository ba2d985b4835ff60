package leads

import "regexp"

// Route selects which fan-out path the client chose after qualification.
type Route string

const (
	// RouteSMS indicates the lead opted into the SMS contact path.
	RouteSMS Route = "sms"
	// RouteSchedule indicates the lead was sent to the external scheduling page.
	RouteSchedule Route = "schedule"
)

// Lead represents a prospect's submitted contact and qualification data.
type Lead struct {
	Email          string `json:"email"`
	MonthlyRevenue string `json:"monthlyRevenue"`
	AdSpend        string `json:"adSpend"`
	WebsiteURL     string `json:"websiteUrl"`
	PhoneNumber    string `json:"phoneNumber"`
	Route          Route  `json:"route,omitempty"`
}

// SubmitResponse is the response body for POST /api/submit-lead.
// Success is always true; failures are logged server-side only.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Option pairs an enum code with its display label.
type Option struct {
	Value string
	Label string
}

// RevenueOptions is the closed set of monthly revenue buckets.
var RevenueOptions = []Option{
	{Value: "0-50k", Label: "$0 - $50,000"},
	{Value: "50k-100k", Label: "$50,000 - $100,000"},
	{Value: "100k-250k", Label: "$100,000 - $250,000"},
	{Value: "250k-500k", Label: "$250,000 - $500,000"},
	{Value: "500k-1m", Label: "$500,000 - $1,000,000"},
	{Value: "1m+", Label: "$1,000,000+"},
}

// AdSpendOptions is the closed set of monthly ad spend buckets.
var AdSpendOptions = []Option{
	{Value: "0-10k", Label: "$0 - $10,000"},
	{Value: "10k-25k", Label: "$10,000 - $25,000"},
	{Value: "25k-50k", Label: "$25,000 - $50,000"},
	{Value: "50k-100k", Label: "$50,000 - $100,000"},
	{Value: "100k-250k", Label: "$100,000 - $250,000"},
	{Value: "250k+", Label: "$250,000+"},
}

// Disqualifying buckets. Qualification is decided client-side before
// submission; these exist so reporting tools can mirror that policy.
var (
	DisqualifyingRevenue = map[string]struct{}{"0-50k": {}}
	DisqualifyingAdSpend = map[string]struct{}{"0-10k": {}}
)

// RevenueLabel resolves a revenue code to its display label.
// Unrecognized codes fall back to the raw code.
func RevenueLabel(value string) string {
	return optionLabel(RevenueOptions, value)
}

// AdSpendLabel resolves an ad spend code to its display label.
// Unrecognized codes fall back to the raw code.
func AdSpendLabel(value string) string {
	return optionLabel(AdSpendOptions, value)
}

func optionLabel(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Disqualified reports whether the lead falls into a disqualifying
// revenue or ad spend bucket. The orchestrator never re-derives
// qualification from this; it only forwards the client's route tag.
func (l *Lead) Disqualified() bool {
	if _, ok := DisqualifyingRevenue[l.MonthlyRevenue]; ok {
		return true
	}
	_, ok := DisqualifyingAdSpend[l.AdSpend]
	return ok
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the submission in order, stopping at the first failure.
// Validation is deliberately shallow: presence plus email shape. Deeper
// business checks live in the form client.
func (l *Lead) Validate() error {
	if l.Email == "" || !emailPattern.MatchString(l.Email) {
		return ErrInvalidEmail
	}
	if l.MonthlyRevenue == "" {
		return ErrMissingRevenue
	}
	if l.AdSpend == "" {
		return ErrMissingAdSpend
	}
	if l.WebsiteURL == "" {
		return ErrMissingWebsite
	}
	if l.PhoneNumber == "" {
		return ErrMissingPhone
	}
	return nil
}
