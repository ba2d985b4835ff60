package hubspot

// searchRequest is the body for the CRM contact search endpoint.
type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Properties   []string      `json:"properties"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

// searchResponse is the CRM search result envelope.
type searchResponse struct {
	Total   int            `json:"total"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// contactRequest wraps the properties bag for create and update calls.
type contactRequest struct {
	Properties contactProperties `json:"properties"`
}

// contactProperties maps lead fields onto the CRM's custom contact
// properties. Email is omitted on updates; it is the upsert key.
type contactProperties struct {
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone"`
	WebsiteURL     string `json:"website_url"`
	MonthlyRevenue string `json:"monthly_revenue"`
	MonthlyAdSpend string `json:"monthly_ad_spend"`
	LeadSource     string `json:"lead_source"`
}
