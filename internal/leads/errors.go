package leads

import "errors"

var (
	// ErrInvalidEmail is returned when the email is missing or malformed
	ErrInvalidEmail = errors.New("valid email is required")

	// ErrMissingRevenue is returned when the monthly revenue bucket is missing
	ErrMissingRevenue = errors.New("monthly revenue is required")

	// ErrMissingAdSpend is returned when the ad spend bucket is missing
	ErrMissingAdSpend = errors.New("ad spend is required")

	// ErrMissingWebsite is returned when the website URL is missing
	ErrMissingWebsite = errors.New("website URL is required")

	// ErrMissingPhone is returned when the phone number is missing
	ErrMissingPhone = errors.New("phone number is required")
)
