package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Placeholder values shipped in .env.example. An integration configured with
// one of these is treated as unconfigured and degrades to a no-op.
var placeholderValues = map[string]struct{}{
	"YOUR_SLACK_WEBHOOK_URL_HERE":    {},
	"YOUR_HUBSPOT_ACCESS_TOKEN_HERE": {},
	"YOUR_TWILIO_ACCOUNT_SID_HERE":   {},
	"YOUR_TWILIO_AUTH_TOKEN_HERE":    {},
	"YOUR_TWILIO_FROM_NUMBER_HERE":   {},
}

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	SlackWebhookURL string

	HubSpotAccessToken string
	HubSpotBaseURL     string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	DispatchWorkerCount int
	DispatchQueueSize   int
	DispatchJobTimeout  time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),

		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),

		HubSpotAccessToken: getEnv("HUBSPOT_ACCESS_TOKEN", ""),
		HubSpotBaseURL:     getEnv("HUBSPOT_BASE_URL", "https://api.hubapi.com"),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),

		DispatchWorkerCount: getEnvAsInt("DISPATCH_WORKER_COUNT", 4),
		DispatchQueueSize:   getEnvAsInt("DISPATCH_QUEUE_SIZE", 256),
		DispatchJobTimeout:  getEnvAsDuration("DISPATCH_JOB_TIMEOUT", 15*time.Second),
	}
}

// SlackConfigured reports whether the Slack webhook integration is usable.
func (c *Config) SlackConfigured() bool {
	return isSet(c.SlackWebhookURL)
}

// HubSpotConfigured reports whether the HubSpot integration is usable.
func (c *Config) HubSpotConfigured() bool {
	return isSet(c.HubSpotAccessToken)
}

// TwilioConfigured reports whether the Twilio SMS integration is usable.
// All three values are required before any send is attempted.
func (c *Config) TwilioConfigured() bool {
	return isSet(c.TwilioAccountSID) && isSet(c.TwilioAuthToken) && isSet(c.TwilioFromNumber)
}

func isSet(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	_, placeholder := placeholderValues[value]
	return !placeholder
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated environment variable, dropping empty entries.
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
