package messaging

import (
	"context"

	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

// WelcomeMessage is the fixed text sent to every lead on the SMS path.
const WelcomeMessage = "Thanks for signing up for VIP access! One of our team members will text you shortly to get you started. Reply STOP to opt out."

// WelcomeSender sends the welcome SMS through whichever provider was wired
// in at startup.
type WelcomeSender struct {
	provider Provider
	logger   *logging.Logger
}

// NewWelcomeSender creates a welcome-SMS sender.
func NewWelcomeSender(provider Provider, logger *logging.Logger) *WelcomeSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &WelcomeSender{
		provider: provider,
		logger:   logger,
	}
}

// SendWelcome sends the welcome message to phoneNumber. It returns true only
// on provider-confirmed acceptance; failures are logged here and never
// propagated.
func (s *WelcomeSender) SendWelcome(ctx context.Context, phoneNumber string) bool {
	if s.provider == nil || !s.provider.IsConfigured() {
		s.logger.Warn("messaging: sms provider not configured, skipping welcome message")
		return false
	}

	if err := s.provider.Send(ctx, phoneNumber, WelcomeMessage); err != nil {
		s.logger.Error("messaging: welcome sms failed", "error", err, "to", phoneNumber)
		return false
	}
	return true
}
