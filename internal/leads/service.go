package leads

import (
	"context"
	"time"

	"github.com/leadflowhq/vip-signup-api/internal/observability/metrics"
	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

// Notifier posts a lead summary to the team chat.
type Notifier interface {
	Notify(ctx context.Context, lead Lead) bool
}

// ContactUpserter syncs a lead into the CRM, keyed by email.
type ContactUpserter interface {
	UpsertContact(ctx context.Context, lead Lead) bool
}

// WelcomeSMSSender sends the welcome SMS to a lead's phone number.
type WelcomeSMSSender interface {
	SendWelcome(ctx context.Context, phoneNumber string) bool
}

// Dispatcher runs integration calls detached from the request path.
type Dispatcher interface {
	Enqueue(name string, fn func(ctx context.Context)) bool
}

// Service orchestrates a lead submission: validate, route, fan out.
// Every call is a stateless one-shot; integration outcomes feed logs and
// metrics only, never the response.
type Service struct {
	notifier   Notifier
	crm        ContactUpserter
	sms        WelcomeSMSSender
	dispatcher Dispatcher
	metrics    *metrics.LeadMetrics
	logger     *logging.Logger
}

// NewService creates a submission orchestrator.
func NewService(notifier Notifier, crm ContactUpserter, sms WelcomeSMSSender, dispatcher Dispatcher, m *metrics.LeadMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		notifier:   notifier,
		crm:        crm,
		sms:        sms,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

// Submit validates the lead and fans it out to the selected integrations.
// The response always reports success: server-side rejection would only ever
// indicate a bypassed client, and the product treats that the same as any
// other submission.
func (s *Service) Submit(ctx context.Context, lead Lead) SubmitResponse {
	if err := lead.Validate(); err != nil {
		s.logger.Error("submission validation failed", "error", err, "email", lead.Email)
		s.metrics.ObserveSubmission("invalid")
		return SubmitResponse{Success: true}
	}

	s.logger.Info("lead submission accepted",
		"email", lead.Email,
		"monthly_revenue", lead.MonthlyRevenue,
		"ad_spend", lead.AdSpend,
		"route", string(lead.Route),
	)
	s.metrics.ObserveSubmission("accepted")

	// CRM sync happens for every valid lead. Chat notification and the
	// welcome SMS only fire on the SMS path; on the schedule path the
	// client redirects to the booking page on its own.
	s.dispatch("hubspot", func(ctx context.Context) bool {
		return s.crm.UpsertContact(ctx, lead)
	})
	if lead.Route == RouteSMS {
		s.dispatch("slack", func(ctx context.Context) bool {
			return s.notifier.Notify(ctx, lead)
		})
		s.dispatch("sms", func(ctx context.Context) bool {
			return s.sms.SendWelcome(ctx, lead.PhoneNumber)
		})
	}

	return SubmitResponse{Success: true, Message: "Lead submitted successfully"}
}

// dispatch enqueues one integration call as an independent background job.
// Each job owns its own failure: a false result is counted and logged, and
// nothing propagates to the other jobs or the caller.
func (s *Service) dispatch(integration string, call func(ctx context.Context) bool) {
	accepted := s.dispatcher.Enqueue(integration, func(ctx context.Context) {
		start := time.Now()
		ok := call(ctx)
		s.metrics.ObserveIntegration(integration, ok)
		s.metrics.ObserveIntegrationLatency(integration, time.Since(start).Seconds())
		if !ok {
			s.logger.Warn("integration call failed", "integration", integration)
		}
	})
	if !accepted {
		s.metrics.ObserveIntegration(integration, false)
	}
}
