package leads

import (
	"encoding/json"
	"net/http"

	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

// Handler handles HTTP requests for lead submissions
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SubmitLead handles POST /api/submit-lead requests.
//
// The response is {success:true} no matter what: validation failures,
// malformed bodies and integration errors are logged server-side and never
// surfaced to the form. The only caller-visible failure is a 405 from the
// router for non-POST methods.
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var lead Lead

	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.logger.Error("failed to decode submission body", "error", err)
		writeJSON(w, SubmitResponse{Success: true})
		return
	}

	h.logger.Debug("received lead submission",
		"email", lead.Email,
		"monthly_revenue", lead.MonthlyRevenue,
		"ad_spend", lead.AdSpend,
		"has_phone", lead.PhoneNumber != "",
	)

	writeJSON(w, h.service.Submit(r.Context(), lead))
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}
