package deduction

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fin-tools/tax-atlas/pkg/adapters"
	"github.com/fin-tools/tax-atlas/pkg/models/api"
	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/fin-tools/tax-atlas/pkg/services/deduction"
	"github.com/rs/zerolog"
)

const statementTitle = "Deduction Statement"

type Handler struct {
	limits deduction.StatutoryLimits
}

func NewHandler() *Handler {
	return &Handler{limits: deduction.DefaultStatutoryLimits()}
}

// ComputeDeductions computes the full deduction statement for one employee
// declaration posted as JSON.
func (h *Handler) ComputeDeductions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ledger, regime, err := adapters.MapComputeRequestApiToDomain(req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ledger.Limits = h.limits

	gross := domain.MoneyFromFloat(req.GrossIncome)
	epf := domain.MoneyFromFloat(req.EPFContribution)

	total, trail := ledger.TotalDeductions(regime, req.Age, gross, epf)
	exemption, exemptionTrail := ledger.InterestExemption(regime, req.Age)
	trail.Merge(exemptionTrail)
	hra, hraTrail := ledger.HRAExemption(regime)
	trail.Merge(hraTrail)

	statement := deduction.BuildStatement(statementTitle, regime, gross, total, exemption, trail)
	response := adapters.MapStatementDomainToApi(statement, hra)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("regime", regime.String()).
			Msg("failed to encode deduction statement")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
