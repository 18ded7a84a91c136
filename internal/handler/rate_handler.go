package handler

import (
	"encoding/json"
	"net/http"

	"bank-statements/internal/domain"
	"bank-statements/internal/errors"
	"bank-statements/internal/service"
)

type RateHandler struct {
	bankService *service.BankService
}

func NewRateHandler(bankService *service.BankService) *RateHandler {
	return &RateHandler{
		bankService: bankService,
	}
}

type DefineRateRequest struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

type RateRuleView struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

type DefineRateResponse struct {
	Rules []RateRuleView `json:"rules"`
}

func (h *RateHandler) Define(w http.ResponseWriter, r *http.Request) {
	var req DefineRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	rules, err := h.bankService.DefineRate(req.Date, req.RuleID, req.Rate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	views := make([]RateRuleView, 0, len(rules))
	for _, rule := range rules {
		views = append(views, RateRuleView{
			Date:   rule.EffectiveDate.Format(domain.DateLayout),
			RuleID: rule.RuleID,
			Rate:   rule.Rate.String(),
		})
	}

	writeJSON(w, http.StatusCreated, DefineRateResponse{Rules: views})
}
