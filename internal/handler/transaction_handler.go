package handler

import (
	"encoding/json"
	"net/http"

	"bank-statements/internal/domain"
	"bank-statements/internal/errors"
	"bank-statements/internal/service"
)

type TransactionHandler struct {
	bankService *service.BankService
}

func NewTransactionHandler(bankService *service.BankService) *TransactionHandler {
	return &TransactionHandler{
		bankService: bankService,
	}
}

type RecordTransactionRequest struct {
	Date      string `json:"date"`
	AccountID string `json:"account_id"`
	Type      string `json:"type"`
	Amount    string `json:"amount"`
}

type TransactionView struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type RecordTransactionResponse struct {
	TransactionID string            `json:"transaction_id"`
	AccountID     string            `json:"account_id"`
	Transactions  []TransactionView `json:"transactions"`
}

func (h *TransactionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	result, err := h.bankService.RecordTransaction(req.Date, req.AccountID, req.Type, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := RecordTransactionResponse{
		TransactionID: result.Transaction.ID,
		AccountID:     result.Transaction.AccountID,
		Transactions:  transactionViews(result.History),
	}

	writeJSON(w, http.StatusCreated, response)
}

func transactionViews(txns []*domain.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(txns))
	for _, t := range txns {
		views = append(views, TransactionView{
			ID:     t.ID,
			Date:   t.Date.Format(domain.DateLayout),
			Type:   string(t.Type),
			Amount: t.Amount.StringFixed(2),
		})
	}
	return views
}
