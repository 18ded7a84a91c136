package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"bank-statements/internal/domain"
	"bank-statements/internal/service"
)

type AccountHandler struct {
	bankService *service.BankService
}

func NewAccountHandler(bankService *service.BankService) *AccountHandler {
	return &AccountHandler{
		bankService: bankService,
	}
}

type AccountResponse struct {
	AccountID   string `json:"account_id"`
	CreatedDate string `json:"created_date"`
	Balance     string `json:"balance"`
}

type StatementLineView struct {
	Date          string `json:"date"`
	TransactionID string `json:"transaction_id,omitempty"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type StatementResponse struct {
	AccountID      string              `json:"account_id"`
	Month          string              `json:"month"`
	Lines          []StatementLineView `json:"lines"`
	ClosingBalance string              `json:"closing_balance"`
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountID := vars["account_id"]

	account, err := h.bankService.GetAccount(accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := AccountResponse{
		AccountID:   account.ID,
		CreatedDate: account.CreatedDate.Format(domain.DateLayout),
		Balance:     account.Balance.StringFixed(2),
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *AccountHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountID := vars["account_id"]
	yearMonth := vars["year_month"]

	stmt, err := h.bankService.GetStatement(accountID, yearMonth)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	lines := make([]StatementLineView, 0, len(stmt.Lines))
	for _, line := range stmt.Lines {
		lines = append(lines, StatementLineView{
			Date:          line.Date.Format(domain.DateLayout),
			TransactionID: line.TransactionID,
			Type:          string(line.Type),
			Amount:        line.Amount.StringFixed(2),
			Balance:       line.Balance.StringFixed(2),
		})
	}

	response := StatementResponse{
		AccountID:      stmt.AccountID,
		Month:          domain.MonthStart(stmt.Year, stmt.Month).Format(domain.MonthLayout),
		Lines:          lines,
		ClosingBalance: stmt.ClosingBalance.StringFixed(2),
	}

	writeJSON(w, http.StatusOK, response)
}
