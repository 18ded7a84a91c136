package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one row of a monthly statement. TransactionID is empty on
// the synthetic interest line. Balance is the running balance after the line
// is applied.
type StatementLine struct {
	Date          time.Time       `json:"date"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Type          TxnType         `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

// Statement is the computed monthly statement for one account.
type Statement struct {
	AccountID      string          `json:"account_id"`
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	Lines          []StatementLine `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}
