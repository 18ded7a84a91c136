package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnType is the single-letter transaction type used on the wire and in
// statement output.
type TxnType string

const (
	Deposit    TxnType = "D"
	Withdrawal TxnType = "W"
	// Interest only appears on synthetic statement lines, never in the ledger.
	Interest TxnType = "I"
)

// Valid reports whether t may be recorded by a caller. Interest is excluded:
// it is produced by the statement builder, not recorded.
func (t TxnType) Valid() bool {
	return t == Deposit || t == Withdrawal
}

// Transaction is a single ledger entry. Date has day granularity (UTC
// midnight) and ID is the date-scoped "YYYYMMDD-NN" identifier assigned at
// recording time. Both are immutable once assigned.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Date      time.Time       `json:"date"`
	Type      TxnType         `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// TransactionLedger is the read side of the ledger, consumed by the interest
// calculator and the statement builder.
type TransactionLedger interface {
	Exists(accountID string) bool
	BalanceAsOf(accountID string, cutoff time.Time) decimal.Decimal
	TransactionsInMonth(accountID string, year int, month time.Month) []*Transaction
}
