package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is created implicitly by the first deposit and never deleted.
// Its transaction sequence lives in the ledger; Account itself is a snapshot.
type Account struct {
	ID          string          `json:"account_id"`
	CreatedDate time.Time       `json:"created_date"`
	Balance     decimal.Decimal `json:"balance"`
}
