// Package statement assembles monthly account statements from the ledger,
// the rate schedule, and the interest calculator.
package statement

import (
	"time"

	"bank-statements/internal/domain"
	"bank-statements/internal/errors"
	"bank-statements/internal/interest"
)

// Builder produces statements against a ledger and rate schedule.
type Builder struct {
	ledger domain.TransactionLedger
	rates  domain.RateResolver
}

func NewBuilder(ledger domain.TransactionLedger, rates domain.RateResolver) *Builder {
	return &Builder{ledger: ledger, rates: rates}
}

// Build returns the account's statement for the given month: the month's
// transactions in chronological order with running balances, plus a synthetic
// interest line dated the last calendar day of the month when interest is
// positive. A month with no transactions yields NoActivity even if interest
// rules exist for it.
func (b *Builder) Build(accountID string, year int, month time.Month) (*domain.Statement, error) {
	if !b.ledger.Exists(accountID) {
		return nil, errors.ErrAccountNotFound
	}

	txns := b.ledger.TransactionsInMonth(accountID, year, month)
	if len(txns) == 0 {
		return nil, errors.ErrNoActivity
	}

	balance := b.ledger.BalanceAsOf(accountID, domain.MonthStart(year, month).AddDate(0, 0, -1))

	lines := make([]domain.StatementLine, 0, len(txns)+1)
	for _, t := range txns {
		switch t.Type {
		case domain.Withdrawal:
			balance = balance.Sub(t.Amount)
		default:
			balance = balance.Add(t.Amount)
		}
		lines = append(lines, domain.StatementLine{
			Date:          t.Date,
			TransactionID: t.ID,
			Type:          t.Type,
			Amount:        t.Amount,
			Balance:       balance,
		})
	}

	if accrued := interest.ForMonth(b.ledger, b.rates, accountID, year, month); accrued.IsPositive() {
		balance = balance.Add(accrued)
		lines = append(lines, domain.StatementLine{
			Date:    domain.MonthEnd(year, month),
			Type:    domain.Interest,
			Amount:  accrued,
			Balance: balance,
		})
	}

	return &domain.Statement{
		AccountID:      accountID,
		Year:           year,
		Month:          month,
		Lines:          lines,
		ClosingBalance: balance,
	}, nil
}
