// Package ledger holds the in-memory transaction log. All monetary state for
// the process lives here; there is no persistence layer.
package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bank-statements/internal/domain"
	"bank-statements/internal/errors"
)

type account struct {
	id          string
	createdDate time.Time
	// insertion order; chronological order is derived by a stable sort on date
	txns []*domain.Transaction
}

// Ledger owns every account's transaction sequence and the date-scoped id
// sequencer. A single mutex serializes all operations: balance folds are not
// safe under concurrent mutation and the operations are all O(transactions).
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account
	seq      *Sequencer
}

func New() *Ledger {
	return &Ledger{
		accounts: make(map[string]*account),
		seq:      NewSequencer(),
	}
}

// Record validates and appends a transaction. Validation happens before any
// mutation; a rejected transaction leaves the ledger unchanged.
func (l *Ledger) Record(accountID string, date time.Time, txnType domain.TxnType, amount decimal.Decimal) (*domain.Transaction, error) {
	if accountID == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "account id must not be empty")
	}
	if !txnType.Valid() {
		return nil, errors.NewAppError(errors.InvalidInput, "transaction type must be D or W")
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}
	date = domain.Day(date)

	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[accountID]
	if !ok {
		if txnType == domain.Withdrawal {
			return nil, errors.ErrUnopenedAccountWithdrawal
		}
		acct = &account{id: accountID, createdDate: date}
		l.accounts[accountID] = acct
	}

	if txnType == domain.Withdrawal && amount.GreaterThan(foldBalance(acct.txns, nil)) {
		return nil, errors.ErrInsufficientFunds
	}

	txn := &domain.Transaction{
		ID:        l.seq.Next(date),
		AccountID: accountID,
		Date:      date,
		Type:      txnType,
		Amount:    amount,
	}
	acct.txns = append(acct.txns, txn)
	return txn, nil
}

// Exists reports whether the account has ever transacted.
func (l *Ledger) Exists(accountID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.accounts[accountID]
	return ok
}

// Account returns a snapshot of the account with its current balance, or an
// AccountNotFound error.
func (l *Ledger) Account(accountID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[accountID]
	if !ok {
		return nil, errors.ErrAccountNotFound
	}
	return &domain.Account{
		ID:          acct.id,
		CreatedDate: acct.createdDate,
		Balance:     foldBalance(acct.txns, nil),
	}, nil
}

// BalanceAsOf folds all transactions dated on or before cutoff. An unopened
// account has balance zero at every date; that is not an error.
func (l *Ledger) BalanceAsOf(accountID string, cutoff time.Time) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[accountID]
	if !ok {
		return decimal.Zero
	}
	cutoff = domain.Day(cutoff)
	return foldBalance(acct.txns, func(t *domain.Transaction) bool {
		return !t.Date.After(cutoff)
	})
}

// Transactions returns the account's full history in chronological order.
func (l *Ledger) Transactions(accountID string) []*domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[accountID]
	if !ok {
		return nil
	}
	return chronological(acct.txns)
}

// TransactionsInMonth returns the account's transactions dated within the
// given month, in chronological order.
func (l *Ledger) TransactionsInMonth(accountID string, year int, month time.Month) []*domain.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	acct, ok := l.accounts[accountID]
	if !ok {
		return nil
	}
	var out []*domain.Transaction
	for _, t := range chronological(acct.txns) {
		if t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// chronological sorts by date ascending, keeping insertion order within a
// date. This ordering governs both balance folds and id ordering per date.
func chronological(txns []*domain.Transaction) []*domain.Transaction {
	out := make([]*domain.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// foldBalance sums deposits minus withdrawals over the transactions that
// satisfy keep (nil keeps everything).
func foldBalance(txns []*domain.Transaction, keep func(*domain.Transaction) bool) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		if keep != nil && !keep(t) {
			continue
		}
		switch t.Type {
		case domain.Withdrawal:
			balance = balance.Sub(t.Amount)
		default:
			balance = balance.Add(t.Amount)
		}
	}
	return balance
}

// validAmount enforces amount > 0 with at most 2 fractional digits.
func validAmount(amount decimal.Decimal) *errors.AppError {
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return errors.ErrInvalidAmount
	}
	return nil
}
