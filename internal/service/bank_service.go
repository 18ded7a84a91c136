package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bank-statements/internal/domain"
	"bank-statements/internal/errors"
	"bank-statements/internal/ledger"
	"bank-statements/internal/rates"
	"bank-statements/internal/statement"
)

// BankService is the string-facing contract consumed by the HTTP layer.
// It parses wire-format inputs (YYYYMMDD dates, decimal strings), re-validates
// semantics, and delegates to the core. All validation happens before any
// mutation.
//
// The mutex serializes whole logical operations: a statement build reads the
// ledger several times (folds, month scan, daily balance table) and must not
// interleave with a concurrent record.
type BankService struct {
	mu      sync.Mutex
	ledger  *ledger.Ledger
	rates   *rates.Schedule
	builder *statement.Builder
	logger  *slog.Logger
}

func NewBankService(l *ledger.Ledger, r *rates.Schedule, logger *slog.Logger) *BankService {
	return &BankService{
		ledger:  l,
		rates:   r,
		builder: statement.NewBuilder(l, r),
		logger:  logger,
	}
}

// RecordResult carries the new transaction plus the account's full history,
// which the caller renders after each entry.
type RecordResult struct {
	Transaction *domain.Transaction
	History     []*domain.Transaction
}

func (s *BankService) RecordTransaction(dateStr, accountID, typeStr, amountStr string) (*RecordResult, error) {
	s.logger.Info("Recording transaction",
		"account_id", accountID, "date", dateStr, "type", typeStr, "amount", amountStr)

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	amount, derr := decimal.NewFromString(amountStr)
	if derr != nil {
		return nil, errors.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txn, err := s.ledger.Record(accountID, date, domain.TxnType(typeStr), amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transaction recorded", "transaction_id", txn.ID)
	return &RecordResult{
		Transaction: txn,
		History:     s.ledger.Transactions(accountID),
	}, nil
}

// DefineRate upserts an interest rule and returns the full rule list sorted
// by effective date ascending.
func (s *BankService) DefineRate(dateStr, ruleID, rateStr string) ([]domain.RateRule, error) {
	s.logger.Info("Defining interest rule", "rule_id", ruleID, "date", dateStr, "rate", rateStr)

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	rate, derr := decimal.NewFromString(rateStr)
	if derr != nil {
		return nil, errors.ErrInvalidRate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.rates.Define(date, ruleID, rate); err != nil {
		return nil, err
	}
	return s.rates.Rules(), nil
}

// GetStatement builds the statement for a "YYYYMM" month.
func (s *BankService) GetStatement(accountID, yearMonth string) (*domain.Statement, error) {
	s.logger.Info("Building statement", "account_id", accountID, "month", yearMonth)

	m, err := time.Parse(domain.MonthLayout, yearMonth)
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidDate, "month must be in YYYYMM format")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.builder.Build(accountID, m.Year(), m.Month())
}

// GetAccount returns the account snapshot with its current balance.
func (s *BankService) GetAccount(accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Account(accountID)
}

// parseDate rejects anything time.Parse would normalize away (e.g. 20230231),
// not just syntax errors.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil || d.Format(domain.DateLayout) != s {
		return time.Time{}, errors.ErrInvalidDate
	}
	return d, nil
}
