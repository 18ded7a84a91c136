// Package rates maintains the time-varying interest rate schedule: an
// ordered set of (effective date, annual rate) rules forming a
// piecewise-constant rate function over calendar days.
package rates

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"bank-statements/internal/domain"
	"bank-statements/internal/errors"
)

var maxRate = decimal.NewFromInt(100)

// Schedule holds rate rules sorted by effective date ascending. At most one
// rule exists per date; redefining a date replaces the earlier rule.
type Schedule struct {
	mu    sync.Mutex
	rules []domain.RateRule
}

func New() *Schedule {
	return &Schedule{}
}

// Define upserts a rule. The rate must lie strictly between 0 and 100.
func (s *Schedule) Define(effectiveDate time.Time, ruleID string, rate decimal.Decimal) (*domain.RateRule, error) {
	if ruleID == "" {
		return nil, errors.NewAppError(errors.InvalidInput, "rule id must not be empty")
	}
	if !rate.IsPositive() || rate.GreaterThanOrEqual(maxRate) {
		return nil, errors.ErrInvalidRate
	}

	rule := domain.RateRule{
		EffectiveDate: domain.Day(effectiveDate),
		RuleID:        ruleID,
		Rate:          rate,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rules {
		if s.rules[i].EffectiveDate.Equal(rule.EffectiveDate) {
			s.rules[i] = rule
			return &rule, nil
		}
	}
	s.rules = append(s.rules, rule)
	sort.Slice(s.rules, func(i, j int) bool {
		return s.rules[i].EffectiveDate.Before(s.rules[j].EffectiveDate)
	})
	return &rule, nil
}

// RateOn resolves the annual rate in percent for the given day: the rate of
// the latest rule whose effective date is on or before it. Zero means no
// accrual; an empty schedule accrues nothing.
func (s *Schedule) RateOn(date time.Time) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := domain.Day(date)
	rate := decimal.Zero
	for _, r := range s.rules {
		if r.EffectiveDate.After(day) {
			break
		}
		rate = r.Rate
	}
	return rate
}

// Rules returns a snapshot of all rules sorted by effective date ascending.
func (s *Schedule) Rules() []domain.RateRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RateRule, len(s.rules))
	copy(out, s.rules)
	return out
}
