package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRule sets the annual interest rate (in percent) from EffectiveDate
// inclusive until superseded by a rule with a later effective date.
// RuleID is an informational label and plays no part in rate resolution.
type RateRule struct {
	EffectiveDate time.Time       `json:"effective_date"`
	RuleID        string          `json:"rule_id"`
	Rate          decimal.Decimal `json:"rate"`
}

// RateResolver answers "what is the effective annual rate on a given day".
type RateResolver interface {
	RateOn(date time.Time) decimal.Decimal
}
