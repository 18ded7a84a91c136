// Package interest computes day-weighted simple interest for a calendar
// month under a piecewise-constant annual rate schedule.
package interest

import (
	"time"

	"github.com/shopspring/decimal"

	"bank-statements/internal/domain"
)

var (
	percentBase = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// ForMonth returns the account's total interest for the given month, rounded
// to 2 decimal places (half away from zero). Intermediate sums keep full
// precision; only the final total is rounded.
//
// The month is partitioned into maximal runs of days sharing one rate, and
// each run accrues balance * rate/100 * days/365 on the balance in effect at
// the run's first day. A balance change inside a run (a transaction on a day
// where the rate did not change) does not re-split the run; the start-of-run
// balance stands for the whole run. That undercounts interest after an
// intra-run change and is kept deliberately for compatibility with the
// statements this system replaces.
func ForMonth(l domain.TransactionLedger, r domain.RateResolver, accountID string, year int, month time.Month) decimal.Decimal {
	days := domain.DaysInMonth(year, month)
	first := domain.MonthStart(year, month)

	balances := dailyBalances(l, accountID, year, month)

	total := decimal.Zero
	runStart := 0
	runRate := r.RateOn(first)
	for day := 1; day <= days; day++ {
		var rate decimal.Decimal
		if day < days {
			rate = r.RateOn(first.AddDate(0, 0, day))
		}
		if day < days && rate.Equal(runRate) {
			continue
		}
		if runRate.IsPositive() {
			runDays := decimal.NewFromInt(int64(day - runStart))
			total = total.Add(balances[runStart].
				Mul(runRate).Div(percentBase).
				Mul(runDays).Div(daysPerYear))
		}
		runStart = day
		runRate = rate
	}
	return total.Round(2)
}

// dailyBalances builds the closing balance for every day of the month,
// indexed from 0. Day 1 starts from the previous month-end balance; days
// without transactions inherit the most recent closing balance.
func dailyBalances(l domain.TransactionLedger, accountID string, year int, month time.Month) []decimal.Decimal {
	days := domain.DaysInMonth(year, month)
	opening := l.BalanceAsOf(accountID, domain.MonthStart(year, month).AddDate(0, 0, -1))

	byDay := make(map[int]decimal.Decimal, days)
	balance := opening
	for _, t := range l.TransactionsInMonth(accountID, year, month) {
		switch t.Type {
		case domain.Withdrawal:
			balance = balance.Sub(t.Amount)
		default:
			balance = balance.Add(t.Amount)
		}
		byDay[t.Date.Day()] = balance
	}

	balances := make([]decimal.Decimal, days)
	current := opening
	for day := 1; day <= days; day++ {
		if b, ok := byDay[day]; ok {
			current = b
		}
		balances[day-1] = current
	}
	return balances
}
