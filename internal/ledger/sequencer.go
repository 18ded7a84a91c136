package ledger

import (
	"fmt"
	"time"

	"bank-statements/internal/domain"
)

// Sequencer allocates transaction ids of the form "YYYYMMDD-NN". The counter
// is scoped per calendar date and shared across all accounts, so two accounts
// transacting on the same date draw from one sequence. NN starts at 01 and is
// zero-padded to two digits minimum, growing naturally past 99.
//
// A Sequencer belongs to one Ledger; callers needing fresh counters create a
// fresh Ledger. Mutation is guarded by the owning Ledger's mutex.
type Sequencer struct {
	counters map[string]int
}

func NewSequencer() *Sequencer {
	return &Sequencer{counters: make(map[string]int)}
}

// Next returns the next id for the given date.
func (s *Sequencer) Next(date time.Time) string {
	key := date.Format(domain.DateLayout)
	s.counters[key]++
	return fmt.Sprintf("%s-%02d", key, s.counters[key])
}
