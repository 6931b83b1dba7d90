package core

import "time"

// Outcome labels for recorded ledger mutations
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// LedgerMetrics receives counters and timings from the ledger service
type LedgerMetrics interface {
	// ObserveMutation records one charge or use attempt and how it ended
	ObserveMutation(operation string, outcome string, elapsed time.Duration)
	// ObserveLockWait records how long a caller waited for its user's slot
	ObserveLockWait(elapsed time.Duration)
	// SetActiveUserSlots reports how many per-user slots exist
	SetActiveUserSlots(count int)
}
