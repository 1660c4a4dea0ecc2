package entities

import (
	"encoding/json"
	"time"
)

// OutboundOutcome tags why a message landed in the backup queue.

type OutboundOutcome string

const (
	OutboundOutcomeAttempted        OutboundOutcome = "attempted"
	OutboundOutcomeFailed           OutboundOutcome = "failed"
	OutboundOutcomeServerlessFailed OutboundOutcome = "serverless_failed"
)

// OutboundMessageRecord is a backup-queue entry for an email or lead payload
// that could not be delivered live. Records are appended, never mutated, and
// exist only so an operator can replay them manually.
type OutboundMessageRecord struct {
	Destination string          `json:"destination"`
	Payload     json.RawMessage `json:"payload"`
	Outcome     OutboundOutcome `json:"outcome"`
	Timestamp   time.Time       `json:"timestamp"`
}
