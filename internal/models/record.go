package models

import "time"

// Status is the lifecycle state of a maintenance job.
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// Urgency is the reporter-assigned priority of a job.
type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

// JobRecord is one structured maintenance request extracted from a single
// line of pasted ticket text.
type JobRecord struct {
	ID          string    `json:"id"`
	Room        string    `json:"room"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Urgency     Urgency   `json:"urgency"`
	Timestamp   time.Time `json:"timestamp"`
}

// FinancialEntry is one debit line recognized in pasted bank-statement text.
type FinancialEntry struct {
	RawLine      string  `json:"rawLine"`
	Amount       float64 `json:"amount"`
	Counterparty string  `json:"counterparty"`
}

// DuplicateGroup holds two or more entries sharing the same amount at
// currency precision.
type DuplicateGroup struct {
	Amount  float64          `json:"amount"`
	Entries []FinancialEntry `json:"entries"`
}

// InputKind classifies what a pasted blob of text looks like.
type InputKind string

const (
	InputJobs      InputKind = "jobs"
	InputStatement InputKind = "statement"
)
