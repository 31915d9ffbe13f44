package domain

import "time"

// ErrorStatus is the administrative state of an ErrorRecord.
type ErrorStatus string

const (
	ErrorStatusOpened ErrorStatus = "OPENED"
	ErrorStatusClosed ErrorStatus = "CLOSED"
)

// ErrorRecord is the audit entry persisted for every unhandled failure.
// Records are created OPENED and never mutated by the request pipeline.
type ErrorRecord struct {
	ID        string
	Message   string
	Stack     string
	URL       string
	Status    ErrorStatus
	Body      string
	CreatedAt time.Time
}
