package domain

import "time"

// Bank is a betting outlet owned by a banker account.
type Bank struct {
	ID        string
	Name      string
	Code      string
	OwnerID   int64
	CreatedAt time.Time
}
