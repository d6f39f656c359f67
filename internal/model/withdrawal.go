package model

import (
	"time"

	"github.com/google/uuid"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalProcessed WithdrawalStatus = "processed"
)

// WithdrawalRequest records a payout ask. AccountCount is a snapshot of
// the user's successful accounts at creation time and is never re-derived.
type WithdrawalRequest struct {
	ID           int64
	Reference    uuid.UUID
	UserID       int64
	Username     string
	AccountCount int
	BankDetails  string
	Status       WithdrawalStatus
	CreatedAt    time.Time
	ProcessedAt  *time.Time
}
