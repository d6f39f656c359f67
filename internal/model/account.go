package model

import "time"

type AccountStatus string

const (
	AccountPending    AccountStatus = "pending"
	AccountSuccessful AccountStatus = "successful"
	AccountFailed     AccountStatus = "failed"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Account is a submitted seller account. Rows are never deleted; the
// login flow and admin payment commands only move the two statuses.
type Account struct {
	ID            int64
	UserID        int64
	Username      string
	PhoneNumber   string
	Status        AccountStatus
	PaymentStatus PaymentStatus
	BuyerUserID   *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
