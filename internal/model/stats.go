package model

import "time"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHausa   Language = "ha"
)

// Stats aggregates account rows by lifecycle status.
type Stats struct {
	ByStatus map[AccountStatus]int
}

// Balance is the payout view of a single user's accounts.
type Balance struct {
	UserID     int64
	Verified   int
	Unverified int
	AmountDue  int
}

// Receipt is the printable summary sent by the receipt commands.
type Receipt struct {
	TransactionID string
	Type          string
	Status        string
	PhoneNumber   string
	UserID        int64
	AccountCount  int
	Amount        int
	BankDetails   string
	Reference     string
	Date          time.Time
}
