package model

import "time"

type ConversationStep string

const (
	StepAwaitingPhone       ConversationStep = "awaiting_phone"
	StepAwaitingCode        ConversationStep = "awaiting_code"
	StepAwaitingBankDetails ConversationStep = "awaiting_bank_details"
)

// ConversationState tracks where a user is in a multi-step dialog.
// At most one state exists per user; it is replaced on every transition
// and removed when the dialog completes or is cancelled.
type ConversationState struct {
	UserID    int64
	Step      ConversationStep
	Data      StateData
	CreatedAt time.Time
}

// StateData is the opaque payload carried between dialog steps.
type StateData struct {
	PhoneNumber string `json:"phone_number,omitempty"`
}
