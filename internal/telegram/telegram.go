// Package telegram drives MTProto logins for submitted accounts through
// a registry of per-phone clients.
package telegram

import (
	"context"
	"errors"
)

var (
	ErrPhoneInvalid   = errors.New("phone number rejected by telegram")
	ErrFloodWait      = errors.New("rate limited by telegram")
	ErrCodeInvalid    = errors.New("login code invalid")
	ErrCodeExpired    = errors.New("login code expired")
	ErrPasswordNeeded = errors.New("account protected by a 2FA password")
	ErrNotConnected   = errors.New("no active client for phone")
)

// AccountClient is the login surface the submission flow depends on.
type AccountClient interface {
	// RequestCode connects a client for the phone and asks the platform
	// to send a login code. Already-authorized phones succeed immediately.
	RequestCode(ctx context.Context, phone string) error
	// SignIn completes the login with the code collected from the seller.
	SignIn(ctx context.Context, phone, code string) error
	// SetPassword sets the takeover password on the account.
	SetPassword(ctx context.Context, phone, password string) error
	// Logout terminates the session and discards local artifacts.
	Logout(ctx context.Context, phone string) error
}

// SessionStore persists opaque session blobs per phone number.
type SessionStore interface {
	SaveSession(ctx context.Context, phoneNumber string, data []byte) error
	GetSession(ctx context.Context, phoneNumber string) ([]byte, error)
	DeactivateSession(ctx context.Context, phoneNumber string) error
}

// BuyerStore resolves the buyer a phone's forwarded codes belong to.
type BuyerStore interface {
	GetBuyerByPhone(ctx context.Context, phoneNumber string) (int64, error)
}
