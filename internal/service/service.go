package service

import (
	"context"
	"errors"

	"tg_account_bot/internal/model"
)

var (
	ErrIntakeClosed      = errors.New("account intake is closed")
	ErrInvalidPhone      = errors.New("phone number is not valid")
	ErrDuplicatePhone    = errors.New("phone number already submitted")
	ErrCodeRequestFailed = errors.New("could not request a login code")
	ErrInvalidCodeFormat = errors.New("login code must be five digits")
	ErrCodeRejected      = errors.New("login code rejected")
	ErrCodeExpired       = errors.New("login code expired")
	ErrPasswordProtected = errors.New("account still has a 2FA password")
	ErrNoPhoneCollected  = errors.New("no phone number collected yet")
	ErrNoAccounts        = errors.New("user has no successful accounts")
	ErrBankDetailsShort  = errors.New("bank details too short")
	ErrLoginFailed       = errors.New("account login failed")
)

// AmountPerAccount is the payout in naira for one accepted account.
const AmountPerAccount = 500

type Service struct {
	*SubmissionService
	*AccountService
	*WithdrawalService
	*AdminService
	*ReceiptService
}

func NewService(sub *SubmissionService, acc *AccountService, wd *WithdrawalService, adm *AdminService, rec *ReceiptService) *Service {
	return &Service{
		SubmissionService: sub,
		AccountService:    acc,
		WithdrawalService: wd,
		AdminService:      adm,
		ReceiptService:    rec,
	}
}

// AccountClient mirrors the adapter surface the submission flow needs.
type AccountClient interface {
	RequestCode(ctx context.Context, phone string) error
	SignIn(ctx context.Context, phone, code string) error
	SetPassword(ctx context.Context, phone, password string) error
	Logout(ctx context.Context, phone string) error
}

type SubmissionRepository interface {
	AccountsOpen(ctx context.Context) (bool, error)
	PhoneExists(ctx context.Context, phoneNumber string) (bool, error)
	CreateAccount(ctx context.Context, userID int64, username, phoneNumber string) error
	UpdateAccountStatus(ctx context.Context, phoneNumber string, status model.AccountStatus) error
	SetConversationState(ctx context.Context, userID int64, step model.ConversationStep, data model.StateData) error
	GetConversationState(ctx context.Context, userID int64) (*model.ConversationState, error)
	ClearConversationState(ctx context.Context, userID int64) error
}

type AccountRepository interface {
	GetUserAccounts(ctx context.Context, userID int64) ([]*model.Account, error)
	CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error)
	CountUnpaidSuccessfulAccounts(ctx context.Context, userID int64) (int, error)
	GetLanguage(ctx context.Context, userID int64) (model.Language, error)
	SetLanguage(ctx context.Context, userID int64, lang model.Language) error
}

type WithdrawalRepository interface {
	AccountsOpen(ctx context.Context) (bool, error)
	CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error)
	GetUserPhoneNumbers(ctx context.Context, userID int64) ([]string, error)
	CreateWithdrawalRequest(ctx context.Context, req *model.WithdrawalRequest) error
	SetConversationState(ctx context.Context, userID int64, step model.ConversationStep, data model.StateData) error
	ClearConversationState(ctx context.Context, userID int64) error
}

type AdminRepository interface {
	CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error)
	MarkAccountsPaid(ctx context.Context, userID int64, count int) (int, error)
	MarkOldestWithdrawalProcessed(ctx context.Context, userID int64) error
	SetBuyer(ctx context.Context, phoneNumber string, buyerUserID int64) error
	GetStats(ctx context.Context) (*model.Stats, error)
}

type ReceiptRepository interface {
	GetUserAccounts(ctx context.Context, userID int64) ([]*model.Account, error)
	CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error)
	GetUserWithdrawals(ctx context.Context, userID int64) ([]*model.WithdrawalRequest, error)
}
