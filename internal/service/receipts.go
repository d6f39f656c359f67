package service

import (
	"context"
	"fmt"
	"time"

	"tg_account_bot/internal/model"
)

// ReceiptService builds printable summaries for the receipt commands.
type ReceiptService struct {
	repo ReceiptRepository
}

func NewReceiptService(repo ReceiptRepository) *ReceiptService {
	return &ReceiptService{repo: repo}
}

// AccountReceipt summarizes the user's most recent accepted account.
// When onlySuccessful is false the latest account is used regardless of
// status (the /my_receipt behavior).
func (s *ReceiptService) AccountReceipt(ctx context.Context, userID int64, onlySuccessful bool) (*model.Receipt, error) {
	accounts, err := s.repo.GetUserAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var latest *model.Account
	for _, a := range accounts {
		if onlySuccessful && a.Status != model.AccountSuccessful {
			continue
		}
		latest = a
		break
	}
	if latest == nil {
		return nil, ErrNoAccounts
	}

	count, err := s.repo.CountSuccessfulAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	suffix := latest.PhoneNumber
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}

	return &model.Receipt{
		TransactionID: fmt.Sprintf("TG%d%s", userID, suffix),
		Type:          "Account Submission",
		Status:        string(latest.Status),
		PhoneNumber:   latest.PhoneNumber,
		UserID:        userID,
		AccountCount:  count,
		Amount:        count * AmountPerAccount,
		Reference:     fmt.Sprintf("TG%s%d", time.Now().Format("20060102"), userID),
		Date:          latest.CreatedAt,
	}, nil
}

// PaymentReceipt summarizes the user's most recent withdrawal request.
func (s *ReceiptService) PaymentReceipt(ctx context.Context, userID int64) (*model.Receipt, error) {
	count, err := s.repo.CountSuccessfulAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count == 0 {
		return nil, ErrNoAccounts
	}

	withdrawals, err := s.repo.GetUserWithdrawals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load withdrawals: %w", err)
	}
	if len(withdrawals) == 0 {
		return nil, ErrNoAccounts
	}
	latest := withdrawals[0]

	return &model.Receipt{
		TransactionID: fmt.Sprintf("PAY%d%s", userID, time.Now().Format("0102")),
		Type:          "Payment",
		Status:        string(latest.Status),
		PhoneNumber:   "",
		UserID:        userID,
		AccountCount:  latest.AccountCount,
		Amount:        latest.AccountCount * AmountPerAccount,
		BankDetails:   latest.BankDetails,
		Reference:     latest.Reference.String(),
		Date:          latest.CreatedAt,
	}, nil
}
