package service

import (
	"context"
	"fmt"
	"strings"

	"tg_account_bot/internal/model"

	"github.com/google/uuid"
)

const minBankDetailsLen = 10

// WithdrawalService runs the payout dialog: a single bank-details
// prompt after the open-hours and account checks pass.
type WithdrawalService struct {
	repo WithdrawalRepository
}

func NewWithdrawalService(repo WithdrawalRepository) *WithdrawalService {
	return &WithdrawalService{repo: repo}
}

// Begin checks eligibility and moves the user to the bank-details step.
// Returns the successful-account count shown in the prompt.
func (s *WithdrawalService) Begin(ctx context.Context, userID int64) (int, error) {
	open, err := s.repo.AccountsOpen(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check intake status: %w", err)
	}
	if !open {
		return 0, ErrIntakeClosed
	}

	count, err := s.repo.CountSuccessfulAccounts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count == 0 {
		return 0, ErrNoAccounts
	}

	if err := s.repo.SetConversationState(ctx, userID, model.StepAwaitingBankDetails, model.StateData{}); err != nil {
		return 0, fmt.Errorf("failed to start withdrawal: %w", err)
	}
	return count, nil
}

// SubmitBankDetails stores the payout request. The account count is
// snapshotted here and never re-derived, so accounts submitted later do
// not change an existing request. The user's accepted phone numbers are
// returned for the admin notification.
func (s *WithdrawalService) SubmitBankDetails(ctx context.Context, userID int64, username, details string) (*model.WithdrawalRequest, []string, error) {
	details = strings.TrimSpace(details)
	if len(details) < minBankDetailsLen {
		return nil, nil, ErrBankDetailsShort
	}

	count, err := s.repo.CountSuccessfulAccounts(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	phones, err := s.repo.GetUserPhoneNumbers(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load phone numbers: %w", err)
	}

	req := &model.WithdrawalRequest{
		Reference:    uuid.New(),
		UserID:       userID,
		Username:     username,
		AccountCount: count,
		BankDetails:  details,
		Status:       model.WithdrawalPending,
	}
	if err := s.repo.CreateWithdrawalRequest(ctx, req); err != nil {
		return nil, nil, fmt.Errorf("failed to store withdrawal request: %w", err)
	}

	if err := s.repo.ClearConversationState(ctx, userID); err != nil {
		return nil, nil, fmt.Errorf("failed to clear withdrawal state: %w", err)
	}
	return req, phones, nil
}
