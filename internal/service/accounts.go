package service

import (
	"context"
	"fmt"

	"tg_account_bot/internal/model"
)

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

func (s *AccountService) ListAccounts(ctx context.Context, userID int64) ([]*model.Account, error) {
	accounts, err := s.repo.GetUserAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Balance summarizes the user's accounts: verified is the successful
// count, unverified the rest, and the amount due covers only successful
// accounts not yet paid out.
func (s *AccountService) Balance(ctx context.Context, userID int64) (*model.Balance, error) {
	accounts, err := s.repo.GetUserAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	verified := 0
	for _, a := range accounts {
		if a.Status == model.AccountSuccessful {
			verified++
		}
	}

	unpaid, err := s.repo.CountUnpaidSuccessfulAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpaid accounts: %w", err)
	}

	return &model.Balance{
		UserID:     userID,
		Verified:   verified,
		Unverified: len(accounts) - verified,
		AmountDue:  unpaid * AmountPerAccount,
	}, nil
}

func (s *AccountService) Language(ctx context.Context, userID int64) (model.Language, error) {
	lang, err := s.repo.GetLanguage(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get language: %w", err)
	}
	return lang, nil
}

func (s *AccountService) SetLanguage(ctx context.Context, userID int64, lang model.Language) error {
	if err := s.repo.SetLanguage(ctx, userID, lang); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	return nil
}
