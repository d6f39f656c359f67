package service

import (
	"context"
	"fmt"

	"tg_account_bot/internal/model"
	"tg_account_bot/pkg/logger"

	"go.uber.org/zap"
)

type AdminService struct {
	repo   AdminRepository
	client AccountClient
}

func NewAdminService(repo AdminRepository, client AccountClient) *AdminService {
	return &AdminService{repo: repo, client: client}
}

func (s *AdminService) UserAccountCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.repo.CountSuccessfulAccounts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count user accounts: %w", err)
	}
	return count, nil
}

// MarkPaid flips up to count of the user's successful unpaid accounts
// to paid and closes their oldest pending withdrawal. Returns how many
// accounts actually changed.
func (s *AdminService) MarkPaid(ctx context.Context, userID int64, count int) (int, error) {
	updated, err := s.repo.MarkAccountsPaid(ctx, userID, count)
	if err != nil {
		return 0, fmt.Errorf("failed to mark accounts paid: %w", err)
	}

	if err := s.repo.MarkOldestWithdrawalProcessed(ctx, userID); err != nil {
		// The accounts are already paid; only log the bookkeeping miss.
		logger.Logger().Warn("failed to close withdrawal request",
			zap.Int64("user_id", userID), zap.Error(err))
	}

	logger.Logger().Info("accounts marked paid",
		zap.Int64("user_id", userID), zap.Int("count", updated))
	return updated, nil
}

// AssignBuyer records who a sold account belongs to so that incoming
// login codes can be routed to them.
func (s *AdminService) AssignBuyer(ctx context.Context, phoneNumber string, buyerID int64) error {
	if err := s.repo.SetBuyer(ctx, phoneNumber, buyerID); err != nil {
		return fmt.Errorf("failed to assign buyer: %w", err)
	}
	logger.Logger().Info("buyer assigned",
		zap.String("phone", phoneNumber), zap.Int64("buyer_id", buyerID))
	return nil
}

// ReleaseAccount logs the stored session out of the account and
// deactivates it, handing full control back to whoever holds the phone.
func (s *AdminService) ReleaseAccount(ctx context.Context, phoneNumber string) error {
	if err := s.client.Logout(ctx, phoneNumber); err != nil {
		return fmt.Errorf("failed to release account: %w", err)
	}
	logger.Logger().Info("account released", zap.String("phone", phoneNumber))
	return nil
}

func (s *AdminService) Stats(ctx context.Context) (*model.Stats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}
