package repository

import (
	"context"
	"fmt"
	"time"

	"tg_account_bot/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type withdrawalRequest struct {
	ID           int64      `db:"id"`
	Reference    uuid.UUID  `db:"reference"`
	UserID       int64      `db:"user_id"`
	Username     string     `db:"username"`
	AccountCount int        `db:"account_count"`
	BankDetails  string     `db:"bank_details"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	ProcessedAt  *time.Time `db:"processed_at"`
}

func (w withdrawalRequest) toModel() *model.WithdrawalRequest {
	return &model.WithdrawalRequest{
		ID:           w.ID,
		Reference:    w.Reference,
		UserID:       w.UserID,
		Username:     w.Username,
		AccountCount: w.AccountCount,
		BankDetails:  w.BankDetails,
		Status:       model.WithdrawalStatus(w.Status),
		CreatedAt:    w.CreatedAt,
		ProcessedAt:  w.ProcessedAt,
	}
}

// CreateWithdrawalRequest stores a payout ask with the account count
// snapshotted by the caller at creation time.
func (r *Repository) CreateWithdrawalRequest(ctx context.Context, req *model.WithdrawalRequest) error {
	query, args, err := squirrel.
		Insert("withdrawal_requests").
		SetMap(map[string]interface{}{
			"reference":     req.Reference,
			"user_id":       req.UserID,
			"username":      req.Username,
			"account_count": req.AccountCount,
			"bank_details":  req.BankDetails,
			"status":        string(model.WithdrawalPending),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build withdrawal insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert withdrawal request: %w", err)
	}
	return nil
}

func (r *Repository) GetUserWithdrawals(ctx context.Context, userID int64) ([]*model.WithdrawalRequest, error) {
	query, args, err := squirrel.
		Select("*").
		From("withdrawal_requests").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []withdrawalRequest
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get withdrawal requests: %w", err)
	}

	requests := make([]*model.WithdrawalRequest, len(rows))
	for i, row := range rows {
		requests[i] = row.toModel()
	}
	return requests, nil
}

// MarkOldestWithdrawalProcessed closes the user's oldest pending request.
// Called when the admin confirms a payment.
func (r *Repository) MarkOldestWithdrawalProcessed(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE withdrawal_requests
		SET status = 'processed', processed_at = NOW()
		WHERE id = (
			SELECT id FROM withdrawal_requests
			WHERE user_id = $1 AND status = 'pending'
			ORDER BY created_at
			LIMIT 1
		)`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark withdrawal processed: %w", err)
	}
	return nil
}
