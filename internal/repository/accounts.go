package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tg_account_bot/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const pgUniqueViolation = "23505"

type account struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	Username      string    `db:"username"`
	PhoneNumber   string    `db:"phone_number"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	BuyerUserID   *int64    `db:"buyer_user_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (a account) toModel() *model.Account {
	return &model.Account{
		ID:            a.ID,
		UserID:        a.UserID,
		Username:      a.Username,
		PhoneNumber:   a.PhoneNumber,
		Status:        model.AccountStatus(a.Status),
		PaymentStatus: model.PaymentStatus(a.PaymentStatus),
		BuyerUserID:   a.BuyerUserID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// CreateAccount inserts a pending account row. The unique constraint on
// phone_number is the only duplicate guard; a concurrent submit of the
// same number loses here and gets ErrDuplicatePhone.
func (r *Repository) CreateAccount(ctx context.Context, userID int64, username, phoneNumber string) error {
	query, args, err := squirrel.
		Insert("accounts").
		SetMap(map[string]interface{}{
			"user_id":      userID,
			"username":     username,
			"phone_number": phoneNumber,
			"status":       string(model.AccountPending),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build account insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

func (r *Repository) PhoneExists(ctx context.Context, phoneNumber string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("accounts").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check phone existence: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) UpdateAccountStatus(ctx context.Context, phoneNumber string, status model.AccountStatus) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}
	return nil
}

func (r *Repository) GetUserAccounts(ctx context.Context, userID int64) ([]*model.Account, error) {
	query, args, err := squirrel.
		Select("*").
		From("accounts").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []account
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get user accounts: %w", err)
	}

	accounts := make([]*model.Account, len(rows))
	for i, row := range rows {
		accounts[i] = row.toModel()
	}
	return accounts, nil
}

// CountSuccessfulAccounts returns the number of accounts accepted from
// the user, the figure withdrawal requests snapshot.
func (r *Repository) CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	return r.countAccounts(ctx, squirrel.Eq{
		"user_id": userID,
		"status":  string(model.AccountSuccessful),
	})
}

func (r *Repository) CountUnpaidSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	return r.countAccounts(ctx, squirrel.Eq{
		"user_id":        userID,
		"status":         string(model.AccountSuccessful),
		"payment_status": string(model.PaymentUnpaid),
	})
}

func (r *Repository) countAccounts(ctx context.Context, pred squirrel.Eq) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("accounts").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

func (r *Repository) GetUserPhoneNumbers(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := squirrel.
		Select("phone_number").
		From("accounts").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  string(model.AccountSuccessful),
		}).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var phones []string
	if err := r.db.SelectContext(ctx, &phones, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get user phone numbers: %w", err)
	}
	return phones, nil
}

// MarkAccountsPaid flips up to count of the user's successful unpaid
// accounts to paid, oldest first, and returns how many were updated.
func (r *Repository) MarkAccountsPaid(ctx context.Context, userID int64, count int) (int, error) {
	var updated int64
	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE accounts
			SET payment_status = 'paid', updated_at = NOW()
			WHERE id IN (
				SELECT id FROM accounts
				WHERE user_id = $1 AND status = 'successful' AND payment_status = 'unpaid'
				ORDER BY created_at
				LIMIT $2
			)`, userID, count)
		if err != nil {
			return fmt.Errorf("failed to mark accounts paid: %w", err)
		}
		updated, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(updated), nil
}

func (r *Repository) SetBuyer(ctx context.Context, phoneNumber string, buyerUserID int64) error {
	query, args, err := squirrel.
		Update("accounts").
		Set("buyer_user_id", buyerUserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set buyer: %w", err)
	}
	return nil
}

func (r *Repository) GetBuyerByPhone(ctx context.Context, phoneNumber string) (int64, error) {
	query, args, err := squirrel.
		Select("buyer_user_id").
		From("accounts").
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var buyerID sql.NullInt64
	err = r.db.GetContext(ctx, &buyerID, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to get buyer: %w", err)
	}
	if !buyerID.Valid {
		return 0, ErrNotFound
	}
	return buyerID.Int64, nil
}

func (r *Repository) GetStats(ctx context.Context) (*model.Stats, error) {
	query, args, err := squirrel.
		Select("status", "COUNT(*) AS count").
		From("accounts").
		GroupBy("status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &model.Stats{ByStatus: make(map[model.AccountStatus]int, len(rows))}
	for _, row := range rows {
		stats.ByStatus[model.AccountStatus(row.Status)] = row.Count
	}
	return stats, nil
}
