package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SaveSession stores the serialized login session for a phone number,
// replacing any previous blob.
func (r *Repository) SaveSession(ctx context.Context, phoneNumber string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO account_sessions (phone_number, session_data, is_active, created_at)
		VALUES ($1, $2, TRUE, NOW())
		ON CONFLICT (phone_number) DO UPDATE
		SET session_data = EXCLUDED.session_data, is_active = TRUE, created_at = NOW()`,
		phoneNumber, data)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, phoneNumber string) ([]byte, error) {
	var data []byte
	err := r.db.GetContext(ctx, &data,
		`SELECT session_data FROM account_sessions WHERE phone_number = $1 AND is_active`, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return data, nil
}

// DeactivateSession keeps the row but marks the blob unusable. Used on
// logout so a later re-login starts a fresh session.
func (r *Repository) DeactivateSession(ctx context.Context, phoneNumber string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE account_sessions SET is_active = FALSE WHERE phone_number = $1`, phoneNumber)
	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}
