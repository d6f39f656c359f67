package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const settingAccountsOpen = "accounts_open"

// AccountsOpen reports whether submissions are currently accepted.
// A missing row counts as open, matching the seeded default.
func (r *Repository) AccountsOpen(ctx context.Context) (bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value,
		`SELECT value FROM bot_settings WHERE key = $1`, settingAccountsOpen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return true, nil
		}
		return false, fmt.Errorf("failed to get accounts_open setting: %w", err)
	}
	return value == "true", nil
}

func (r *Repository) SetAccountsOpen(ctx context.Context, open bool) error {
	value := "false"
	if open {
		value = "true"
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bot_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		settingAccountsOpen, value)
	if err != nil {
		return fmt.Errorf("failed to set accounts_open setting: %w", err)
	}
	return nil
}
