package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tg_account_bot/internal/model"
)

// GetLanguage returns the user's stored language preference, defaulting
// to Hausa for users who never picked one.
func (r *Repository) GetLanguage(ctx context.Context, userID int64) (model.Language, error) {
	var lang string
	err := r.db.GetContext(ctx, &lang,
		`SELECT language FROM user_prefs WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LanguageHausa, nil
		}
		return "", fmt.Errorf("failed to get language preference: %w", err)
	}
	return model.Language(lang), nil
}

func (r *Repository) SetLanguage(ctx context.Context, userID int64, lang model.Language) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_prefs (user_id, language)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET language = EXCLUDED.language`,
		userID, string(lang))
	if err != nil {
		return fmt.Errorf("failed to set language preference: %w", err)
	}
	return nil
}
