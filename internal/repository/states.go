package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tg_account_bot/internal/model"

	"github.com/goccy/go-json"
)

type conversationState struct {
	UserID    int64     `db:"user_id"`
	Step      string    `db:"step"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

// SetConversationState upserts the user's dialog state. The primary key
// on user_id keeps the "one state per user" invariant.
func (r *Repository) SetConversationState(ctx context.Context, userID int64, step model.ConversationStep, data model.StateData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode state data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO conversation_states (user_id, step, data, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET step = EXCLUDED.step, data = EXCLUDED.data, created_at = NOW()`,
		userID, string(step), string(payload))
	if err != nil {
		return fmt.Errorf("failed to set conversation state: %w", err)
	}
	return nil
}

func (r *Repository) GetConversationState(ctx context.Context, userID int64) (*model.ConversationState, error) {
	var row conversationState
	err := r.db.GetContext(ctx, &row,
		`SELECT user_id, step, data, created_at FROM conversation_states WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("failed to get conversation state: %w", err)
	}

	var data model.StateData
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return nil, fmt.Errorf("failed to decode state data: %w", err)
	}

	return &model.ConversationState{
		UserID:    row.UserID,
		Step:      model.ConversationStep(row.Step),
		Data:      data,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *Repository) ClearConversationState(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM conversation_states WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear conversation state: %w", err)
	}
	return nil
}
