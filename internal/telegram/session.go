package telegram

import (
	"context"
	"errors"

	"tg_account_bot/internal/repository"

	"github.com/gotd/td/session"
)

// sessionStorage adapts the account_sessions table to gotd's
// session.Storage, one instance per phone number.
type sessionStorage struct {
	store SessionStore
	phone string
}

var _ session.Storage = (*sessionStorage)(nil)

func (s *sessionStorage) LoadSession(ctx context.Context) ([]byte, error) {
	data, err := s.store.GetSession(ctx, s.phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *sessionStorage) StoreSession(ctx context.Context, data []byte) error {
	return s.store.SaveSession(ctx, s.phone, data)
}
