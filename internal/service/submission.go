package service

import (
	"context"
	"errors"
	"fmt"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/repository"
	"tg_account_bot/internal/telegram"
	"tg_account_bot/pkg/logger"
	"tg_account_bot/pkg/phone"

	"go.uber.org/zap"
)

// SubmissionService runs the account intake dialog:
// idle -> awaiting_phone -> awaiting_code -> idle.
type SubmissionService struct {
	repo            SubmissionRepository
	client          AccountClient
	accountPassword string
}

func NewSubmissionService(repo SubmissionRepository, client AccountClient, accountPassword string) *SubmissionService {
	return &SubmissionService{
		repo:            repo,
		client:          client,
		accountPassword: accountPassword,
	}
}

// Begin starts a new submission dialog. Fails with ErrIntakeClosed
// outside operating hours; any previous dialog state is discarded.
func (s *SubmissionService) Begin(ctx context.Context, userID int64) error {
	open, err := s.repo.AccountsOpen(ctx)
	if err != nil {
		return fmt.Errorf("failed to check intake status: %w", err)
	}
	if !open {
		return ErrIntakeClosed
	}

	if err := s.repo.SetConversationState(ctx, userID, model.StepAwaitingPhone, model.StateData{}); err != nil {
		return fmt.Errorf("failed to start submission: %w", err)
	}
	return nil
}

// SubmitPhone validates and normalizes the seller's number, checks for
// duplicates and asks the platform for a login code. It returns the
// normalized number on success. Validation failures leave the dialog
// where it is; duplicate and adapter failures reset it.
func (s *SubmissionService) SubmitPhone(ctx context.Context, userID int64, raw string) (string, error) {
	log := logger.Logger()

	if !phone.IsValid(raw) {
		return "", ErrInvalidPhone
	}
	normalized := phone.Normalize(raw)

	exists, err := s.repo.PhoneExists(ctx, normalized)
	if err != nil {
		s.clear(ctx, userID)
		return "", fmt.Errorf("failed to check phone: %w", err)
	}
	if exists {
		s.clear(ctx, userID)
		return normalized, ErrDuplicatePhone
	}

	if err := s.client.RequestCode(ctx, normalized); err != nil {
		log.Warn("code request failed",
			zap.String("phone", normalized), zap.Error(err))
		s.clear(ctx, userID)
		return normalized, ErrCodeRequestFailed
	}

	err = s.repo.SetConversationState(ctx, userID, model.StepAwaitingCode,
		model.StateData{PhoneNumber: normalized})
	if err != nil {
		s.clear(ctx, userID)
		return normalized, fmt.Errorf("failed to advance submission: %w", err)
	}
	return normalized, nil
}

// SubmitCode completes the login with the one-time code. A rejected or
// expired code keeps the dialog in awaiting_code so the seller can try
// again without resending the phone number; a 2FA-protected account or
// an unexpected failure resets the dialog.
func (s *SubmissionService) SubmitCode(ctx context.Context, userID int64, username, code string) error {
	log := logger.Logger()

	if !phone.IsValidLoginCode(code) {
		return ErrInvalidCodeFormat
	}

	state, err := s.repo.GetConversationState(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoState) {
			return ErrNoPhoneCollected
		}
		return fmt.Errorf("failed to load submission state: %w", err)
	}
	if state.Step != model.StepAwaitingCode || state.Data.PhoneNumber == "" {
		s.clear(ctx, userID)
		return ErrNoPhoneCollected
	}
	phoneNumber := state.Data.PhoneNumber

	if err := s.client.SignIn(ctx, phoneNumber, code); err != nil {
		switch {
		case errors.Is(err, telegram.ErrCodeInvalid):
			return ErrCodeRejected
		case errors.Is(err, telegram.ErrCodeExpired):
			return ErrCodeExpired
		case errors.Is(err, telegram.ErrPasswordNeeded):
			s.clear(ctx, userID)
			return ErrPasswordProtected
		}
		log.Error("sign in failed",
			zap.String("phone", phoneNumber), zap.Error(err))
		s.clear(ctx, userID)
		return ErrLoginFailed
	}

	if err := s.repo.CreateAccount(ctx, userID, username, phoneNumber); err != nil {
		s.clear(ctx, userID)
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("failed to store account: %w", err)
	}

	// Best effort; failure here does not fail the submission.
	if err := s.client.SetPassword(ctx, phoneNumber, s.accountPassword); err != nil {
		log.Warn("password change failed",
			zap.String("phone", phoneNumber), zap.Error(err))
	}

	if err := s.repo.UpdateAccountStatus(ctx, phoneNumber, model.AccountSuccessful); err != nil {
		s.clear(ctx, userID)
		return fmt.Errorf("failed to finalize account: %w", err)
	}

	log.Info("account accepted",
		zap.Int64("user_id", userID), zap.String("phone", phoneNumber))

	s.clear(ctx, userID)
	return nil
}

// Cancel aborts whatever dialog the user is in.
func (s *SubmissionService) Cancel(ctx context.Context, userID int64) error {
	return s.repo.ClearConversationState(ctx, userID)
}

// CurrentStep returns the user's dialog position, or an empty step when
// no dialog is active.
func (s *SubmissionService) CurrentStep(ctx context.Context, userID int64) (model.ConversationStep, error) {
	state, err := s.repo.GetConversationState(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoState) {
			return "", nil
		}
		return "", err
	}
	return state.Step, nil
}

func (s *SubmissionService) clear(ctx context.Context, userID int64) {
	if err := s.repo.ClearConversationState(ctx, userID); err != nil {
		logger.Logger().Error("failed to clear conversation state",
			zap.Int64("user_id", userID), zap.Error(err))
	}
}
