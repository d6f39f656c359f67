package service

import (
	"context"
	"testing"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWithdrawalService_Begin(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(repo *mocks.MockWithdrawalRepository)
		expectedCount int
		expectedError error
	}{
		{
			name: "eligible user",
			mockSetup: func(repo *mocks.MockWithdrawalRepository) {
				repo.On("AccountsOpen", mock.Anything).Return(true, nil)
				repo.On("CountSuccessfulAccounts", mock.Anything, int64(42)).Return(3, nil)
				repo.On("SetConversationState", mock.Anything, int64(42),
					model.StepAwaitingBankDetails, model.StateData{}).Return(nil)
			},
			expectedCount: 3,
		},
		{
			name: "closed hours",
			mockSetup: func(repo *mocks.MockWithdrawalRepository) {
				repo.On("AccountsOpen", mock.Anything).Return(false, nil)
			},
			expectedError: ErrIntakeClosed,
		},
		{
			name: "no successful accounts",
			mockSetup: func(repo *mocks.MockWithdrawalRepository) {
				repo.On("AccountsOpen", mock.Anything).Return(true, nil)
				repo.On("CountSuccessfulAccounts", mock.Anything, int64(42)).Return(0, nil)
			},
			expectedError: ErrNoAccounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockWithdrawalRepository{}
			tt.mockSetup(mockRepo)

			service := NewWithdrawalService(mockRepo)
			count, err := service.Begin(context.Background(), 42)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCount, count)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWithdrawalService_SubmitBankDetails(t *testing.T) {
	t.Run("snapshots account count at creation", func(t *testing.T) {
		mockRepo := &mocks.MockWithdrawalRepository{}
		mockRepo.On("CountSuccessfulAccounts", mock.Anything, int64(42)).Return(3, nil)
		mockRepo.On("GetUserPhoneNumbers", mock.Anything, int64(42)).
			Return([]string{"+2348167757987", "+2348031234567"}, nil)
		mockRepo.On("CreateWithdrawalRequest", mock.Anything,
			mock.MatchedBy(func(req *model.WithdrawalRequest) bool {
				return req.UserID == 42 &&
					req.AccountCount == 3 &&
					req.BankDetails == "9131085651 OPay Bashir Rabiu" &&
					req.Status == model.WithdrawalPending
			})).Return(nil)
		mockRepo.On("ClearConversationState", mock.Anything, int64(42)).Return(nil)

		service := NewWithdrawalService(mockRepo)
		req, phones, err := service.SubmitBankDetails(context.Background(), 42, "seller",
			"9131085651 OPay Bashir Rabiu")

		assert.NoError(t, err)
		assert.Equal(t, 3, req.AccountCount)
		assert.Len(t, phones, 2)
		assert.NotEqual(t, "", req.Reference.String())
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects short details without clearing state", func(t *testing.T) {
		mockRepo := &mocks.MockWithdrawalRepository{}

		service := NewWithdrawalService(mockRepo)
		_, _, err := service.SubmitBankDetails(context.Background(), 42, "seller", "short")

		assert.ErrorIs(t, err, ErrBankDetailsShort)
		mockRepo.AssertExpectations(t)
	})
}
