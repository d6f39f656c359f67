package service

import (
	"context"
	"testing"
	"time"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReceiptService_AccountReceipt(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("latest successful account", func(t *testing.T) {
		mockRepo := &mocks.MockReceiptRepository{}
		mockRepo.On("GetUserAccounts", mock.Anything, int64(42)).Return([]*model.Account{
			{PhoneNumber: "+2348099999999", Status: model.AccountPending, CreatedAt: created.Add(time.Hour)},
			{PhoneNumber: "+2348167757987", Status: model.AccountSuccessful, CreatedAt: created},
		}, nil)
		mockRepo.On("CountSuccessfulAccounts", mock.Anything, int64(42)).Return(1, nil)

		service := NewReceiptService(mockRepo)
		receipt, err := service.AccountReceipt(context.Background(), 42, true)

		assert.NoError(t, err)
		assert.Equal(t, "TG427987", receipt.TransactionID)
		assert.Equal(t, "+2348167757987", receipt.PhoneNumber)
		assert.Equal(t, AmountPerAccount, receipt.Amount)
	})

	t.Run("no accounts", func(t *testing.T) {
		mockRepo := &mocks.MockReceiptRepository{}
		mockRepo.On("GetUserAccounts", mock.Anything, int64(42)).Return([]*model.Account{}, nil)

		service := NewReceiptService(mockRepo)
		_, err := service.AccountReceipt(context.Background(), 42, true)

		assert.ErrorIs(t, err, ErrNoAccounts)
	})
}

func TestReceiptService_PaymentReceipt(t *testing.T) {
	ref := uuid.New()
	mockRepo := &mocks.MockReceiptRepository{}
	mockRepo.On("CountSuccessfulAccounts", mock.Anything, int64(42)).Return(3, nil)
	mockRepo.On("GetUserWithdrawals", mock.Anything, int64(42)).Return([]*model.WithdrawalRequest{
		{
			Reference:    ref,
			UserID:       42,
			AccountCount: 3,
			BankDetails:  "9131085651 OPay Bashir Rabiu",
			Status:       model.WithdrawalPending,
		},
	}, nil)

	service := NewReceiptService(mockRepo)
	receipt, err := service.PaymentReceipt(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, 3*AmountPerAccount, receipt.Amount)
	assert.Equal(t, ref.String(), receipt.Reference)
	assert.Equal(t, "9131085651 OPay Bashir Rabiu", receipt.BankDetails)
}
