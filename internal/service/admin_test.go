package service

import (
	"context"
	"errors"
	"testing"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminService_MarkPaid(t *testing.T) {
	t.Run("marks accounts and closes withdrawal", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("MarkAccountsPaid", mock.Anything, int64(12345), 3).Return(3, nil)
		mockRepo.On("MarkOldestWithdrawalProcessed", mock.Anything, int64(12345)).Return(nil)

		service := NewAdminService(mockRepo, &mocks.MockAccountClient{})
		updated, err := service.MarkPaid(context.Background(), 12345, 3)

		assert.NoError(t, err)
		assert.Equal(t, 3, updated)
		mockRepo.AssertExpectations(t)
	})

	t.Run("reports partial updates", func(t *testing.T) {
		mockRepo := &mocks.MockAdminRepository{}
		mockRepo.On("MarkAccountsPaid", mock.Anything, int64(12345), 5).Return(2, nil)
		mockRepo.On("MarkOldestWithdrawalProcessed", mock.Anything, int64(12345)).Return(nil)

		service := NewAdminService(mockRepo, &mocks.MockAccountClient{})
		updated, err := service.MarkPaid(context.Background(), 12345, 5)

		assert.NoError(t, err)
		assert.Equal(t, 2, updated)
	})
}

func TestAdminService_AssignBuyer(t *testing.T) {
	mockRepo := &mocks.MockAdminRepository{}
	mockRepo.On("SetBuyer", mock.Anything, "+2348167757987", int64(999)).Return(nil)

	service := NewAdminService(mockRepo, &mocks.MockAccountClient{})
	err := service.AssignBuyer(context.Background(), "+2348167757987", 999)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAdminService_ReleaseAccount(t *testing.T) {
	t.Run("logs the session out", func(t *testing.T) {
		mockClient := &mocks.MockAccountClient{}
		mockClient.On("Logout", mock.Anything, "+2348167757987").Return(nil)

		service := NewAdminService(&mocks.MockAdminRepository{}, mockClient)
		err := service.ReleaseAccount(context.Background(), "+2348167757987")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("surfaces logout failures", func(t *testing.T) {
		mockClient := &mocks.MockAccountClient{}
		mockClient.On("Logout", mock.Anything, "+2348167757987").
			Return(errors.New("no running client"))

		service := NewAdminService(&mocks.MockAdminRepository{}, mockClient)
		err := service.ReleaseAccount(context.Background(), "+2348167757987")

		assert.Error(t, err)
	})
}

func TestAdminService_Stats(t *testing.T) {
	mockRepo := &mocks.MockAdminRepository{}
	mockRepo.On("GetStats", mock.Anything).Return(&model.Stats{
		ByStatus: map[model.AccountStatus]int{
			model.AccountSuccessful: 7,
			model.AccountPending:    2,
		},
	}, nil)

	service := NewAdminService(mockRepo, &mocks.MockAccountClient{})
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 7, stats.ByStatus[model.AccountSuccessful])
	assert.Equal(t, 2, stats.ByStatus[model.AccountPending])
}
