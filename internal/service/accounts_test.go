package service

import (
	"context"
	"testing"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccountService_Balance(t *testing.T) {
	mockRepo := &mocks.MockAccountRepository{}
	mockRepo.On("GetUserAccounts", mock.Anything, int64(42)).Return([]*model.Account{
		{PhoneNumber: "+2348167757987", Status: model.AccountSuccessful},
		{PhoneNumber: "+2348031234567", Status: model.AccountSuccessful},
		{PhoneNumber: "+2348099999999", Status: model.AccountPending},
	}, nil)
	mockRepo.On("CountUnpaidSuccessfulAccounts", mock.Anything, int64(42)).Return(1, nil)

	service := NewAccountService(mockRepo)
	balance, err := service.Balance(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, 2, balance.Verified)
	assert.Equal(t, 1, balance.Unverified)
	assert.Equal(t, AmountPerAccount, balance.AmountDue)
}

func TestAccountService_Language(t *testing.T) {
	mockRepo := &mocks.MockAccountRepository{}
	mockRepo.On("GetLanguage", mock.Anything, int64(42)).Return(model.LanguageHausa, nil)
	mockRepo.On("SetLanguage", mock.Anything, int64(42), model.LanguageEnglish).Return(nil)

	service := NewAccountService(mockRepo)

	lang, err := service.Language(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, model.LanguageHausa, lang)

	assert.NoError(t, service.SetLanguage(context.Background(), 42, model.LanguageEnglish))
	mockRepo.AssertExpectations(t)
}
