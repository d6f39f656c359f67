// Package mocks contains testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"tg_account_bot/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) AccountsOpen(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubmissionRepository) PhoneExists(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubmissionRepository) CreateAccount(ctx context.Context, userID int64, username, phoneNumber string) error {
	args := m.Called(ctx, userID, username, phoneNumber)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateAccountStatus(ctx context.Context, phoneNumber string, status model.AccountStatus) error {
	args := m.Called(ctx, phoneNumber, status)
	return args.Error(0)
}

func (m *MockSubmissionRepository) SetConversationState(ctx context.Context, userID int64, step model.ConversationStep, data model.StateData) error {
	args := m.Called(ctx, userID, step, data)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetConversationState(ctx context.Context, userID int64) (*model.ConversationState, error) {
	args := m.Called(ctx, userID)
	if state, ok := args.Get(0).(*model.ConversationState); ok {
		return state, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubmissionRepository) ClearConversationState(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAccountClient struct {
	mock.Mock
}

func (m *MockAccountClient) RequestCode(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockAccountClient) SignIn(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}

func (m *MockAccountClient) SetPassword(ctx context.Context, phone, password string) error {
	args := m.Called(ctx, phone, password)
	return args.Error(0)
}

func (m *MockAccountClient) Logout(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) AccountsOpen(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockWithdrawalRepository) CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWithdrawalRepository) GetUserPhoneNumbers(ctx context.Context, userID int64) ([]string, error) {
	args := m.Called(ctx, userID)
	if phones, ok := args.Get(0).([]string); ok {
		return phones, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWithdrawalRepository) CreateWithdrawalRequest(ctx context.Context, req *model.WithdrawalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) SetConversationState(ctx context.Context, userID int64, step model.ConversationStep, data model.StateData) error {
	args := m.Called(ctx, userID, step, data)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) ClearConversationState(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAdminRepository) MarkAccountsPaid(ctx context.Context, userID int64, count int) (int, error) {
	args := m.Called(ctx, userID, count)
	return args.Int(0), args.Error(1)
}

func (m *MockAdminRepository) MarkOldestWithdrawalProcessed(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAdminRepository) SetBuyer(ctx context.Context, phoneNumber string, buyerUserID int64) error {
	args := m.Called(ctx, phoneNumber, buyerUserID)
	return args.Error(0)
}

func (m *MockAdminRepository) GetStats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if stats, ok := args.Get(0).(*model.Stats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetUserAccounts(ctx context.Context, userID int64) ([]*model.Account, error) {
	args := m.Called(ctx, userID)
	if accounts, ok := args.Get(0).([]*model.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAccountRepository) CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) CountUnpaidSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) GetLanguage(ctx context.Context, userID int64) (model.Language, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Language), args.Error(1)
}

func (m *MockAccountRepository) SetLanguage(ctx context.Context, userID int64, lang model.Language) error {
	args := m.Called(ctx, userID, lang)
	return args.Error(0)
}

type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) GetUserAccounts(ctx context.Context, userID int64) ([]*model.Account, error) {
	args := m.Called(ctx, userID)
	if accounts, ok := args.Get(0).([]*model.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReceiptRepository) CountSuccessfulAccounts(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockReceiptRepository) GetUserWithdrawals(ctx context.Context, userID int64) ([]*model.WithdrawalRequest, error) {
	args := m.Called(ctx, userID)
	if withdrawals, ok := args.Get(0).([]*model.WithdrawalRequest); ok {
		return withdrawals, args.Error(1)
	}
	return nil, args.Error(1)
}
