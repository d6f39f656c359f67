package service

import (
	"context"
	"testing"

	"tg_account_bot/internal/model"
	"tg_account_bot/internal/repository"
	"tg_account_bot/internal/service/mocks"
	"tg_account_bot/internal/telegram"
	"tg_account_bot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	_ = logger.Initialize("error")
}

const testPassword = "Bashir@111#"

func TestSubmissionService_Begin(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(repo *mocks.MockSubmissionRepository)
		expectedError error
	}{
		{
			name: "intake open",
			mockSetup: func(repo *mocks.MockSubmissionRepository) {
				repo.On("AccountsOpen", mock.Anything).Return(true, nil)
				repo.On("SetConversationState", mock.Anything, int64(42),
					model.StepAwaitingPhone, model.StateData{}).Return(nil)
			},
		},
		{
			name: "intake closed",
			mockSetup: func(repo *mocks.MockSubmissionRepository) {
				repo.On("AccountsOpen", mock.Anything).Return(false, nil)
			},
			expectedError: ErrIntakeClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockSubmissionRepository{}
			tt.mockSetup(mockRepo)

			service := NewSubmissionService(mockRepo, &mocks.MockAccountClient{}, testPassword)
			err := service.Begin(context.Background(), 42)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSubmissionService_SubmitPhone(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		mockSetup     func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient)
		expectedPhone string
		expectedError error
	}{
		{
			name:  "valid international number",
			input: "+2348167757987",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("PhoneExists", mock.Anything, "+2348167757987").Return(false, nil)
				client.On("RequestCode", mock.Anything, "+2348167757987").Return(nil)
				repo.On("SetConversationState", mock.Anything, int64(42),
					model.StepAwaitingCode, model.StateData{PhoneNumber: "+2348167757987"}).Return(nil)
			},
			expectedPhone: "+2348167757987",
		},
		{
			name:  "local number normalized before duplicate check",
			input: "08031234567",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("PhoneExists", mock.Anything, "+2348031234567").Return(false, nil)
				client.On("RequestCode", mock.Anything, "+2348031234567").Return(nil)
				repo.On("SetConversationState", mock.Anything, int64(42),
					model.StepAwaitingCode, model.StateData{PhoneNumber: "+2348031234567"}).Return(nil)
			},
			expectedPhone: "+2348031234567",
		},
		{
			name:          "invalid format keeps state",
			input:         "not-a-number",
			mockSetup:     func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {},
			expectedError: ErrInvalidPhone,
		},
		{
			name:  "duplicate rejected and state cleared",
			input: "+2348167757987",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("PhoneExists", mock.Anything, "+2348167757987").Return(true, nil)
				repo.On("ClearConversationState", mock.Anything, int64(42)).Return(nil)
			},
			expectedError: ErrDuplicatePhone,
		},
		{
			name:  "code request failure resets dialog",
			input: "+2348167757987",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("PhoneExists", mock.Anything, "+2348167757987").Return(false, nil)
				client.On("RequestCode", mock.Anything, "+2348167757987").
					Return(telegram.ErrFloodWait)
				repo.On("ClearConversationState", mock.Anything, int64(42)).Return(nil)
			},
			expectedError: ErrCodeRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockSubmissionRepository{}
			mockClient := &mocks.MockAccountClient{}
			tt.mockSetup(mockRepo, mockClient)

			service := NewSubmissionService(mockRepo, mockClient, testPassword)
			phone, err := service.SubmitPhone(context.Background(), 42, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPhone, phone)
			}
			mockRepo.AssertExpectations(t)
			mockClient.AssertExpectations(t)
		})
	}
}

func TestSubmissionService_SubmitCode(t *testing.T) {
	awaitingCode := func(phone string) *model.ConversationState {
		return &model.ConversationState{
			UserID: 42,
			Step:   model.StepAwaitingCode,
			Data:   model.StateData{PhoneNumber: phone},
		}
	}

	tests := []struct {
		name          string
		code          string
		mockSetup     func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient)
		expectedError error
	}{
		{
			name: "successful login",
			code: "12345",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("GetConversationState", mock.Anything, int64(42)).
					Return(awaitingCode("+2348167757987"), nil)
				client.On("SignIn", mock.Anything, "+2348167757987", "12345").Return(nil)
				repo.On("CreateAccount", mock.Anything, int64(42), "seller", "+2348167757987").Return(nil)
				client.On("SetPassword", mock.Anything, "+2348167757987", testPassword).Return(nil)
				repo.On("UpdateAccountStatus", mock.Anything, "+2348167757987",
					model.AccountSuccessful).Return(nil)
				repo.On("ClearConversationState", mock.Anything, int64(42)).Return(nil)
			},
		},
		{
			name:          "bad code format keeps state",
			code:          "1234",
			mockSetup:     func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {},
			expectedError: ErrInvalidCodeFormat,
		},
		{
			name: "rejected code keeps collected phone for retry",
			code: "12345",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("GetConversationState", mock.Anything, int64(42)).
					Return(awaitingCode("+2348167757987"), nil)
				client.On("SignIn", mock.Anything, "+2348167757987", "12345").
					Return(telegram.ErrCodeInvalid)
				// No ClearConversationState expectation: the dialog stays
				// in awaiting_code so the seller can retry.
			},
			expectedError: ErrCodeRejected,
		},
		{
			name: "expired code keeps state",
			code: "12345",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("GetConversationState", mock.Anything, int64(42)).
					Return(awaitingCode("+2348167757987"), nil)
				client.On("SignIn", mock.Anything, "+2348167757987", "12345").
					Return(telegram.ErrCodeExpired)
			},
			expectedError: ErrCodeExpired,
		},
		{
			name: "2FA protected account resets dialog",
			code: "12345",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("GetConversationState", mock.Anything, int64(42)).
					Return(awaitingCode("+2348167757987"), nil)
				client.On("SignIn", mock.Anything, "+2348167757987", "12345").
					Return(telegram.ErrPasswordNeeded)
				repo.On("ClearConversationState", mock.Anything, int64(42)).Return(nil)
			},
			expectedError: ErrPasswordProtected,
		},
		{
			name: "duplicate race lost at insert",
			code: "12345",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("GetConversationState", mock.Anything, int64(42)).
					Return(awaitingCode("+2348167757987"), nil)
				client.On("SignIn", mock.Anything, "+2348167757987", "12345").Return(nil)
				repo.On("CreateAccount", mock.Anything, int64(42), "seller", "+2348167757987").
					Return(repository.ErrDuplicatePhone)
				repo.On("ClearConversationState", mock.Anything, int64(42)).Return(nil)
			},
			expectedError: ErrDuplicatePhone,
		},
		{
			name: "no dialog in progress",
			code: "12345",
			mockSetup: func(repo *mocks.MockSubmissionRepository, client *mocks.MockAccountClient) {
				repo.On("GetConversationState", mock.Anything, int64(42)).
					Return(nil, repository.ErrNoState)
			},
			expectedError: ErrNoPhoneCollected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockSubmissionRepository{}
			mockClient := &mocks.MockAccountClient{}
			tt.mockSetup(mockRepo, mockClient)

			service := NewSubmissionService(mockRepo, mockClient, testPassword)
			err := service.SubmitCode(context.Background(), 42, "seller", tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
			mockClient.AssertExpectations(t)
		})
	}
}
