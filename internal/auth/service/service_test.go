package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	mockjwt "github.com/wkdev/pacelular-backend/internal/auth/jwt/mocks"
	"github.com/wkdev/pacelular-backend/internal/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const AccessToken = "some.access.token"

func newService(t *testing.T) (*service, *mockjwt.MockTokenManager) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tokenManager := mockjwt.NewMockTokenManager(ctrl)

	svc, err := New(
		config.Admin{Username: "wk", Password: "941819"},
		tokenManager,
		zap.NewNop(),
	)
	require.NoError(t, err)

	return svc, tokenManager
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(tm *mockjwt.MockTokenManager)
		expectedError error
		expectedToken string
	}{
		{
			name:     "success",
			username: "wk",
			password: "941819",
			setupMock: func(tm *mockjwt.MockTokenManager) {
				tm.EXPECT().GenerateToken("wk").Return(AccessToken, nil)
			},
			expectedToken: AccessToken,
		},
		{
			name:     "username is case insensitive and trimmed",
			username: "  WK ",
			password: "941819",
			setupMock: func(tm *mockjwt.MockTokenManager) {
				tm.EXPECT().GenerateToken("wk").Return(AccessToken, nil)
			},
			expectedToken: AccessToken,
		},
		{
			name:          "wrong password",
			username:      "wk",
			password:      "000000",
			setupMock:     func(tm *mockjwt.MockTokenManager) {},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "unknown username",
			username:      "admin",
			password:      "941819",
			setupMock:     func(tm *mockjwt.MockTokenManager) {},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "token generation error",
			username: "wk",
			password: "941819",
			setupMock: func(tm *mockjwt.MockTokenManager) {
				tm.EXPECT().GenerateToken("wk").Return("", errors.New("unexpected error"))
			},
			expectedError: errors.New("unexpected error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tokenManager := newService(t)
			tt.setupMock(tokenManager)

			token, err := svc.Login(tt.username, tt.password)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
				require.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
