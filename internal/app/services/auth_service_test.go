package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/riskwatch/internal/app/models/dto"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)
	ctx := context.Background()

	id, err := svc.AuthService.Register(ctx, &dto.RegisterRequest{Username: "advisor", Password: "pw"})
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = svc.AuthService.Register(ctx, &dto.RegisterRequest{Username: "advisor", Password: "other"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	token, err := svc.AuthService.Login(ctx, &dto.LoginRequest{Username: "advisor", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 3600, token.ExpiresIn)

	claims, err := newTestJWT().ValidateAndExtractClaims(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "advisor", claims.Username)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)
	ctx := context.Background()
	_, err := svc.AuthService.Register(ctx, &dto.RegisterRequest{Username: "advisor", Password: "pw"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "advisor", "nope"},
		{"unknown user", "ghost", "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AuthService.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)

	_, err := svc.AuthService.Register(context.Background(), &dto.RegisterRequest{Username: "", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AuthService.Register(context.Background(), &dto.RegisterRequest{Username: "a", Password: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAuthService_RegisterPasswordTooLong(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)

	// 40 runes but 80 bytes, so only bcrypt's byte limit catches it
	_, err := svc.AuthService.Register(context.Background(), &dto.RegisterRequest{Username: "advisor", Password: strings.Repeat("é", 40)})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AuthService.Register(context.Background(), &dto.RegisterRequest{Username: "advisor", Password: strings.Repeat("x", 72)})
	assert.NoError(t, err)
}

func TestAuthService_UsernamesAreExact(t *testing.T) {
	svc, _, _ := newTestServices(t, nil, nil)
	ctx := context.Background()

	first, err := svc.AuthService.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	second, err := svc.AuthService.Register(ctx, &dto.RegisterRequest{Username: " alice", Password: "pw2"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = svc.AuthService.Login(ctx, &dto.LoginRequest{Username: " alice", Password: "pw2"})
	assert.NoError(t, err)
	_, err = svc.AuthService.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
