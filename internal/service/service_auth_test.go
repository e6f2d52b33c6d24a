package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-cred-vault/internal/config"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/store"
	"github.com/MKhiriev/go-cred-vault/internal/utils"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepository is a hand-rolled store.UserRepository double with
// func fields, so each test installs exactly the behavior it needs.
type fakeUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, user models.User) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByLogin(ctx context.Context, user models.User) (models.User, error) {
	return f.findUserByLoginFn(ctx, user)
}

func testAuthConfig() config.Auth {
	return config.Auth{
		PasswordHashKey: "hash-key",
		TokenSignKey:    "sign-key",
		TokenIssuer:     "go-cred-vault",
		TokenDuration:   time.Hour,
	}
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	var stored models.User
	repo := &fakeUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			stored = user
			user.UserID = 1
			return user, nil
		},
	}

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "john", AuthHash: "plaintext-password"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)

	// The repository must never see the plaintext password.
	assert.NotEqual(t, "plaintext-password", stored.AuthHash)
	assert.Equal(t, utils.HashString("plaintext-password", "hash-key"), stored.AuthHash)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())

	tests := []struct {
		name string
		user models.User
	}{
		{name: "empty login", user: models.User{AuthHash: "pw"}},
		{name: "empty password", user: models.User{Login: "john"}},
		{name: "both empty", user: models.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateLogin(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "john", AuthHash: "pw"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hashed := utils.HashString("secret", "hash-key")
	repo := &fakeUserRepository{
		findUserByLoginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Login: "john", AuthHash: hashed}, nil
		},
	}

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	found, err := svc.Login(context.Background(), models.User{Login: "john", AuthHash: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByLoginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Login: "john", AuthHash: utils.HashString("right", "hash-key")}, nil
		},
	}

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "john", AuthHash: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByLoginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", AuthHash: "pw"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())

	foreign, err := utils.GenerateJWTToken("someone-else", 42, time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_BadConfig(t *testing.T) {
	svc := NewAuthService(&fakeUserRepository{}, config.Auth{}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTokenCreationFailed))
}
