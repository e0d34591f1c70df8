package usecase

import (
	"context"
	"strings"
	"testing"

	"store-rating/internal/data/entity"
	"store-rating/internal/dto/request"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "usecase-test-secret",
			ExpiryHours: 24,
		},
	}
}

func TestRegister_Success(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())

	address := "221B Baker Street, London"
	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Jonathan Maxwell Harrington",
		Email:    "jon@example.com",
		Password: "Secret1!",
		Address:  &address,
	})

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully.", resp.Message)
	_, err = uuid.Parse(resp.UserID)
	assert.NoError(t, err)

	require.Len(t, repos.user.created, 1)
	created := repos.user.created[0]
	assert.Equal(t, entity.RoleUser, created.Role)
	// Stored as a bcrypt hash, never the plaintext
	assert.NotEqual(t, "Secret1!", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("Secret1!", created.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repos := newFakeRepos()
	repos.user.add(&entity.User{
		Base:  entity.Base{ID: uuid.New()},
		Email: "jon@example.com",
	})
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Jonathan Maxwell Harrington",
		Email:    "jon@example.com",
		Password: "Secret1!",
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Empty(t, repos.user.created)
}

func TestRegister_ValidationFailed(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())

	cases := []request.RegisterRequest{
		{Name: "Too Short", Email: "jon@example.com", Password: "Secret1!"},
		{Name: "Jonathan Maxwell Harrington", Email: "not-an-email", Password: "Secret1!"},
		{Name: "Jonathan Maxwell Harrington", Email: "jon@example.com", Password: "weakpass"},
	}

	for _, req := range cases {
		resp, err := svc.Register(context.Background(), &req)
		assert.Nil(t, resp)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	}

	// Nothing was persisted
	assert.Empty(t, repos.user.created)
}

func TestLogin_Success(t *testing.T) {
	repos := newFakeRepos()
	config := testConfig()
	svc := NewAuthService(repos.repo, config, zap.NewNop())

	hash, err := utils.HashPassword("Secret1!")
	require.NoError(t, err)
	userID := uuid.New()
	repos.user.add(&entity.User{
		Base:         entity.Base{ID: userID},
		Name:         "Jonathan Maxwell Harrington",
		Email:        "jon@example.com",
		PasswordHash: hash,
		Role:         entity.RoleUser,
	})

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "jon@example.com",
		Password: "Secret1!",
	})

	require.NoError(t, err)
	assert.Equal(t, "Login successful.", resp.Message)
	assert.Equal(t, userID.String(), resp.User.ID)
	assert.Equal(t, entity.RoleUser, resp.User.Role)

	// The token carries the user's identity and role
	claims, err := utils.ValidateToken(resp.Token, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, string(entity.RoleUser), claims.Role)
}

func TestRegisterThenLogin(t *testing.T) {
	repos := newFakeRepos()
	config := testConfig()
	svc := NewAuthService(repos.repo, config, zap.NewNop())

	address := "12 Main St"
	name := strings.Repeat("a", 25)
	regResp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     name,
		Email:    "newuser@example.com",
		Password: "Secret1!",
		Address:  &address,
	})
	require.NoError(t, err)

	loginResp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "newuser@example.com",
		Password: "Secret1!",
	})
	require.NoError(t, err)

	assert.Equal(t, regResp.UserID, loginResp.User.ID)
	assert.Equal(t, entity.RoleUser, loginResp.User.Role)
	assert.NotEmpty(t, loginResp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())

	hash, err := utils.HashPassword("Secret1!")
	require.NoError(t, err)
	repos.user.add(&entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Email:        "jon@example.com",
		PasswordHash: hash,
		Role:         entity.RoleUser,
	})

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "jon@example.com",
		Password: "Wrong1!pass",
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Secret1!",
	})

	assert.Nil(t, resp)
	require.Error(t, err)
	// Same message as a wrong password; no account enumeration
	assert.EqualError(t, err, "invalid email or password")
}

func TestUpdatePassword_Success(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())
	userID := uuid.New()

	err := svc.UpdatePassword(context.Background(), userID, &request.UpdatePasswordRequest{
		NewPassword: "Changed2@",
	})

	require.NoError(t, err)
	stored, ok := repos.user.passwords[userID]
	require.True(t, ok)
	assert.True(t, utils.CheckPasswordHash("Changed2@", stored))
}

func TestUpdatePassword_WeakPassword(t *testing.T) {
	repos := newFakeRepos()
	svc := NewAuthService(repos.repo, testConfig(), zap.NewNop())
	userID := uuid.New()

	err := svc.UpdatePassword(context.Background(), userID, &request.UpdatePasswordRequest{
		NewPassword: "noupper1!",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repos.user.passwords)
}
