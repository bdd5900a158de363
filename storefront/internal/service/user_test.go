package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booktime/storefront/internal/common"
	inErrors "github.com/booktime/storefront/internal/errors"
	"github.com/booktime/storefront/storefront/pkg/request"
)

const testSecretKey = "test-secret"

func newTestUserService() *UserService {
	return NewUserService(testSecretKey, 10*time.Millisecond)
}

func TestUserLoginEstablishesSession(t *testing.T) {
	c := context.Background()
	svc := newTestUserService()

	result, err := svc.Login(c, request.LoginRequest{
		Email:    "student@booktime.pk",
		Password: "whatever",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", result.User.Name)
	assert.Equal(t, "student@booktime.pk", result.User.Email)
	assert.Equal(t, "👤", result.User.Avatar)
	assert.NotEmpty(t, result.Token)

	current, ok := svc.CurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, result.User.ID, current.ID)
}

func TestUserLoginTokenCarriesUserId(t *testing.T) {
	c := context.Background()
	svc := newTestUserService()

	result, err := svc.Login(c, request.LoginRequest{
		Email:    "student@booktime.pk",
		Password: "whatever",
	})
	require.NoError(t, err)

	token, err := common.VerifyToken(c, result.Token, testSecretKey)
	require.NoError(t, err)
	userId, err := common.UserIdFromJwtToken(common.AttachJwtToken(c, token))
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userId)
}

func TestUserRegisterUsesFormName(t *testing.T) {
	c := context.Background()
	svc := newTestUserService()

	result, err := svc.Register(c, request.RegisterRequest{
		Name:            "Ayesha Khan",
		Email:           "ayesha@booktime.pk",
		Password:        "whatever",
		ConfirmPassword: "whatever",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ayesha Khan", result.User.Name)
	current, ok := svc.CurrentUser(c)
	assert.True(t, ok)
	assert.Equal(t, "Ayesha Khan", current.Name)
}

func TestUserLoginCancelledLeavesNoSession(t *testing.T) {
	svc := NewUserService(testSecretKey, time.Second)
	c, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(c, request.LoginRequest{
		Email:    "student@booktime.pk",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, inErrors.ErrLoginCancelled)
	_, ok := svc.CurrentUser(context.Background())
	assert.False(t, ok)
}

func TestUserLogoutClearsSession(t *testing.T) {
	c := context.Background()
	svc := newTestUserService()
	_, err := svc.Login(c, request.LoginRequest{
		Email:    "student@booktime.pk",
		Password: "whatever",
	})
	require.NoError(t, err)

	svc.Logout(c)

	_, ok := svc.CurrentUser(c)
	assert.False(t, ok)
}

func TestUserLogoutWithoutSessionIsNoop(t *testing.T) {
	c := context.Background()
	svc := newTestUserService()

	assert.NotPanics(t, func() {
		svc.Logout(c)
	})
	_, ok := svc.CurrentUser(c)
	assert.False(t, ok)
}

func TestUserSubscribersFireOnSessionChange(t *testing.T) {
	c := context.Background()
	svc := newTestUserService()
	fired := 0
	svc.Subscribe(func() { fired++ })

	_, err := svc.Login(c, request.LoginRequest{
		Email:    "student@booktime.pk",
		Password: "whatever",
	})
	require.NoError(t, err)
	svc.Logout(c)

	assert.Equal(t, 2, fired)
}
