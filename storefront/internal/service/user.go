package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/booktime/storefront/internal/common"
	inErrors "github.com/booktime/storefront/internal/errors"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/pkg/request"
	"github.com/booktime/storefront/storefront/pkg/response"
)

// UserService holds the single optional session identity. It is a demo
// stub: no credential is ever validated and login always succeeds with a
// fabricated identity, after an artificial delay. Cancelling the context
// during the delay aborts the login without touching the session.
type UserService struct {
	mu        sync.Mutex
	current   *response.User
	secretKey string
	delay     time.Duration
	listeners []func()
}

func NewUserService(secretKey string, delay time.Duration) *UserService {
	return &UserService{secretKey: secretKey, delay: delay}
}

func (svc *UserService) Subscribe(listener func()) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.listeners = append(svc.listeners, listener)
}

func (svc *UserService) notifyListeners() {
	svc.mu.Lock()
	listeners := make([]func(), len(svc.listeners))
	copy(listeners, svc.listeners)
	svc.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}

func (svc *UserService) Login(
	c context.Context,
	param request.LoginRequest,
) (response.LoginResult, error) {
	c, span := otel.Tracer.Start(c, "UserService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Login").
		Str(log.KeyEmail, param.Email).
		Logger()

	return svc.establishSession(c, logger, "John Doe", param.Email)
}

// Register behaves exactly like Login apart from taking the display name
// from the form; the password-match check happens at the request layer.
func (svc *UserService) Register(
	c context.Context,
	param request.RegisterRequest,
) (response.LoginResult, error) {
	c, span := otel.Tracer.Start(c, "UserService Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Register").
		Str(log.KeyEmail, param.Email).
		Logger()

	return svc.establishSession(c, logger, param.Name, param.Email)
}

func (svc *UserService) establishSession(
	c context.Context,
	logger zerolog.Logger,
	name string,
	email string,
) (response.LoginResult, error) {
	logger = logger.With().Str(log.KeyProcess, "establishing session").Logger()

	logger.Trace().Msgf("waiting %s before completing login", svc.delay)
	select {
	case <-time.After(svc.delay):
	case <-c.Done():
		err := fmt.Errorf("failed establishing session with error=%w", inErrors.ErrLoginCancelled)
		logger.Info().Err(err).Msg(err.Error())
		return response.LoginResult{}, err
	}

	user := response.User{
		ID:     uuid.New(),
		Name:   name,
		Email:  email,
		Avatar: "👤",
	}
	logger = logger.With().Str(log.KeyUserID, user.ID.String()).Logger()

	logger.Trace().Msg("creating session token")
	token, err := common.CreateToken(c, user.ID, svc.secretKey)
	if err != nil {
		err = fmt.Errorf("failed creating session token with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return response.LoginResult{}, err
	}

	svc.mu.Lock()
	svc.current = &user
	svc.mu.Unlock()
	logger.Info().Msg("established session")

	svc.notifyListeners()
	return response.LoginResult{User: user, Token: token}, nil
}

// Logout clears the session. It always succeeds, logged in or not.
func (svc *UserService) Logout(c context.Context) {
	c, span := otel.Tracer.Start(c, "UserService Logout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserService Logout").
		Logger()

	svc.mu.Lock()
	svc.current = nil
	svc.mu.Unlock()
	logger.Info().Msg("cleared session")

	svc.notifyListeners()
}

func (svc *UserService) CurrentUser(c context.Context) (response.User, bool) {
	_, span := otel.Tracer.Start(c, "UserService CurrentUser")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.current == nil {
		return response.User{}, false
	}
	return *svc.current, true
}
