package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/booktime/storefront/internal/errors"
	inHttp "github.com/booktime/storefront/internal/http"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/middleware"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/internal/service"
	"github.com/booktime/storefront/storefront/pkg/request"
)

type UserController struct {
	service *service.UserService
}

func AttachUserController(mux *mux.Router, service *service.UserService, secretKey string) {
	controller := UserController{service: service}

	router := mux.PathPrefix("/users").Subrouter()
	router.HandleFunc("/login", controller.Login).Methods(http.MethodPost)
	router.HandleFunc("/register", controller.Register).Methods(http.MethodPost)
	router.HandleFunc("/logout", controller.Logout).Methods(http.MethodPost)
	router.Handle(
		"/me",
		middleware.Auth(secretKey)(http.HandlerFunc(controller.CurrentUser)),
	).Methods(http.MethodGet)
}

func (t UserController) Login(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Login").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Trace().Msg("decoding requestbody")
	reqBody := request.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Object(log.KeyRequestBody, reqBody).Logger()
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Trace().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "logging in").Logger()
	c = logger.WithContext(c)
	result, err := t.service.Login(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed logging in with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("logged in")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "Welcome back!",
		"data":       result,
	})
}

func (t UserController) Register(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Register").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Trace().Msg("decoding requestbody")
	reqBody := request.RegisterRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Object(log.KeyRequestBody, reqBody).Logger()
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Trace().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "registering").Logger()
	c = logger.WithContext(c)
	result, err := t.service.Register(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed registering with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("registered")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "Account created successfully!",
		"data":       result,
	})
}

func (t UserController) Logout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController Logout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController Logout").
		Str(log.KeyProcess, "logging out").
		Logger()
	c = logger.WithContext(c)
	t.service.Logout(c)
	logger.Info().Msg("logged out")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "logged out",
	})
}

func (t UserController) CurrentUser(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "UserController CurrentUser")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "UserController CurrentUser").
		Logger()

	user, ok := t.service.CurrentUser(c)
	if !ok {
		logger.Info().
			Err(inErrors.ErrNotLoggedIn).
			Msg(inErrors.ErrNotLoggedIn.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusUnauthorized,
			"message":    inErrors.ErrNotLoggedIn.Error(),
		})
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found current user",
		"data":       user,
	})
}
