package controller

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/booktime/storefront/internal/http"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/internal/service"
)

type NotificationController struct {
	service *service.NotificationService
}

func AttachNotificationController(mux *mux.Router, service *service.NotificationService) {
	controller := NotificationController{service: service}

	router := mux.PathPrefix("/notifications").Subrouter()
	router.HandleFunc("", controller.FindNotifications).Methods(http.MethodGet)
	router.HandleFunc("/{notificationId}", controller.DismissNotification).
		Methods(http.MethodDelete)
}

func (t NotificationController) FindNotifications(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "NotificationController FindNotifications")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found notifications",
		"data":       t.service.List(c),
	})
}

func (t NotificationController) DismissNotification(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "NotificationController DismissNotification")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationController DismissNotification").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing notificationId").Logger()
	logger.Trace().Msg("parsing notificationId")
	notificationId, err := uuid.Parse(mux.Vars(r)["notificationId"])
	if err != nil {
		err = fmt.Errorf("failed parsing notificationId with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}

	logger = logger.With().
		Str(log.KeyNotificationID, notificationId.String()).
		Str(log.KeyProcess, "dismissing notification").
		Logger()
	c = logger.WithContext(c)
	t.service.Dismiss(c, notificationId)
	logger.Info().Msg("dismissed notification")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "dismissed notification",
	})
}
