package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/booktime/storefront/internal/common"
	"github.com/booktime/storefront/internal/config"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/middleware"
	inOtel "github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/internal/controller"
	"github.com/booktime/storefront/storefront/internal/service"
)

func RunStorefrontService(c context.Context) {
	cfg := config.Get(c, common.AppStorefrontService)

	logger := log.Get(filepath.Join("/var/log/", common.AppStorefrontService+".log"), cfg.Application.Env).
		With().
		Str(log.KeyAppName, common.AppStorefrontService).
		Str(log.KeyTag, "main RunStorefrontService").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	shutdownFuncs, err := inOtel.InitOtelSdk(c, common.AppStorefrontService, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer func() {
		logger.Info().Msg("shutting down otel")
		if err := inOtel.ShutdownOtel(c, shutdownFuncs); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()
	logger.Info().Msg("initialized otel sdk")

	logger = logger.With().Str(log.KeyProcess, "initializing stores").Logger()
	logger.Info().Msg("initializing stores")
	notifications := service.NewNotificationService(
		time.Duration(cfg.Storefront.NotificationTTLMs) * time.Millisecond,
	)
	cartStore := service.NewCartService(notifications, cfg.Storefront)
	wishlistStore := service.NewWishlistService(notifications)
	userStore := service.NewUserService(
		cfg.Application.SecretKey,
		time.Duration(cfg.Storefront.LoginDelayMs)*time.Millisecond,
	)
	catalog := service.NewCatalogService()
	logger.Info().Msg("initialized stores")

	logger = logger.With().Str(log.KeyProcess, "registering store metrics").Logger()
	logger.Info().Msg("registering store metrics")
	mutations := promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_store_mutations_total",
		Help: "Number of mutations applied to each session store.",
	}, []string{"store"})
	cartStore.Subscribe(func() { mutations.WithLabelValues("cart").Inc() })
	wishlistStore.Subscribe(func() { mutations.WithLabelValues("wishlist").Inc() })
	notifications.Subscribe(func() { mutations.WithLabelValues("notification").Inc() })
	userStore.Subscribe(func() { mutations.WithLabelValues("user").Inc() })
	logger.Info().Msg("registered store metrics")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.Use(otelmux.Middleware(common.AppStorefrontService))
	router.Use(middleware.Logging)
	router.Use(middleware.RecoverPanic)
	router.Handle("/metrics", promhttp.Handler())
	controller.AttachCatalogController(router, catalog)
	controller.AttachCartController(router, cartStore, catalog)
	controller.AttachWishlistController(router, wishlistStore, cartStore, catalog)
	controller.AttachNotificationController(router, notifications)
	controller.AttachUserController(router, userStore, cfg.Application.SecretKey)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  45 * time.Second,
		WriteTimeout: 45 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger := logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("start listening request at %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("error=%w occured while server is running", err)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutdown server").Logger()
	logger.Info().Msg("received interuption signal shutting down")
	err = server.Shutdown(c)
	if err != nil {
		err = fmt.Errorf("failed shutting down server with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("server completely shutdown")
}
