package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/booktime/storefront/internal/http"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/internal/service"
	"github.com/booktime/storefront/storefront/pkg/request"
)

type CartController struct {
	service *service.CartService
	catalog *service.CatalogService
}

func AttachCartController(
	mux *mux.Router,
	service *service.CartService,
	catalog *service.CatalogService,
) {
	controller := CartController{service: service, catalog: catalog}

	router := mux.PathPrefix("/carts").Subrouter()
	router.HandleFunc("", controller.FindCart).Methods(http.MethodGet)
	router.HandleFunc("", controller.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/summary", controller.FindCartSummary).Methods(http.MethodGet)
	router.HandleFunc("/open", controller.OpenCart).Methods(http.MethodPost)
	router.HandleFunc("/close", controller.CloseCart).Methods(http.MethodPost)
	router.HandleFunc("/items", controller.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/items/{productId}", controller.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/items/{productId}", controller.RemoveCartItem).Methods(http.MethodDelete)
}

func (t CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController AddCartItem").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Trace().Msg("decoding requestbody")
	reqBody := request.AddCartItem{}
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

	logger = logger.With().
		Str(log.KeyProcess, "finding product").
		Str(log.KeyProductID, reqBody.ProductId.String()).
		Logger()
	logger.Trace().Msg("finding product")
	c = logger.WithContext(c)
	product, err := t.catalog.FindProductById(c, reqBody.ProductId)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	c = logger.WithContext(c)
	t.service.AddItem(c, product, reqBody.Quantity)
	logger.Info().Msg("added cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "added item to cart",
		"data":       t.service.Cart(c),
	})
}

func (t CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController UpdateCartItem").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing productId").Logger()
	logger.Trace().Msg("parsing productId")
	productId, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		err = fmt.Errorf("failed parsing productId with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyProductID, productId.String()).Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Trace().Msg("decoding requestbody")
	reqBody := request.UpdateCartItem{}
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
	logger.Trace().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "updating cart item").Logger()
	c = logger.WithContext(c)
	t.service.UpdateQuantity(c, productId, reqBody.Quantity)
	logger.Info().Msg("updated cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "updated cart item",
		"data":       t.service.Cart(c),
	})
}

func (t CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController RemoveCartItem").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing productId").Logger()
	logger.Trace().Msg("parsing productId")
	productId, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		err = fmt.Errorf("failed parsing productId with error=%w", err)
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
		Str(log.KeyProductID, productId.String()).
		Str(log.KeyProcess, "removing cart item").
		Logger()
	c = logger.WithContext(c)
	t.service.RemoveItem(c, productId)
	logger.Info().Msg("removed cart item")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "removed cart item",
		"data":       t.service.Cart(c),
	})
}

func (t CartController) FindCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCart")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found cart",
		"data":       t.service.Cart(c),
	})
}

func (t CartController) FindCartSummary(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCartSummary")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found cart summary",
		"data":       t.service.Summary(c),
	})
}

func (t CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController ClearCart").
		Str(log.KeyProcess, "clearing cart").
		Logger()
	c = logger.WithContext(c)
	t.service.Clear(c)
	logger.Info().Msg("cleared cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cleared cart",
		"data":       t.service.Cart(c),
	})
}

func (t CartController) OpenCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController OpenCart")
	defer span.End()

	t.service.Open(c)
	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "opened cart",
	})
}

func (t CartController) CloseCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController CloseCart")
	defer span.End()

	t.service.Close(c)
	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "closed cart",
	})
}
