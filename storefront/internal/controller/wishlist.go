package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inHttp "github.com/booktime/storefront/internal/http"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/internal/service"
	"github.com/booktime/storefront/storefront/pkg/request"
	"github.com/booktime/storefront/storefront/pkg/response"
)

type WishlistController struct {
	service *service.WishlistService
	cart    *service.CartService
	catalog *service.CatalogService
}

func AttachWishlistController(
	mux *mux.Router,
	service *service.WishlistService,
	cart *service.CartService,
	catalog *service.CatalogService,
) {
	controller := WishlistController{service: service, cart: cart, catalog: catalog}

	router := mux.PathPrefix("/wishlist").Subrouter()
	router.HandleFunc("", controller.FindWishlist).Methods(http.MethodGet)
	router.HandleFunc("", controller.ClearWishlist).Methods(http.MethodDelete)
	router.HandleFunc("/toggle", controller.ToggleWishlist).Methods(http.MethodPost)
	router.HandleFunc("/move-to-cart", controller.MoveWishlistToCart).Methods(http.MethodPost)
}

func (t WishlistController) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "WishlistController ToggleWishlist")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "WishlistController ToggleWishlist").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Trace().Msg("decoding requestbody")
	reqBody := request.ToggleWishlist{}
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

	logger = logger.With().Str(log.KeyProcess, "toggling wishlist entry").Logger()
	c = logger.WithContext(c)
	t.service.Toggle(c, product)
	logger.Info().Msg("toggled wishlist entry")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "toggled wishlist entry",
		"data":       t.wishlist(c),
	})
}

func (t WishlistController) FindWishlist(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "WishlistController FindWishlist")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found wishlist",
		"data":       t.wishlist(c),
	})
}

func (t WishlistController) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "WishlistController ClearWishlist")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "WishlistController ClearWishlist").
		Str(log.KeyProcess, "clearing wishlist").
		Logger()
	c = logger.WithContext(c)
	t.service.Clear(c)
	logger.Info().Msg("cleared wishlist")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cleared wishlist",
		"data":       t.wishlist(c),
	})
}

func (t WishlistController) MoveWishlistToCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "WishlistController MoveWishlistToCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "WishlistController MoveWishlistToCart").
		Str(log.KeyProcess, "moving wishlist to cart").
		Logger()
	c = logger.WithContext(c)
	t.service.MoveAllToCart(c, t.cart)
	logger.Info().Msg("moved wishlist to cart")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "moved wishlist to cart",
		"data":       t.cart.Cart(c),
	})
}

func (t WishlistController) wishlist(c context.Context) response.Wishlist {
	entries := t.service.List(c)
	return response.Wishlist{Entries: entries, Count: len(entries)}
}
