package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	inHttp "github.com/booktime/storefront/internal/http"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/internal/service"
	"github.com/booktime/storefront/storefront/pkg/request"
)

type CatalogController struct {
	service *service.CatalogService
}

func AttachCatalogController(mux *mux.Router, service *service.CatalogService) {
	controller := CatalogController{service: service}

	mux.HandleFunc("/products", controller.FindProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/featured", controller.FindFeaturedProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{productId}", controller.FindProductById).Methods(http.MethodGet)
	mux.HandleFunc("/categories", controller.FindCategories).Methods(http.MethodGet)
	mux.HandleFunc("/stores", controller.FindStores).Methods(http.MethodGet)
	mux.HandleFunc("/bundles", controller.FindBundles).Methods(http.MethodGet)
}

func (t CatalogController) FindProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing query filters").Logger()
	logger.Trace().Msg("parsing query filters")
	param, err := parseFindProducts(r)
	if err != nil {
		err = fmt.Errorf("failed parsing query filters with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("parsed query filters")

	logger = logger.With().Str(log.KeyProcess, "validating query filters").Logger()
	logger.Trace().Msg("validating query filters")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, param); err != nil {
		err = fmt.Errorf("failed validating query filters with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Trace().Msg("validated query filters")

	c = logger.WithContext(c)
	products := t.service.FindProducts(c, param)

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found products",
		"data":       products,
	})
}

func parseFindProducts(r *http.Request) (request.FindProducts, error) {
	query := r.URL.Query()
	param := request.FindProducts{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		SortBy:   query.Get("sort_by"),
	}

	if raw := query.Get("min_price"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return request.FindProducts{}, fmt.Errorf("invalid min_price=%s with error=%w", raw, err)
		}
		param.MinPrice = &minPrice
	}
	if raw := query.Get("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return request.FindProducts{}, fmt.Errorf("invalid max_price=%s with error=%w", raw, err)
		}
		param.MaxPrice = &maxPrice
	}
	if raw := query.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return request.FindProducts{}, fmt.Errorf("invalid min_rating=%s with error=%w", raw, err)
		}
		param.MinRating = minRating
	}
	if raw := query.Get("in_stock"); raw != "" {
		inStockOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return request.FindProducts{}, fmt.Errorf("invalid in_stock=%s with error=%w", raw, err)
		}
		param.InStockOnly = inStockOnly
	}
	return param, nil
}

func (t CatalogController) FindProductById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindProductById").
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
		Str(log.KeyProcess, "finding product").
		Logger()
	c = logger.WithContext(c)
	product, err := t.service.FindProductById(c, productId)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		otel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusNotFound,
			"message":    err.Error(),
		})
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found product",
		"data":       product,
	})
}

func (t CatalogController) FindFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindFeaturedProducts")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found featured products",
		"data":       t.service.FindFeaturedProducts(c),
	})
}

func (t CatalogController) FindCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindCategories")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found categories",
		"data":       t.service.FindCategories(c),
	})
}

func (t CatalogController) FindStores(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindStores")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found stores",
		"data":       t.service.FindStores(c),
	})
}

func (t CatalogController) FindBundles(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindBundles")
	defer span.End()

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "found bundles",
		"data":       t.service.FindBundles(c),
	})
}
