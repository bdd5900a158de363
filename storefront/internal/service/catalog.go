package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	inErrors "github.com/booktime/storefront/internal/errors"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/pkg/request"
	"github.com/booktime/storefront/storefront/pkg/response"
)

// CatalogService is the read-only data provider for the storefront: the
// product catalog, category list, physical store locations, and school
// bundles. The stores never mutate what it hands out.
type CatalogService struct {
	products   []response.Product
	categories []response.Category
	stores     []response.Store
	bundles    []response.Bundle
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products:   seedProducts(),
		categories: seedCategories(),
		stores:     seedStores(),
		bundles:    seedBundles(),
	}
}

// FindProducts applies the catalog page filters and sort order.
func (svc *CatalogService) FindProducts(
	c context.Context,
	param request.FindProducts,
) []response.Product {
	_, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProducts").
		Logger()

	filtered := make([]response.Product, 0, len(svc.products))
	search := strings.ToLower(param.Search)
	for _, product := range svc.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Category), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		if param.Category != "" && product.Category != param.Category {
			continue
		}
		if param.MinPrice != nil && product.Price.LessThan(*param.MinPrice) {
			continue
		}
		if param.MaxPrice != nil && product.Price.GreaterThan(*param.MaxPrice) {
			continue
		}
		if param.InStockOnly && !product.InStock {
			continue
		}
		if param.MinRating > 0 && product.Rating < param.MinRating {
			continue
		}
		filtered = append(filtered, product)
	}

	switch param.SortBy {
	case "price-low":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case "price-high":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	logger.Trace().Msgf("found %d of %d products", len(filtered), len(svc.products))
	return filtered
}

func (svc *CatalogService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProductById").
		Str(log.KeyProductID, id.String()).
		Logger()

	for _, product := range svc.products {
		if product.ID == id {
			return product, nil
		}
	}
	err := fmt.Errorf("failed finding productId=%s with error=%w", id.String(), inErrors.ErrProductNotFound)
	otel.RecordError(err, span)
	logger.Info().Err(err).Msg(err.Error())
	return response.Product{}, err
}

// FindFeaturedProducts returns the home page selection.
func (svc *CatalogService) FindFeaturedProducts(c context.Context) []response.Product {
	_, span := otel.Tracer.Start(c, "CatalogService FindFeaturedProducts")
	defer span.End()

	featured := []response.Product{}
	for _, product := range svc.products {
		if product.Featured {
			featured = append(featured, product)
		}
	}
	return featured
}

func (svc *CatalogService) FindCategories(c context.Context) []response.Category {
	_, span := otel.Tracer.Start(c, "CatalogService FindCategories")
	defer span.End()

	categories := make([]response.Category, len(svc.categories))
	copy(categories, svc.categories)
	for i, category := range categories {
		count := 0
		for _, product := range svc.products {
			if product.Category == category.Name {
				count++
			}
		}
		categories[i].Count = count
	}
	return categories
}

func (svc *CatalogService) FindStores(c context.Context) []response.Store {
	_, span := otel.Tracer.Start(c, "CatalogService FindStores")
	defer span.End()

	stores := make([]response.Store, len(svc.stores))
	copy(stores, svc.stores)
	return stores
}

func (svc *CatalogService) FindBundles(c context.Context) []response.Bundle {
	_, span := otel.Tracer.Start(c, "CatalogService FindBundles")
	defer span.End()

	bundles := make([]response.Bundle, len(svc.bundles))
	copy(bundles, svc.bundles)
	return bundles
}
