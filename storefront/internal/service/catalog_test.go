package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/booktime/storefront/internal/errors"
	"github.com/booktime/storefront/storefront/pkg/request"
)

func TestCatalogFindProductsFilters(t *testing.T) {
	lowPrice := decimal.NewFromInt(400)
	highPrice := decimal.NewFromInt(1000)
	tests := []struct {
		name     string
		param    request.FindProducts
		expected func(t *testing.T, svc *CatalogService, names []string)
	}{
		{
			name:  "given no filters should return the whole catalog",
			param: request.FindProducts{},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.Len(t, names, len(svc.products))
			},
		},
		{
			name:  "given a search term should match name case insensitively",
			param: request.FindProducts{Search: "notebook"},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.Contains(t, names, "Classic Spiral Notebook Pack")
				assert.NotContains(t, names, "Scientific Calculator FX-991")
			},
		},
		{
			name:  "given a search term should also match description",
			param: request.FindProducts{Search: "compass"},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.Equal(t, []string{"Geometry Box Deluxe"}, names)
			},
		},
		{
			name:  "given a category should keep only that category",
			param: request.FindProducts{Category: "Books"},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.ElementsMatch(
					t,
					[]string{"Oxford English Dictionary", "World Atlas Illustrated"},
					names,
				)
			},
		},
		{
			name:  "given a price range should keep products within it",
			param: request.FindProducts{MinPrice: &lowPrice, MaxPrice: &highPrice},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.ElementsMatch(t, []string{
					"Classic Spiral Notebook Pack",
					"Hardcover Composition Book",
					"Premium Gel Pen Set",
					"Geometry Box Deluxe",
					"Highlighter Pastel Pack",
				}, names)
			},
		},
		{
			name:  "given in stock only should drop unavailable products",
			param: request.FindProducts{InStockOnly: true},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.NotContains(t, names, "Mechanical Pencil Duo")
				assert.NotContains(t, names, "Oxford English Dictionary")
				assert.Len(t, names, len(svc.products)-2)
			},
		},
		{
			name:  "given a minimum rating should drop lower rated products",
			param: request.FindProducts{MinRating: 4.7},
			expected: func(t *testing.T, svc *CatalogService, names []string) {
				assert.ElementsMatch(t, []string{
					"Premium Gel Pen Set",
					"Watercolor Paint Set",
					"Ergonomic School Backpack",
					"Scientific Calculator FX-991",
				}, names)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := context.Background()
			svc := NewCatalogService()

			products := svc.FindProducts(c, test.param)

			names := make([]string, len(products))
			for i, product := range products {
				names[i] = product.Name
			}
			test.expected(t, svc, names)
		})
	}
}

func TestCatalogFindProductsSortOrders(t *testing.T) {
	c := context.Background()
	svc := NewCatalogService()

	t.Run("given sort by name should order alphabetically", func(t *testing.T) {
		products := svc.FindProducts(c, request.FindProducts{SortBy: "name"})
		for i := 1; i < len(products); i++ {
			assert.LessOrEqual(t, products[i-1].Name, products[i].Name)
		}
	})

	t.Run("given sort by price-low should order ascending", func(t *testing.T) {
		products := svc.FindProducts(c, request.FindProducts{SortBy: "price-low"})
		for i := 1; i < len(products); i++ {
			assert.True(t, products[i-1].Price.LessThanOrEqual(products[i].Price))
		}
	})

	t.Run("given sort by price-high should order descending", func(t *testing.T) {
		products := svc.FindProducts(c, request.FindProducts{SortBy: "price-high"})
		for i := 1; i < len(products); i++ {
			assert.True(t, products[i-1].Price.GreaterThanOrEqual(products[i].Price))
		}
	})

	t.Run("given sort by rating should order descending", func(t *testing.T) {
		products := svc.FindProducts(c, request.FindProducts{SortBy: "rating"})
		for i := 1; i < len(products); i++ {
			assert.GreaterOrEqual(t, products[i-1].Rating, products[i].Rating)
		}
	})
}

func TestCatalogFindProductById(t *testing.T) {
	c := context.Background()
	svc := NewCatalogService()
	expected := svc.products[0]

	product, err := svc.FindProductById(c, expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected.Name, product.Name)

	_, err = svc.FindProductById(c, uuid.New())
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestCatalogFindFeaturedProducts(t *testing.T) {
	c := context.Background()
	svc := NewCatalogService()

	featured := svc.FindFeaturedProducts(c)

	assert.NotEmpty(t, featured)
	for _, product := range featured {
		assert.True(t, product.Featured)
	}
}

func TestCatalogFindCategoriesCountsProducts(t *testing.T) {
	c := context.Background()
	svc := NewCatalogService()

	categories := svc.FindCategories(c)

	require.Len(t, categories, 6)
	counts := map[string]int{}
	for _, category := range categories {
		counts[category.Name] = category.Count
	}
	assert.Equal(t, 2, counts["Notebooks"])
	assert.Equal(t, 3, counts["Pens & Pencils"])
	assert.Equal(t, 1, counts["Backpacks"])
}

func TestCatalogFindStoresAndBundles(t *testing.T) {
	c := context.Background()
	svc := NewCatalogService()

	stores := svc.FindStores(c)
	assert.Len(t, stores, 3)

	bundles := svc.FindBundles(c)
	assert.Len(t, bundles, 3)
	for _, bundle := range bundles {
		assert.True(t, bundle.Price.LessThanOrEqual(bundle.OriginalPrice))
		assert.NotEmpty(t, bundle.Items)
	}
}
