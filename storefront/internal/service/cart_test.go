package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/booktime/storefront/internal/config"
	"github.com/booktime/storefront/storefront/pkg/response"
)

func testStorefrontConfig() config.Storefront {
	return config.Storefront{
		CurrencySymbol:    "₨",
		DeliveryFee:       150,
		NotificationTTLMs: 3000,
		LoginDelayMs:      1500,
	}
}

func newTestCart() (*CartService, *NotificationService) {
	notifications := NewNotificationService(time.Minute)
	return NewCartService(notifications, testStorefrontConfig()), notifications
}

func newTestProduct(name string, price int64) response.Product {
	return response.Product{
		ID:      uuid.New(),
		Name:    name,
		Price:   decimal.NewFromInt(price),
		InStock: true,
	}
}

func TestCartAddItemAccumulates(t *testing.T) {
	tests := []struct {
		name             string
		quantities       []int
		expectedQuantity int
	}{
		{
			name:             "given a single add should keep its quantity",
			quantities:       []int{1},
			expectedQuantity: 1,
		},
		{
			name:             "given repeated adds should accumulate not overwrite",
			quantities:       []int{1, 2},
			expectedQuantity: 3,
		},
		{
			name:             "given many adds should sum all quantities",
			quantities:       []int{2, 3, 4},
			expectedQuantity: 9,
		},
		{
			name:             "given non-positive quantities should treat them as one",
			quantities:       []int{0, -5},
			expectedQuantity: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := context.Background()
			cart, _ := newTestCart()
			product := newTestProduct("Classic Spiral Notebook Pack", 500)

			for _, quantity := range test.quantities {
				cart.AddItem(c, product, quantity)
			}

			snapshot := cart.Cart(c)
			assert.Len(t, snapshot.Lines, 1)
			assert.Equal(t, test.expectedQuantity, snapshot.Lines[0].Quantity)
			assert.Equal(t, test.expectedQuantity, cart.ItemCount(c))
		})
	}
}

func TestCartAddItemMergesSameProduct(t *testing.T) {
	c := context.Background()
	cart, _ := newTestCart()
	product := newTestProduct("Premium Gel Pen Set", 500)

	cart.AddItem(c, product, 1)
	cart.AddItem(c, product, 2)

	snapshot := cart.Cart(c)
	assert.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 3, snapshot.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(1500).Equal(cart.Total(c)))
}

func TestCartTotalAndItemCount(t *testing.T) {
	c := context.Background()
	cart, _ := newTestCart()

	assert.True(t, decimal.Zero.Equal(cart.Total(c)))
	assert.Equal(t, 0, cart.ItemCount(c))

	cart.AddItem(c, newTestProduct("Watercolor Paint Set", 1500), 1)
	cart.AddItem(c, newTestProduct("Classic Spiral Notebook Pack", 850), 2)

	assert.True(t, decimal.NewFromInt(3200).Equal(cart.Total(c)))
	assert.Equal(t, 3, cart.ItemCount(c))
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectedLines int
		expectedCount int
	}{
		{
			name:          "given positive quantity should set it absolutely",
			quantity:      7,
			expectedLines: 1,
			expectedCount: 7,
		},
		{
			name:          "given zero quantity should remove the line",
			quantity:      0,
			expectedLines: 0,
			expectedCount: 0,
		},
		{
			name:          "given negative quantity should remove the line",
			quantity:      -5,
			expectedLines: 0,
			expectedCount: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := context.Background()
			cart, _ := newTestCart()
			product := newTestProduct("Sketchbook A3", 1200)
			cart.AddItem(c, product, 3)

			cart.UpdateQuantity(c, product.ID, test.quantity)

			snapshot := cart.Cart(c)
			assert.Len(t, snapshot.Lines, test.expectedLines)
			assert.Equal(t, test.expectedCount, cart.ItemCount(c))
		})
	}
}

func TestCartUpdateQuantityAbsentIdNeverCreatesLine(t *testing.T) {
	c := context.Background()
	cart, _ := newTestCart()

	cart.UpdateQuantity(c, uuid.New(), 4)

	assert.Empty(t, cart.Cart(c).Lines)
}

func TestCartRemoveItemAbsentIdIsSilentNoop(t *testing.T) {
	c := context.Background()
	cart, notifications := newTestCart()
	product := newTestProduct("Geometry Box Deluxe", 950)
	cart.AddItem(c, product, 1)
	before := len(notifications.List(c))

	assert.NotPanics(t, func() {
		cart.RemoveItem(c, uuid.New())
	})

	assert.Len(t, cart.Cart(c).Lines, 1)
	assert.Len(t, notifications.List(c), before)
}

func TestCartRemoveItemNotifies(t *testing.T) {
	c := context.Background()
	cart, notifications := newTestCart()
	product := newTestProduct("Highlighter Pastel Pack", 520)
	cart.AddItem(c, product, 1)
	before := len(notifications.List(c))

	cart.RemoveItem(c, product.ID)

	assert.Empty(t, cart.Cart(c).Lines)
	items := notifications.List(c)
	assert.Len(t, items, before+1)
	assert.Equal(t, "Removed Highlighter Pastel Pack from cart", items[len(items)-1].Message)
	assert.Equal(t, KindInfo, items[len(items)-1].Kind)
}

func TestCartClearIsIdempotent(t *testing.T) {
	c := context.Background()
	cart, notifications := newTestCart()
	cart.AddItem(c, newTestProduct("Mechanical Pencil Duo", 380), 2)

	cart.Clear(c)
	before := len(notifications.List(c))
	assert.NotPanics(t, func() {
		cart.Clear(c)
	})

	assert.Empty(t, cart.Cart(c).Lines)
	assert.True(t, decimal.Zero.Equal(cart.Total(c)))
	// clearing an empty cart still notifies
	assert.Len(t, notifications.List(c), before+1)
}

func TestCartVisibility(t *testing.T) {
	c := context.Background()
	cart, _ := newTestCart()

	assert.False(t, cart.IsOpen(c))

	cart.AddItem(c, newTestProduct("Ergonomic School Backpack", 3500), 1)
	assert.True(t, cart.IsOpen(c), "adding an item forces the slideout open")

	cart.Close(c)
	assert.False(t, cart.IsOpen(c))

	cart.Open(c)
	assert.True(t, cart.IsOpen(c))
}

func TestCartSummaryAddsDeliveryFee(t *testing.T) {
	c := context.Background()
	cart, _ := newTestCart()
	cart.AddItem(c, newTestProduct("Scientific Calculator FX-991", 4800), 1)

	summary := cart.Summary(c)

	assert.Equal(t, "₨", summary.Currency)
	assert.True(t, decimal.NewFromInt(4800).Equal(summary.Subtotal))
	assert.True(t, decimal.NewFromInt(150).Equal(summary.DeliveryFee))
	assert.True(t, decimal.NewFromInt(4950).Equal(summary.Total))
}

func TestCartNotificationsOnAdd(t *testing.T) {
	c := context.Background()
	cart, notifications := newTestCart()
	product := newTestProduct("Oxford English Dictionary", 2200)

	cart.AddItem(c, product, 1)
	items := notifications.List(c)
	assert.Len(t, items, 1)
	assert.Equal(t, "Added Oxford English Dictionary to cart", items[0].Message)

	cart.AddItem(c, product, 1)
	items = notifications.List(c)
	assert.Len(t, items, 2)
	assert.Equal(t, "Updated Oxford English Dictionary quantity in cart", items[1].Message)
}

func TestCartSubscribersFireOnMutation(t *testing.T) {
	c := context.Background()
	cart, _ := newTestCart()
	fired := 0
	cart.Subscribe(func() { fired++ })
	product := newTestProduct("World Atlas Illustrated", 1800)

	cart.AddItem(c, product, 1)
	cart.UpdateQuantity(c, product.ID, 2)
	cart.RemoveItem(c, product.ID)
	cart.Clear(c)

	assert.Equal(t, 4, fired)
}
