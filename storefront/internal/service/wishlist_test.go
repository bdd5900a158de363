package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestWishlist() (*WishlistService, *NotificationService) {
	notifications := NewNotificationService(time.Minute)
	return NewWishlistService(notifications), notifications
}

func TestWishlistToggleIsSelfInverse(t *testing.T) {
	c := context.Background()
	wishlist, _ := newTestWishlist()
	product := newTestProduct("Premium Gel Pen Set", 650)

	assert.False(t, wishlist.Contains(c, product.ID))

	wishlist.Toggle(c, product)
	assert.True(t, wishlist.Contains(c, product.ID))

	wishlist.Toggle(c, product)
	assert.False(t, wishlist.Contains(c, product.ID))
	assert.Empty(t, wishlist.List(c))
}

func TestWishlistToggleNotifies(t *testing.T) {
	c := context.Background()
	wishlist, notifications := newTestWishlist()
	product := newTestProduct("Sketchbook A3", 1200)

	wishlist.Toggle(c, product)
	items := notifications.List(c)
	assert.Len(t, items, 1)
	assert.Equal(t, "Added Sketchbook A3 to wishlist", items[0].Message)
	assert.Equal(t, KindSuccess, items[0].Kind)

	wishlist.Toggle(c, product)
	items = notifications.List(c)
	assert.Len(t, items, 2)
	assert.Equal(t, "Removed Sketchbook A3 from wishlist", items[1].Message)
	assert.Equal(t, KindInfo, items[1].Kind)
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	c := context.Background()
	wishlist, _ := newTestWishlist()
	first := newTestProduct("Hardcover Composition Book", 450)
	second := newTestProduct("World Atlas Illustrated", 1800)

	wishlist.Toggle(c, first)
	wishlist.Toggle(c, second)

	entries := wishlist.List(c)
	assert.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
}

func TestWishlistContainsUnknownId(t *testing.T) {
	c := context.Background()
	wishlist, _ := newTestWishlist()

	assert.False(t, wishlist.Contains(c, uuid.New()))
}

func TestWishlistClearIsSilent(t *testing.T) {
	c := context.Background()
	wishlist, notifications := newTestWishlist()
	wishlist.Toggle(c, newTestProduct("Geometry Box Deluxe", 950))
	before := len(notifications.List(c))

	wishlist.Clear(c)

	assert.Empty(t, wishlist.List(c))
	assert.Len(t, notifications.List(c), before)
}

func TestWishlistMoveAllToCart(t *testing.T) {
	c := context.Background()
	notifications := NewNotificationService(time.Minute)
	wishlist := NewWishlistService(notifications)
	cart := NewCartService(notifications, testStorefrontConfig())
	first := newTestProduct("Watercolor Paint Set", 1500)
	second := newTestProduct("Highlighter Pastel Pack", 520)
	wishlist.Toggle(c, first)
	wishlist.Toggle(c, second)

	wishlist.MoveAllToCart(c, cart)

	assert.Empty(t, wishlist.List(c))
	snapshot := cart.Cart(c)
	assert.Len(t, snapshot.Lines, 2)
	assert.Equal(t, 1, snapshot.Lines[0].Quantity)
	assert.Equal(t, 1, snapshot.Lines[1].Quantity)
}

func TestWishlistMoveAllToCartMergesExistingLines(t *testing.T) {
	c := context.Background()
	notifications := NewNotificationService(time.Minute)
	wishlist := NewWishlistService(notifications)
	cart := NewCartService(notifications, testStorefrontConfig())
	product := newTestProduct("Ergonomic School Backpack", 3500)
	cart.AddItem(c, product, 2)
	wishlist.Toggle(c, product)

	wishlist.MoveAllToCart(c, cart)

	snapshot := cart.Cart(c)
	assert.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 3, snapshot.Lines[0].Quantity)
}

func TestWishlistSubscribersFireOnMutation(t *testing.T) {
	c := context.Background()
	wishlist, _ := newTestWishlist()
	fired := 0
	wishlist.Subscribe(func() { fired++ })
	product := newTestProduct("Scientific Calculator FX-991", 4800)

	wishlist.Toggle(c, product)
	wishlist.Toggle(c, product)
	wishlist.Clear(c)

	assert.Equal(t, 3, fired)
}
