package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/pkg/response"
)

// WishlistService keeps the set of favorited products in insertion order,
// at most one entry per product id. Toggle is the only per-item mutation
// entry point.
type WishlistService struct {
	mu            sync.Mutex
	entries       []response.Product
	notifications *NotificationService
	listeners     []func()
}

func NewWishlistService(notifications *NotificationService) *WishlistService {
	return &WishlistService{notifications: notifications}
}

func (svc *WishlistService) Subscribe(listener func()) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.listeners = append(svc.listeners, listener)
}

func (svc *WishlistService) notifyListeners() {
	svc.mu.Lock()
	listeners := make([]func(), len(svc.listeners))
	copy(listeners, svc.listeners)
	svc.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}

// Toggle removes the product when present and adds it otherwise. Toggling
// twice returns the wishlist to its previous membership state.
func (svc *WishlistService) Toggle(c context.Context, product response.Product) {
	c, span := otel.Tracer.Start(c, "WishlistService Toggle")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "WishlistService Toggle").
		Str(log.KeyProductID, product.ID.String()).
		Str(log.KeyProductName, product.Name).
		Logger()

	svc.mu.Lock()
	removed := false
	for i, entry := range svc.entries {
		if entry.ID == product.ID {
			svc.entries = append(svc.entries[:i], svc.entries[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		svc.entries = append(svc.entries, product)
	}
	svc.mu.Unlock()

	if removed {
		logger.Info().Msg("removed product from wishlist")
		svc.notifications.Push(c, fmt.Sprintf("Removed %s from wishlist", product.Name), KindInfo)
	} else {
		logger.Info().Msg("added product to wishlist")
		svc.notifications.Push(c, fmt.Sprintf("Added %s to wishlist", product.Name), KindSuccess)
	}
	svc.notifyListeners()
}

func (svc *WishlistService) Contains(c context.Context, id uuid.UUID) bool {
	_, span := otel.Tracer.Start(c, "WishlistService Contains")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	for _, entry := range svc.entries {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// List returns an insertion-order snapshot of the entries.
func (svc *WishlistService) List(c context.Context) []response.Product {
	_, span := otel.Tracer.Start(c, "WishlistService List")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	snapshot := make([]response.Product, len(svc.entries))
	copy(snapshot, svc.entries)
	return snapshot
}

// Clear empties the set. Used by the bulk flows; pushes no notification.
func (svc *WishlistService) Clear(c context.Context) {
	c, span := otel.Tracer.Start(c, "WishlistService Clear")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "WishlistService Clear").
		Logger()

	svc.mu.Lock()
	svc.entries = nil
	svc.mu.Unlock()

	logger.Info().Msg("cleared wishlist")
	svc.notifyListeners()
}

// MoveAllToCart adds every entry to the cart with quantity 1 and empties
// the wishlist. The cart pushes its own per-item notifications.
func (svc *WishlistService) MoveAllToCart(c context.Context, cart *CartService) {
	c, span := otel.Tracer.Start(c, "WishlistService MoveAllToCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "WishlistService MoveAllToCart").
		Logger()

	entries := svc.List(c)
	for _, entry := range entries {
		cart.AddItem(c, entry, 1)
	}
	logger.Info().Msgf("moved %d wishlist entries to cart", len(entries))
	svc.Clear(c)
}
