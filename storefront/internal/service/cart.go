package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/booktime/storefront/internal/config"
	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/pkg/response"
)

// CartService owns the cart lines and the slide-out visibility flag.
// Lines are kept in insertion order with at most one line per product id;
// a line's quantity is always >= 1. Aggregates are derived on every call,
// never stored.
type CartService struct {
	mu            sync.Mutex
	lines         []response.CartLine
	open          bool
	notifications *NotificationService
	listeners     []func()

	currencySymbol string
	deliveryFee    decimal.Decimal
}

func NewCartService(
	notifications *NotificationService,
	cfg config.Storefront,
) *CartService {
	return &CartService{
		notifications:  notifications,
		currencySymbol: cfg.CurrencySymbol,
		deliveryFee:    decimal.NewFromInt(cfg.DeliveryFee),
	}
}

func (svc *CartService) Subscribe(listener func()) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.listeners = append(svc.listeners, listener)
}

func (svc *CartService) notifyListeners() {
	svc.mu.Lock()
	listeners := make([]func(), len(svc.listeners))
	copy(listeners, svc.listeners)
	svc.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}

// AddItem merges quantity into the existing line for the product or
// appends a new line. A non-positive quantity is treated as 1. Adding
// always forces the slide-out open.
func (svc *CartService) AddItem(c context.Context, product response.Product, quantity int) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	if quantity < 1 {
		quantity = 1
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeyProductID, product.ID.String()).
		Str(log.KeyProductName, product.Name).
		Int(log.KeyQuantity, quantity).
		Logger()

	svc.mu.Lock()
	merged := false
	for i, line := range svc.lines {
		if line.Product.ID == product.ID {
			svc.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		svc.lines = append(svc.lines, response.CartLine{Product: product, Quantity: quantity})
	}
	svc.open = true
	svc.mu.Unlock()

	if merged {
		logger.Info().Msg("merged quantity into existing cart line")
		svc.notifications.Push(c, fmt.Sprintf("Updated %s quantity in cart", product.Name), KindSuccess)
	} else {
		logger.Info().Msg("added new cart line")
		svc.notifications.Push(c, fmt.Sprintf("Added %s to cart", product.Name), KindSuccess)
	}
	svc.notifyListeners()
}

// UpdateQuantity sets the line quantity to exactly quantity. A value <= 0
// removes the line instead. Absent ids are ignored and never create a
// line.
func (svc *CartService) UpdateQuantity(c context.Context, id uuid.UUID, quantity int) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	if quantity <= 0 {
		svc.RemoveItem(c, id)
		return
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateQuantity").
		Str(log.KeyProductID, id.String()).
		Int(log.KeyQuantity, quantity).
		Logger()

	svc.mu.Lock()
	updated := false
	for i, line := range svc.lines {
		if line.Product.ID == id {
			svc.lines[i].Quantity = quantity
			updated = true
			break
		}
	}
	svc.mu.Unlock()

	if !updated {
		logger.Trace().Msg("no cart line for product, ignoring")
		return
	}
	logger.Info().Msg("updated cart line quantity")
	svc.notifyListeners()
}

// RemoveItem removes the line for the product if present. Removing an
// absent id is a silent no-op and pushes no notification.
func (svc *CartService) RemoveItem(c context.Context, id uuid.UUID) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeyProductID, id.String()).
		Logger()

	svc.mu.Lock()
	removed := ""
	for i, line := range svc.lines {
		if line.Product.ID == id {
			removed = line.Product.Name
			svc.lines = append(svc.lines[:i], svc.lines[i+1:]...)
			break
		}
	}
	svc.mu.Unlock()

	if removed == "" {
		logger.Trace().Msg("no cart line for product, ignoring")
		return
	}
	logger.Info().Msg("removed cart line")
	svc.notifications.Push(c, fmt.Sprintf("Removed %s from cart", removed), KindInfo)
	svc.notifyListeners()
}

// Total sums price*quantity over all lines. An empty cart totals zero.
func (svc *CartService) Total(c context.Context) decimal.Decimal {
	_, span := otel.Tracer.Start(c, "CartService Total")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.subtotalLocked()
}

func (svc *CartService) subtotalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, line := range svc.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ItemCount sums quantities over all lines, counting units rather than
// distinct lines.
func (svc *CartService) ItemCount(c context.Context) int {
	_, span := otel.Tracer.Start(c, "CartService ItemCount")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	count := 0
	for _, line := range svc.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart. Clearing an already-empty cart still succeeds
// and still notifies.
func (svc *CartService) Clear(c context.Context) {
	c, span := otel.Tracer.Start(c, "CartService Clear")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService Clear").
		Logger()

	svc.mu.Lock()
	svc.lines = nil
	svc.mu.Unlock()

	logger.Info().Msg("cleared cart")
	svc.notifications.Push(c, "Cart cleared", KindInfo)
	svc.notifyListeners()
}

func (svc *CartService) Open(c context.Context) {
	svc.mu.Lock()
	svc.open = true
	svc.mu.Unlock()
	svc.notifyListeners()
}

func (svc *CartService) Close(c context.Context) {
	svc.mu.Lock()
	svc.open = false
	svc.mu.Unlock()
	svc.notifyListeners()
}

func (svc *CartService) IsOpen(c context.Context) bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.open
}

// Cart returns a snapshot of the lines with the derived aggregates.
func (svc *CartService) Cart(c context.Context) response.Cart {
	_, span := otel.Tracer.Start(c, "CartService Cart")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	lines := make([]response.CartLine, len(svc.lines))
	copy(lines, svc.lines)
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return response.Cart{
		Lines:     lines,
		Subtotal:  svc.subtotalLocked(),
		ItemCount: count,
		IsOpen:    svc.open,
	}
}

// Summary is the checkout-summary view: subtotal plus the flat delivery
// surcharge.
func (svc *CartService) Summary(c context.Context) response.CartSummary {
	_, span := otel.Tracer.Start(c, "CartService Summary")
	defer span.End()

	svc.mu.Lock()
	subtotal := svc.subtotalLocked()
	svc.mu.Unlock()

	return response.CartSummary{
		Currency:    svc.currencySymbol,
		Subtotal:    subtotal,
		DeliveryFee: svc.deliveryFee,
		Total:       subtotal.Add(svc.deliveryFee),
	}
}
