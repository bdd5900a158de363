package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/booktime/storefront/internal/log"
	"github.com/booktime/storefront/internal/otel"
	"github.com/booktime/storefront/storefront/pkg/response"
)

const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// NotificationService keeps the ordered queue of transient user-facing
// messages. Every pushed notification expires on its own timer after the
// configured display duration; an early dismissal cancels the timer.
// Removal is idempotent so a dismissal racing its own expiry is harmless.
type NotificationService struct {
	mu        sync.Mutex
	items     []response.Notification
	timers    map[uuid.UUID]*time.Timer
	ttl       time.Duration
	listeners []func()
}

func NewNotificationService(ttl time.Duration) *NotificationService {
	return &NotificationService{
		timers: map[uuid.UUID]*time.Timer{},
		ttl:    ttl,
	}
}

// Subscribe registers a listener invoked after every mutation. Listeners
// must not call back into the service synchronously.
func (svc *NotificationService) Subscribe(listener func()) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.listeners = append(svc.listeners, listener)
}

func (svc *NotificationService) notifyListeners() {
	svc.mu.Lock()
	listeners := make([]func(), len(svc.listeners))
	copy(listeners, svc.listeners)
	svc.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}

func (svc *NotificationService) Push(c context.Context, message string, kind string) uuid.UUID {
	_, span := otel.Tracer.Start(c, "NotificationService Push")
	defer span.End()

	if kind == "" {
		kind = KindSuccess
	}

	notification := response.Notification{
		ID:        uuid.New(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService Push").
		Str(log.KeyNotificationID, notification.ID.String()).
		Str(log.KeyNotificationKind, kind).
		Logger()

	svc.mu.Lock()
	svc.items = append(svc.items, notification)
	svc.timers[notification.ID] = time.AfterFunc(svc.ttl, func() {
		if svc.remove(notification.ID) {
			svc.notifyListeners()
		}
	})
	svc.mu.Unlock()
	logger.Info().Msgf("pushed notification %q", message)

	svc.notifyListeners()
	return notification.ID
}

// Dismiss removes the notification with the given id. Dismissing an id
// that already expired is a no-op.
func (svc *NotificationService) Dismiss(c context.Context, id uuid.UUID) {
	_, span := otel.Tracer.Start(c, "NotificationService Dismiss")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "NotificationService Dismiss").
		Str(log.KeyNotificationID, id.String()).
		Logger()

	if !svc.remove(id) {
		logger.Trace().Msg("notification already removed")
		return
	}
	logger.Info().Msg("dismissed notification")
	svc.notifyListeners()
}

// remove deletes the notification and cancels its expiry timer. It
// reports whether the id was still present.
func (svc *NotificationService) remove(id uuid.UUID) bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if timer, ok := svc.timers[id]; ok {
		timer.Stop()
		delete(svc.timers, id)
	}
	for i, item := range svc.items {
		if item.ID == id {
			svc.items = append(svc.items[:i], svc.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of the active notifications in insertion order.
func (svc *NotificationService) List(c context.Context) []response.Notification {
	_, span := otel.Tracer.Start(c, "NotificationService List")
	defer span.End()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	snapshot := make([]response.Notification, len(svc.items))
	copy(snapshot, svc.items)
	return snapshot
}
