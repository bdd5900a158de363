package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationPushKeepsInsertionOrder(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(time.Minute)

	svc.Push(c, "first", KindSuccess)
	svc.Push(c, "second", KindError)
	svc.Push(c, "third", KindInfo)

	items := svc.List(c)
	assert.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Message)
	assert.Equal(t, "second", items[1].Message)
	assert.Equal(t, "third", items[2].Message)
}

func TestNotificationPushDefaultsToSuccessKind(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(time.Minute)

	svc.Push(c, "saved", "")

	items := svc.List(c)
	assert.Len(t, items, 1)
	assert.Equal(t, KindSuccess, items[0].Kind)
}

func TestNotificationDismiss(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(time.Minute)
	first := svc.Push(c, "first", KindSuccess)
	svc.Push(c, "second", KindSuccess)

	svc.Dismiss(c, first)

	items := svc.List(c)
	assert.Len(t, items, 1)
	assert.Equal(t, "second", items[0].Message)
}

func TestNotificationDismissIsIdempotent(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(time.Minute)
	id := svc.Push(c, "once", KindSuccess)

	svc.Dismiss(c, id)
	assert.NotPanics(t, func() {
		svc.Dismiss(c, id)
		svc.Dismiss(c, uuid.New())
	})
	assert.Empty(t, svc.List(c))
}

func TestNotificationAutoExpires(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(20 * time.Millisecond)

	svc.Push(c, "transient", KindSuccess)
	assert.Len(t, svc.List(c), 1)

	assert.Eventually(t, func() bool {
		return len(svc.List(c)) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationDismissCancelsExpiryTimer(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(20 * time.Millisecond)
	expired := 0
	svc.Subscribe(func() { expired++ })

	id := svc.Push(c, "transient", KindSuccess)
	svc.Dismiss(c, id)
	fired := expired

	// the stopped timer must not fire a second removal
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, fired, expired)
	assert.Empty(t, svc.List(c))
}

func TestNotificationSubscribersFireOnMutation(t *testing.T) {
	c := context.Background()
	svc := NewNotificationService(time.Minute)
	fired := 0
	svc.Subscribe(func() { fired++ })

	id := svc.Push(c, "hello", KindSuccess)
	svc.Dismiss(c, id)

	assert.Equal(t, 2, fired)
}
