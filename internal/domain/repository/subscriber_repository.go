// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"headend/internal/domain/entity"
	"headend/internal/errors"
)

// ErrSubscriberNotFound is returned when a subscriber is not found.
var ErrSubscriberNotFound = errors.New("subscriber not found")

// SubscriberRepository defines the interface for subscriber-related store operations.
type SubscriberRepository interface {
	// CreateSubscriber persists a new subscriber document. The entity's ID
	// must already be assigned and is never regenerated on retry.
	CreateSubscriber(ctx context.Context, subscriber *entity.Subscriber) error

	// FindSubscriberByID retrieves a subscriber by its document id.
	FindSubscriberByID(ctx context.Context, id string) (*entity.Subscriber, error)

	// ListSubscribers retrieves all subscribers, newest accounts first.
	ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error)

	// UpdateMACAddress replaces the hardware identifier of a subscriber.
	// No other field is touched.
	UpdateMACAddress(ctx context.Context, id, macAddress string) error

	// UpdateEntitlement sets the expiry timestamp and active plan of a
	// subscriber. Status is derived at read time and is never written.
	UpdateEntitlement(ctx context.Context, id string, expiry time.Time, plan string) error

	// DeleteSubscriber removes a subscriber document. Deleting a missing
	// id is a no-op.
	DeleteSubscriber(ctx context.Context, id string) error

	// WatchSubscribers delivers the full, mapped subscriber collection on
	// every store change until ctx is cancelled.
	WatchSubscribers(ctx context.Context) (<-chan []*entity.Subscriber, error)
}
