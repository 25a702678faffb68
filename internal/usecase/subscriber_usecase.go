package usecase

import (
	"context"

	"headend/internal/domain/entity"
)

// SubscriberInfo carries the operator-entered details for provisioning a
// subscriber manually, without a device request.
type SubscriberInfo struct {
	Name       string `json:"name" validate:"required"`
	Mobile     string `json:"mobile" validate:"required"`
	MACAddress string `json:"macAddress" validate:"required"`
}

// SubscriberUsecase defines subscriber account management use cases.
type SubscriberUsecase interface {
	// ListSubscribers retrieves all subscriber accounts, newest first.
	ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error)

	// Provision creates a subscriber account directly from operator input.
	// The account starts expired with no plan, exactly as approval does.
	Provision(ctx context.Context, info *SubscriberInfo) (*entity.Subscriber, error)

	// Recharge applies a package to a subscriber: the expiry becomes the
	// package duration counted from now, replacing any remaining time, and
	// the active plan becomes the package name. If the package no longer
	// exists the call is a no-op.
	Recharge(ctx context.Context, subscriberID, packageID string) error

	// Delete removes a subscriber account permanently.
	Delete(ctx context.Context, subscriberID string) error
}
