// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"headend/internal/domain/entity"
	"headend/internal/errors"
)

// ErrRequestNotFound is returned when a device request is not found.
var ErrRequestNotFound = errors.New("device request not found")

// DeviceRequestRepository defines the interface for pending device activation
// requests. Requests are created by devices outside this system; the console
// only reads and removes them.
type DeviceRequestRepository interface {
	// FindRequestByID retrieves a pending request by its document id.
	FindRequestByID(ctx context.Context, id string) (*entity.DeviceRequest, error)

	// ListRequests retrieves all pending requests, newest first.
	ListRequests(ctx context.Context) ([]*entity.DeviceRequest, error)

	// DeleteRequest removes a request document. Deleting a missing id is a no-op.
	DeleteRequest(ctx context.Context, id string) error

	// WatchRequests delivers the full, mapped request collection on every
	// store change until ctx is cancelled.
	WatchRequests(ctx context.Context) (<-chan []*entity.DeviceRequest, error)
}
