// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"headend/internal/domain/entity"
)

// ApprovalInfo carries the operator-entered account details for approving a
// pending device request.
type ApprovalInfo struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
}

// ProvisioningUsecase defines the reconciliation workflows that resolve
// pending device requests against the subscriber base.
type ProvisioningUsecase interface {
	// ListRequests retrieves all pending device requests, newest first.
	ListRequests(ctx context.Context) ([]*entity.DeviceRequest, error)

	// Approve creates a new subscriber account from a pending request and
	// consumes the request. The account starts expired with no plan so the
	// first recharge defines the entitlement window. If the request no
	// longer exists the call is a no-op and returns (nil, nil).
	Approve(ctx context.Context, requestID string, info *ApprovalInfo) (*entity.Subscriber, error)

	// Swap moves the hardware identifier from a pending request onto an
	// existing subscriber and consumes the request. If the request no
	// longer exists the call is a no-op; a missing subscriber is an error.
	Swap(ctx context.Context, requestID, subscriberID string) error

	// Dismiss discards a pending request without creating or modifying
	// any subscriber.
	Dismiss(ctx context.Context, requestID string) error

	// PairingQR renders a QR image a field technician can scan to carry
	// the request's identity to a handheld provisioning tool.
	PairingQR(ctx context.Context, requestID string) ([]byte, error)
}
