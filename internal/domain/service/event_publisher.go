package service

import (
	"context"
	"time"
)

// Provisioning event types published on workflow completion.
const (
	EventDeviceApproved      = "device.approved"
	EventDeviceSwapped       = "device.swapped"
	EventSubscriberRecharged = "subscriber.recharged"
)

// ProvisioningEvent describes a completed reconciliation workflow step for
// downstream consumers (billing exports, CRM sync).
type ProvisioningEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	Type         string    `json:"type"`
	SubscriberID string    `json:"subscriber_id"`
	MACAddress   string    `json:"mac_address,omitempty"`
	Plan         string    `json:"plan,omitempty"`
	ExpiryDate   time.Time `json:"expiry_date,omitzero"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProvisioningEvent publishes a provisioning event for async processing
	PublishProvisioningEvent(ctx context.Context, event *ProvisioningEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
