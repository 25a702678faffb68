// Package model contains the Firestore document shapes and their mapping to
// domain entities. Derived fields are computed here at read time and are
// never written back to the store.
package model

import (
	"time"

	"headend/internal/domain/entity"
)

// SubscriberModel is the Firestore document shape for the 'users'
// collection. Timestamps are RFC 3339 strings on the wire. There is
// deliberately no status field: legacy documents that still carry one are
// ignored on read and the field is dropped on the next full write.
type SubscriberModel struct {
	Name       string `firestore:"name"`
	Mobile     string `firestore:"mobile"`
	MACAddress string `firestore:"macAddress"`
	ExpiryDate string `firestore:"expiryDate"`
	ActivePlan string `firestore:"activePlan"`
	CreatedAt  string `firestore:"createdAt"`
}

// ToSubscriberDomain maps a stored document to the domain entity, deriving
// the status from the expiry timestamp at the given moment. An absent or
// malformed expiry defaults to the epoch, which forces Expired.
func ToSubscriberDomain(id string, subscriberM *SubscriberModel, now time.Time) *entity.Subscriber {
	expiry := parseTimeOrEpoch(subscriberM.ExpiryDate)

	return &entity.Subscriber{
		ID:         id,
		Name:       subscriberM.Name,
		Mobile:     subscriberM.Mobile,
		MACAddress: subscriberM.MACAddress,
		ExpiryDate: expiry,
		Status:     entity.StatusAt(expiry, now),
		ActivePlan: subscriberM.ActivePlan,
		CreatedAt:  parseTimeOrEpoch(subscriberM.CreatedAt),
	}
}

// FromSubscriberDomain maps the domain entity to its document shape.
// The derived status is intentionally not part of the document.
func FromSubscriberDomain(subscriber *entity.Subscriber) *SubscriberModel {
	return &SubscriberModel{
		Name:       subscriber.Name,
		Mobile:     subscriber.Mobile,
		MACAddress: subscriber.MACAddress,
		ExpiryDate: FormatTime(subscriber.ExpiryDate),
		ActivePlan: subscriber.ActivePlan,
		CreatedAt:  FormatTime(subscriber.CreatedAt),
	}
}
