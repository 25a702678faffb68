package model

import (
	"testing"
	"time"

	"headend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSubscriberDomain_DerivesStatusFromExpiry(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiryDate string
		want       entity.Status
	}{
		{name: "future expiry is active", expiryDate: "2024-07-01T00:00:00.000Z", want: entity.StatusActive},
		{name: "past expiry is expired", expiryDate: "2024-06-01T00:00:00.000Z", want: entity.StatusExpired},
		{name: "expiry equal to now is active", expiryDate: "2024-06-15T12:00:00.000Z", want: entity.StatusActive},
		{name: "missing expiry defaults to epoch and expires", expiryDate: "", want: entity.StatusExpired},
		{name: "malformed expiry defaults to epoch and expires", expiryDate: "not-a-timestamp", want: entity.StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscriber := ToSubscriberDomain("sub-1", &SubscriberModel{
				Name:       "Asha",
				ExpiryDate: tt.expiryDate,
			}, now)

			assert.Equal(t, tt.want, subscriber.Status)
		})
	}
}

func TestToSubscriberDomain_MalformedExpiryFallsBackToEpoch(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	subscriber := ToSubscriberDomain("sub-1", &SubscriberModel{ExpiryDate: "garbage"}, now)

	assert.Equal(t, time.Unix(0, 0).UTC(), subscriber.ExpiryDate)
	assert.Equal(t, entity.StatusExpired, subscriber.Status)
}

func TestSubscriberModel_RoundTripPreservesStoredFields(t *testing.T) {
	stored := &SubscriberModel{
		Name:       "Asha",
		Mobile:     "9000000000",
		MACAddress: "AA:BB:CC:DD:EE:FF",
		ExpiryDate: "2024-03-01T10:30:00.000Z",
		ActivePlan: "Gold",
		CreatedAt:  "2024-01-15T08:00:00.000Z",
	}
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	subscriber := ToSubscriberDomain("sub-1", stored, now)
	require.Equal(t, "sub-1", subscriber.ID)
	require.Equal(t, entity.StatusActive, subscriber.Status)

	back := FromSubscriberDomain(subscriber)
	assert.Equal(t, stored, back)
}

func TestFromSubscriberDomain_NeverWritesStatus(t *testing.T) {
	subscriber := &entity.Subscriber{
		ID:         "sub-1",
		Name:       "Asha",
		ExpiryDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:     entity.StatusActive,
		ActivePlan: entity.NoPlan,
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	subscriberM := FromSubscriberDomain(subscriber)

	// The document shape has no status field at all; re-reading derives it.
	reread := ToSubscriberDomain(subscriber.ID, subscriberM, time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, entity.StatusExpired, reread.Status)
}
