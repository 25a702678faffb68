// Package entity contains the core business objects of the project.
package entity

import "time"

// Status is the entitlement state of a subscriber. It is always derived
// from the expiry timestamp and is never persisted to the store.
type Status string

const (
	// StatusActive means the subscriber's entitlement has not yet expired.
	StatusActive Status = "Active"
	// StatusExpired means the subscriber's entitlement has lapsed.
	StatusExpired Status = "Expired"
)

// StatusAt derives the subscriber status from the expiry timestamp at the
// given moment. A subscriber is active as long as the expiry has not passed.
func StatusAt(expiry, now time.Time) Status {
	if expiry.Before(now) {
		return StatusExpired
	}

	return StatusActive
}
