// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// NoPlan is the plan name assigned to freshly provisioned subscribers
// before their first recharge.
const NoPlan = "No Plan"

// Subscriber represents a service account bound to a set-top device and an
// expiry-based entitlement.
type Subscriber struct {
	ID         string    `json:"id"`          // Store document id (UUID v4, generated once at creation).
	Name       string    `json:"name"`        // Account holder name.
	Mobile     string    `json:"mobile"`      // Contact mobile number.
	MACAddress string    `json:"macAddress"`  // Hardware identifier of the bound device.
	ExpiryDate time.Time `json:"expiryDate"`  // When the current entitlement lapses.
	Status     Status    `json:"status"`      // Derived from ExpiryDate at read time, never stored.
	ActivePlan string    `json:"activePlan"`  // Name of the package last applied, or NoPlan.
	CreatedAt  time.Time `json:"createdAt"`   // Timestamp of account creation.
}
