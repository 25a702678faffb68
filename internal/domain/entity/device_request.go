// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DeviceRequest represents a pending claim from an unregistered device
// awaiting operator activation. Requests are created by devices outside
// this system and are destroyed when approved, swapped or dismissed.
type DeviceRequest struct {
	ID          string    `json:"id"`          // Store document id.
	MACAddress  string    `json:"macAddress"`  // Hardware identifier the device announced.
	DeviceName  string    `json:"deviceName"`  // Optional device label.
	RequestTime time.Time `json:"requestTime"` // When the device asked for activation.
}
