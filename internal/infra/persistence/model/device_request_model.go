package model

import (
	"time"

	"headend/internal/domain/entity"
)

// DeviceRequestModel is the Firestore document shape for the
// 'deviceRequests' collection. Requests are written by devices outside this
// system, so the mapping tolerates older field layouts: a missing
// macAddress falls back to the legacy 'mac' field and finally to the
// document id itself.
type DeviceRequestModel struct {
	MACAddress  string `firestore:"macAddress"`
	LegacyMAC   string `firestore:"mac"`
	DeviceName  string `firestore:"deviceName"`
	RequestTime string `firestore:"requestTime"`
}

// ToDeviceRequestDomain maps a stored request to the domain entity. A
// missing request timestamp defaults to now; a malformed one falls back to
// the epoch rather than failing the mapping.
func ToDeviceRequestDomain(id string, requestM *DeviceRequestModel, now time.Time) *entity.DeviceRequest {
	mac := requestM.MACAddress
	if mac == "" {
		mac = requestM.LegacyMAC
	}
	if mac == "" {
		mac = id
	}

	requestTime := now
	if requestM.RequestTime != "" {
		requestTime = parseTimeOrEpoch(requestM.RequestTime)
	}

	return &entity.DeviceRequest{
		ID:          id,
		MACAddress:  mac,
		DeviceName:  requestM.DeviceName,
		RequestTime: requestTime,
	}
}
