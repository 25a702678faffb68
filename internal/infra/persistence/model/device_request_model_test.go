package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToDeviceRequestDomain_MACFallbacks(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		requestM *DeviceRequestModel
		wantMAC  string
	}{
		{
			name:     "explicit macAddress field wins",
			requestM: &DeviceRequestModel{MACAddress: "AA:BB:CC:DD:EE:FF", LegacyMAC: "11:22:33:44:55:66"},
			wantMAC:  "AA:BB:CC:DD:EE:FF",
		},
		{
			name:     "legacy mac field used when macAddress absent",
			requestM: &DeviceRequestModel{LegacyMAC: "11:22:33:44:55:66"},
			wantMAC:  "11:22:33:44:55:66",
		},
		{
			name:     "document id used as last resort",
			requestM: &DeviceRequestModel{},
			wantMAC:  "req-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := ToDeviceRequestDomain("req-42", tt.requestM, now)
			assert.Equal(t, tt.wantMAC, request.MACAddress)
		})
	}
}

func TestToDeviceRequestDomain_RequestTimeDefaults(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("missing request time defaults to now", func(t *testing.T) {
		request := ToDeviceRequestDomain("req-1", &DeviceRequestModel{MACAddress: "AA:BB:CC:DD:EE:FF"}, now)
		assert.Equal(t, now, request.RequestTime)
	})

	t.Run("malformed request time falls back to epoch", func(t *testing.T) {
		request := ToDeviceRequestDomain("req-1", &DeviceRequestModel{RequestTime: "yesterday-ish"}, now)
		assert.Equal(t, time.Unix(0, 0).UTC(), request.RequestTime)
	})

	t.Run("valid request time is preserved", func(t *testing.T) {
		request := ToDeviceRequestDomain("req-1", &DeviceRequestModel{RequestTime: "2024-06-01T09:30:00.000Z"}, now)
		assert.Equal(t, time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC), request.RequestTime)
	})
}
