package qrcode

import (
	"encoding/json"
	"testing"

	"headend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	requestID := uuid.NewString()

	qrBytes, err := svc.GeneratePairingQR(requestID, "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePairingQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")

			qrBytes, err := svc.GeneratePairingQR(uuid.NewString(), "AA:BB:CC:DD:EE:FF")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	requestID := uuid.NewString()

	data := service.PairingCode{
		RequestID:  requestID,
		MACAddress: "AA:BB:CC:DD:EE:FF",
		Type:       "pairing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := svc.ParsePairingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, requestID, parsed.RequestID)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", parsed.MACAddress)
}

func TestQRCodeService_ParsePairingQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParsePairingQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParsePairingQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data := service.PairingCode{
		RequestID:  uuid.NewString(),
		MACAddress: "AA:BB:CC:DD:EE:FF",
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParsePairingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParsePairingQR_MissingRequestID(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data := service.PairingCode{
		MACAddress: "AA:BB:CC:DD:EE:FF",
		Type:       "pairing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParsePairingQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing request ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	requestID := uuid.NewString()

	qrBytes, err := svc.GeneratePairingQR(requestID, "AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG itself is opaque; a device scanner would extract the JSON
	// string, so the payload is verified directly here.
	data := service.PairingCode{
		RequestID:  requestID,
		MACAddress: "AA:BB:CC:DD:EE:FF",
		Type:       "pairing",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsed, err := svc.ParsePairingQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, requestID, parsed.RequestID)
}
