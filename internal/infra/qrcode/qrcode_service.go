package qrcode

import (
	"encoding/json"
	"fmt"

	"headend/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const pairingType = "pairing"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePairingQR generates a QR code for a pending device request
func (s *qrcodeService) GeneratePairingQR(requestID, macAddress string) ([]byte, error) {
	data := service.PairingCode{
		RequestID:  requestID,
		MACAddress: macAddress,
		Type:       pairingType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePairingQR parses QR code data back into a pairing code
func (s *qrcodeService) ParsePairingQR(qrData string) (*service.PairingCode, error) {
	var data service.PairingCode
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pairingType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RequestID == "" {
		return nil, fmt.Errorf("missing request ID in QR code data")
	}

	return &data, nil
}
