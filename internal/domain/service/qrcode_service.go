package service

// PairingCode is the payload encoded into a device pairing QR image.
type PairingCode struct {
	RequestID  string `json:"request_id"`
	MACAddress string `json:"mac_address"`
	Type       string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePairingQR generates a PNG QR code for a pending device request.
	GeneratePairingQR(requestID, macAddress string) ([]byte, error)

	// ParsePairingQR parses QR code data back into a pairing code.
	ParsePairingQR(qrData string) (*PairingCode, error)
}
