package qrcode

import (
	"encoding/json"
	"fmt"

	"folio/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	checkoutBaseURL      string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ProductSlug string `json:"product_slug"`
	CheckoutURL string `json:"checkout_url"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, checkoutBaseURL string) service.QRCodeService {
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
		checkoutBaseURL:      checkoutBaseURL,
	}
}

// GeneratePurchaseQR generates a QR code pointing at the product's checkout link
func (s *qrcodeService) GeneratePurchaseQR(productSlug string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		ProductSlug: productSlug,
		CheckoutURL: fmt.Sprintf("%s/%s", s.checkoutBaseURL, productSlug),
		Type:        "purchase",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePurchaseQR parses QR code data and returns the product slug
func (s *qrcodeService) ParsePurchaseQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "purchase" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.ProductSlug == "" {
		return "", fmt.Errorf("QR code carries no product slug")
	}

	return data.ProductSlug, nil
}
