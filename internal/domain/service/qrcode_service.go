package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePurchaseQR generates a QR code image for a product's checkout link
	GeneratePurchaseQR(productSlug string) ([]byte, error)

	// ParsePurchaseQR parses QR code data and returns the product slug
	ParsePurchaseQR(qrData string) (string, error)
}
