package util

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// ValidQRCodeSizes defines the allowed QR code sizes in pixels
var ValidQRCodeSizes = []int{256, 512, 1024}

// ValidQRCodeSizesMap provides O(1) lookup for valid QR code sizes
var ValidQRCodeSizesMap = map[int]bool{
	256:  true,
	512:  true,
	1024: true,
}

// DefaultQRCodeSize is the default size for QR codes
const DefaultQRCodeSize = 256

// ValidateQRCodeSize validates that the provided size is one of the allowed values
func ValidateQRCodeSize(size int) error {
	if !ValidQRCodeSizesMap[size] {
		return fmt.Errorf("invalid QR code size: %d. Allowed sizes: %v", size, ValidQRCodeSizes)
	}
	return nil
}

// GenerateQRCode generates a QR code image for a share URL (short link or card page)
// Returns PNG image bytes and any error encountered
func GenerateQRCode(url string, size int) ([]byte, error) {
	if err := ValidateQRCodeSize(size); err != nil {
		return nil, err
	}

	if url == "" {
		return nil, errors.New("URL cannot be empty")
	}

	// Medium recovery level balances data capacity and error correction,
	// which matters for cards printed with a small logo overlay
	qrCode, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return pngBytes, nil
}
